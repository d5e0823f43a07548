// Package validator contiene las reglas de formato de cada campo de Customer.
// Es puro y sin estado: funciones libres y expresiones regulares precompiladas.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/customer-handbook/internal/domain"
	"github.com/jhoicas/customer-handbook/internal/domain/entity"
)

// CustomerIDLength cantidad exacta de dígitos de customer_id.
const CustomerIDLength = 9

// MaxTextLength longitud máxima (en caracteres) de nombres, cargos y organizaciones.
const MaxTextLength = 120

var (
	reCustomerID   = regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}$`, CustomerIDLength))
	rePersonText   = regexp.MustCompile(fmt.Sprintf(`^[a-zA-Zа-яА-ЯёЁ ]{1,%d}$`, MaxTextLength))
	reOrganization = regexp.MustCompile(fmt.Sprintf(`^[0-9a-zA-Zа-яА-ЯёЁ "'«».,&()_#№+/:;!@-]{1,%d}$`, MaxTextLength))
	reEmail        = regexp.MustCompile(`^[\w'.+-]+@[\w'.+-]+$`)
	rePhone        = regexp.MustCompile(`^[0-9]{11}$`)
)

// Result resultado de una validación: éxito y mensajes legibles en orden.
type Result struct {
	Valid  bool
	Errors []string
}

func (r *Result) fail(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}

// Normalize lleva el texto a NFC para que letras cirílicas compuestas (й, ё) coincidan con las reglas.
func Normalize(value string) string {
	return norm.NFC.String(value)
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// ValidateField valida value con la regla del campo. Cada regla aporta como máximo un mensaje.
func ValidateField(field entity.Field, value string) Result {
	res := Result{Valid: true}
	value = Normalize(value)
	switch field {
	case entity.FieldCustomerID:
		if !reCustomerID.MatchString(value) {
			res.fail(fmt.Sprintf("%s must be %d digits long", field, CustomerIDLength))
		}
	case entity.FieldFullName, entity.FieldPosition:
		if !rePersonText.MatchString(value) || isBlank(value) {
			res.fail(fmt.Sprintf("%s must be 1 to %d latin or cyrillic letters and spaces", field, MaxTextLength))
		}
	case entity.FieldOrganizationName:
		if !reOrganization.MatchString(value) || isBlank(value) {
			res.fail(fmt.Sprintf("%s must be 1 to %d letters, digits or punctuation", field, MaxTextLength))
		}
	case entity.FieldEmail:
		if !reEmail.MatchString(value) {
			res.fail("invalid email template")
		}
	case entity.FieldPhone:
		if !rePhone.MatchString(value) {
			res.fail(fmt.Sprintf("%s must be exactly 11 digits", field))
		}
	default:
		res.fail(fmt.Sprintf("argument '%s' does not exist", field))
	}
	return res
}

// ValidateFieldName comprueba que name sea uno de los seis campos conocidos.
func ValidateFieldName(name string) (entity.Field, Result) {
	res := Result{Valid: true}
	f, ok := entity.ParseField(name)
	if !ok {
		res.fail(fmt.Sprintf("argument '%s' does not exist", name))
	}
	return f, res
}

// ValidateMutableFieldName como ValidateFieldName pero rechaza customer_id (inmutable).
func ValidateMutableFieldName(name string) (entity.Field, Result) {
	f, res := ValidateFieldName(name)
	if res.Valid && !f.IsMutable() {
		res.fail(fmt.Sprintf("argument '%s' cannot be changed", name))
	}
	return f, res
}

// ValidateSortFields valida todos los nombres de una línea de ordenamiento y acumula
// un mensaje por cada nombre desconocido.
func ValidateSortFields(names []string) ([]entity.Field, Result) {
	res := Result{Valid: true}
	fields := make([]entity.Field, 0, len(names))
	for _, name := range names {
		f, ok := entity.ParseField(name)
		if !ok {
			res.fail(fmt.Sprintf("'list' command has no argument: %s", name))
			continue
		}
		fields = append(fields, f)
	}
	if !res.Valid {
		return nil, res
	}
	return fields, res
}

// ValidateCustomer valida los seis campos de un registro completo y devuelve todos los mensajes.
func ValidateCustomer(c *entity.Customer) Result {
	res := Result{Valid: true}
	for _, f := range entity.Fields {
		v, _ := c.Value(f)
		if r := ValidateField(f, v); !r.Valid {
			res.Valid = false
			res.Errors = append(res.Errors, r.Errors...)
		}
	}
	return res
}

// ValidateChanges valida en next solo los campos mutables cuyo valor difiere de current.
func ValidateChanges(current, next *entity.Customer) Result {
	res := Result{Valid: true}
	for _, f := range entity.MutableFields {
		before, _ := current.Value(f)
		after, _ := next.Value(f)
		if before == after {
			continue
		}
		if r := ValidateField(f, after); !r.Valid {
			res.Valid = false
			res.Errors = append(res.Errors, r.Errors...)
		}
	}
	return res
}

// ValidationError conserva los mensajes legibles de un Result inválido.
// errors.Is(err, domain.ErrInvalidInput) es verdadero.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", domain.ErrInvalidInput, strings.Join(e.Messages, "; "))
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// Err convierte un Result inválido en *ValidationError; nil si es válido.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Messages: r.Errors}
}
