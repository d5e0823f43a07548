package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-handbook/internal/domain"
	"github.com/jhoicas/customer-handbook/internal/domain/entity"
	"github.com/jhoicas/customer-handbook/internal/domain/validator"
)

func TestValidateField(t *testing.T) {
	cases := []struct {
		name  string
		field entity.Field
		value string
		valid bool
	}{
		{"id nueve dígitos", entity.FieldCustomerID, "000000001", true},
		{"id con letras", entity.FieldCustomerID, "RE0000001", false},
		{"id con guion bajo", entity.FieldCustomerID, "2564696_R", false},
		{"id corto", entity.FieldCustomerID, "12345", false},
		{"id largo", entity.FieldCustomerID, "0000000001", false},
		{"id vacío", entity.FieldCustomerID, "", false},

		{"nombre latino", entity.FieldFullName, "Ivanov Vasyl", true},
		{"nombre cirílico", entity.FieldFullName, "Иванов Василий", true},
		{"nombre con ё", entity.FieldFullName, "Семёнов Пётр", true},
		{"nombre con símbolos", entity.FieldFullName, "1231_+=!@#$%^&*()<>", false},
		{"nombre vacío", entity.FieldFullName, "", false},
		{"nombre solo espacios", entity.FieldFullName, "   ", false},
		{"nombre 120", entity.FieldFullName, strings.Repeat("a", 120), true},
		{"nombre 121", entity.FieldFullName, strings.Repeat("a", 121), false},
		{"nombre cirílico 120", entity.FieldFullName, strings.Repeat("я", 120), true},
		{"cargo", entity.FieldPosition, "senior developer", true},
		{"cargo con dígitos", entity.FieldPosition, "developer 2", false},

		{"organización entre comillas", entity.FieldOrganizationName, `"COMPANY-3567"`, true},
		{"organización con guion", entity.FieldOrganizationName, "FGH-2000", true},
		{"organización cirílica", entity.FieldOrganizationName, "ООО «Ромашка»", true},
		{"organización con puntuación", entity.FieldOrganizationName, "Smith & Sons, Ltd.", true},
		{"organización vacía", entity.FieldOrganizationName, "", false},
		{"organización 121", entity.FieldOrganizationName, strings.Repeat("x", 121), false},

		{"email", entity.FieldEmail, "my_mail@mail.ru", true},
		{"email con más", entity.FieldEmail, "first.last+tag@mail.example.com", true},
		{"email sin arroba", entity.FieldEmail, "my_mail65mail.ru", false},
		{"email sin dominio", entity.FieldEmail, "vasyl@", false},
		{"email con espacio", entity.FieldEmail, "vasyl @mail.ru", false},

		{"teléfono", entity.FieldPhone, "79863452345", true},
		{"teléfono corto", entity.FieldPhone, "798634523", false},
		{"teléfono con letra", entity.FieldPhone, "798634523_R", false},
		{"teléfono largo", entity.FieldPhone, "798634523456", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := validator.ValidateField(tc.field, tc.value)
			assert.Equal(t, tc.valid, res.Valid)
			if tc.valid {
				assert.Empty(t, res.Errors)
			} else {
				assert.Len(t, res.Errors, 1, "una regla aporta un único mensaje")
			}
		})
	}
}

// Una "й" descompuesta (и + breve) se normaliza a NFC y se acepta.
func TestValidateField_NormalizaNFC(t *testing.T) {
	decomposed := "Андре\u0438\u0306"
	res := validator.ValidateField(entity.FieldFullName, decomposed)
	assert.True(t, res.Valid, res.Errors)
}

func TestValidateFieldName(t *testing.T) {
	f, res := validator.ValidateFieldName("email")
	assert.True(t, res.Valid)
	assert.Equal(t, entity.FieldEmail, f)

	_, res = validator.ValidateFieldName("customer")
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"argument 'customer' does not exist"}, res.Errors)
}

func TestValidateMutableFieldName_RechazaCustomerID(t *testing.T) {
	_, res := validator.ValidateMutableFieldName("customer_id")
	assert.False(t, res.Valid)

	f, res := validator.ValidateMutableFieldName("phone")
	assert.True(t, res.Valid)
	assert.Equal(t, entity.FieldPhone, f)
}

func TestValidateSortFields(t *testing.T) {
	fields, res := validator.ValidateSortFields([]string{"position", "full_name"})
	require.True(t, res.Valid)
	assert.Equal(t, []entity.Field{entity.FieldPosition, entity.FieldFullName}, fields)

	fields, res = validator.ValidateSortFields(nil)
	assert.True(t, res.Valid)
	assert.Empty(t, fields)

	fields, res = validator.ValidateSortFields([]string{"customer", "phone", "age"})
	assert.False(t, res.Valid)
	assert.Nil(t, fields)
	assert.Equal(t, []string{
		"'list' command has no argument: customer",
		"'list' command has no argument: age",
	}, res.Errors)
}

func TestValidateCustomer_AcumulaMensajes(t *testing.T) {
	res := validator.ValidateCustomer(&entity.Customer{
		CustomerID: "abc", FullName: "Ivanov Vasyl", Position: "developer",
		OrganizationName: "FGH", Email: "bad", Phone: "79278763423",
	})
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 2)
	assert.ErrorIs(t, res.Err(), domain.ErrInvalidInput)
}

func TestValidateChanges_SoloCamposModificados(t *testing.T) {
	current := &entity.Customer{
		CustomerID: "000000001", FullName: "Ivanov Vasyl", Position: "senior-dev",
		OrganizationName: "FGH", Email: "vasyl@mail.ru", Phone: "79278763423",
	}
	next := *current
	next.Phone = "79278763447"
	assert.True(t, validator.ValidateChanges(current, &next).Valid, "position sin cambios no se valida")

	next.Email = "bad"
	res := validator.ValidateChanges(current, &next)
	assert.Equal(t, []string{"invalid email template"}, res.Errors)

	var verr *validator.ValidationError
	require.ErrorAs(t, res.Err(), &verr)
	assert.Equal(t, res.Errors, verr.Messages)
	assert.ErrorIs(t, res.Err(), domain.ErrInvalidInput)
}

func TestResult_ErrNilCuandoEsValido(t *testing.T) {
	res := validator.ValidateField(entity.FieldPhone, "79278763423")
	assert.NoError(t, res.Err())
}
