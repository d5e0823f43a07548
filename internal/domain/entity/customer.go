package entity

import "strings"

// Field nombre de uno de los seis atributos de Customer.
type Field string

const (
	FieldCustomerID       Field = "customer_id"
	FieldFullName         Field = "full_name"
	FieldPosition         Field = "position"
	FieldOrganizationName Field = "organization_name"
	FieldEmail            Field = "email"
	FieldPhone            Field = "phone"
)

// Fields orden canónico de los campos (archivo XML, columnas, impresión).
var Fields = []Field{
	FieldCustomerID,
	FieldFullName,
	FieldPosition,
	FieldOrganizationName,
	FieldEmail,
	FieldPhone,
}

// MutableFields campos que Update puede modificar (todos menos customer_id).
var MutableFields = Fields[1:]

// ParseField valida el nombre contra la lista de campos conocidos.
func ParseField(name string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// IsMutable indica si el campo puede cambiar después de la creación.
func (f Field) IsMutable() bool {
	return f != FieldCustomerID
}

// Customer representa un registro del directorio de clientes.
// Todos los campos son texto; la ausencia se representa con cadena vacía.
type Customer struct {
	CustomerID       string
	FullName         string
	Position         string
	OrganizationName string
	Email            string
	Phone            string
}

// Value devuelve el valor del campo indicado. Un campo desconocido devuelve "" y false.
func (c *Customer) Value(f Field) (string, bool) {
	switch f {
	case FieldCustomerID:
		return c.CustomerID, true
	case FieldFullName:
		return c.FullName, true
	case FieldPosition:
		return c.Position, true
	case FieldOrganizationName:
		return c.OrganizationName, true
	case FieldEmail:
		return c.Email, true
	case FieldPhone:
		return c.Phone, true
	}
	return "", false
}

// Set asigna el valor de un campo mutable. customer_id nunca se modifica.
func (c *Customer) Set(f Field, v string) bool {
	switch f {
	case FieldFullName:
		c.FullName = v
	case FieldPosition:
		c.Position = v
	case FieldOrganizationName:
		c.OrganizationName = v
	case FieldEmail:
		c.Email = v
	case FieldPhone:
		c.Phone = v
	default:
		return false
	}
	return true
}

// Apply sobrescribe todos los campos mutables; CustomerID queda intacto.
func (c *Customer) Apply(fullName, position, organizationName, email, phone string) {
	c.FullName = fullName
	c.Position = position
	c.OrganizationName = organizationName
	c.Email = email
	c.Phone = phone
}

// Values devuelve los seis valores en el orden de Fields.
func (c *Customer) Values() []string {
	return []string{c.CustomerID, c.FullName, c.Position, c.OrganizationName, c.Email, c.Phone}
}

// String formato tabulado usado por la consola.
func (c *Customer) String() string {
	return strings.Join(c.Values(), "\t")
}
