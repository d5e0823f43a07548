// Package xmlfile implementa CustomerRepository sobre un archivo XML.
//
// Formato:
//
//	<data>
//	  <customer>
//	    <customer_id>000000001</customer_id>
//	    <full_name>...</full_name>
//	    <position>...</position>
//	    <organization_name>...</organization_name>
//	    <email>...</email>
//	    <phone>...</phone>
//	  </customer>
//	</data>
//
// Cada operación lee el archivo completo y cada mutación lo reescribe entero.
// No hay caché: el archivo es la única fuente de verdad y puede editarse externamente.
package xmlfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/jhoicas/customer-handbook/internal/domain"
	"github.com/jhoicas/customer-handbook/internal/domain/entity"
	"github.com/jhoicas/customer-handbook/internal/domain/repository"
)

const (
	rootTag     = "data"
	customerTag = "customer"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo adaptador de persistencia en archivo XML.
type CustomerRepo struct {
	path string
	log  zerolog.Logger
}

// NewCustomerRepository abre (o crea vacío) el archivo en path.
// Si el archivo existe debe tener la raíz <data>.
func NewCustomerRepository(path string, log zerolog.Logger) (*CustomerRepo, error) {
	r := &CustomerRepo{
		path: path,
		log:  log.With().Str("backend", "xml").Str("path", path).Logger(),
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		doc := etree.NewDocument()
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
		doc.CreateElement(rootTag)
		if err := r.save(doc); err != nil {
			return nil, err
		}
		r.log.Info().Msg("archivo de clientes creado")
		return r, nil
	} else if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", domain.ErrStorageUnavailable, path, err)
	}
	if _, _, err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path ruta del archivo respaldado.
func (r *CustomerRepo) Path() string { return r.path }

// Insert agrega un <customer> al final con los seis campos en orden fijo y reescribe el archivo.
func (r *CustomerRepo) Insert(_ context.Context, customer *entity.Customer) error {
	doc, root, err := r.load()
	if err != nil {
		return err
	}
	writeCustomer(root.CreateElement(customerTag), customer)
	if err := r.save(doc); err != nil {
		return err
	}
	r.log.Debug().Str("customer_id", customer.CustomerID).Msg("cliente insertado")
	return nil
}

// Find devuelve el primer <customer> cuyo hijo field tiene exactamente el texto value.
func (r *CustomerRepo) Find(_ context.Context, field entity.Field, value string) (*entity.Customer, error) {
	_, root, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, el := range root.SelectElements(customerTag) {
		child := el.SelectElement(string(field))
		if child != nil && child.Text() == value {
			return readCustomer(el), nil
		}
	}
	return nil, nil
}

// Update localiza el <customer> por customer_id, sobrescribe los campos mutables y reescribe el archivo.
func (r *CustomerRepo) Update(_ context.Context, customer *entity.Customer, fullName, position, organizationName, email, phone string) error {
	doc, root, err := r.load()
	if err != nil {
		return err
	}
	el := findByID(root, customer.CustomerID)
	if el == nil {
		return nil
	}
	updated := readCustomer(el)
	updated.Apply(fullName, position, organizationName, email, phone)
	writeCustomer(el, updated)
	if err := r.save(doc); err != nil {
		return err
	}
	r.log.Debug().Str("customer_id", customer.CustomerID).Msg("cliente actualizado")
	return nil
}

// Delete elimina el <customer> con el mismo customer_id y reescribe el archivo.
func (r *CustomerRepo) Delete(_ context.Context, customer *entity.Customer) error {
	doc, root, err := r.load()
	if err != nil {
		return err
	}
	el := findByID(root, customer.CustomerID)
	if el == nil {
		return nil
	}
	root.RemoveChild(el)
	if err := r.save(doc); err != nil {
		return err
	}
	r.log.Debug().Str("customer_id", customer.CustomerID).Msg("cliente eliminado")
	return nil
}

// List devuelve todos los registros en orden de documento, ordenados si sortBy no está vacío.
func (r *CustomerRepo) List(_ context.Context, sortBy []entity.Field) ([]*entity.Customer, error) {
	_, root, err := r.load()
	if err != nil {
		return nil, err
	}
	elements := root.SelectElements(customerTag)
	out := make([]*entity.Customer, 0, len(elements))
	for _, el := range elements {
		out = append(out, readCustomer(el))
	}
	entity.SortCustomers(out, sortBy)
	return out, nil
}

func (r *CustomerRepo) load() (*etree.Document, *etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if err := doc.ReadFromFile(r.path); err != nil {
		return nil, nil, fmt.Errorf("%w: leer %s: %v", domain.ErrStorageUnavailable, r.path, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != rootTag {
		return nil, nil, fmt.Errorf("%w: %s no tiene raíz <%s>", domain.ErrStorageUnavailable, r.path, rootTag)
	}
	return doc, root, nil
}

// save escribe en un temporal del mismo directorio y lo renombra sobre el original,
// así un fallo a mitad de escritura no deja el archivo truncado.
func (r *CustomerRepo) save(doc *etree.Document) error {
	setUTF8Declaration(doc)
	doc.Indent(2)
	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: crear temporal: %v", domain.ErrStorageUnavailable, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := doc.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrStorageUnavailable, r.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: cerrar %s: %v", domain.ErrStorageUnavailable, tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: reemplazar %s: %v", domain.ErrStorageUnavailable, r.path, err)
	}
	return nil
}

func findByID(root *etree.Element, customerID string) *etree.Element {
	for _, el := range root.SelectElements(customerTag) {
		if id := el.SelectElement(string(entity.FieldCustomerID)); id != nil && id.Text() == customerID {
			return el
		}
	}
	return nil
}

func readCustomer(el *etree.Element) *entity.Customer {
	text := func(f entity.Field) string {
		if child := el.SelectElement(string(f)); child != nil {
			return child.Text()
		}
		return ""
	}
	return &entity.Customer{
		CustomerID:       text(entity.FieldCustomerID),
		FullName:         text(entity.FieldFullName),
		Position:         text(entity.FieldPosition),
		OrganizationName: text(entity.FieldOrganizationName),
		Email:            text(entity.FieldEmail),
		Phone:            text(entity.FieldPhone),
	}
}

// writeCustomer reemplaza los hijos de el por los seis campos en el orden canónico.
func writeCustomer(el *etree.Element, c *entity.Customer) {
	for _, child := range el.ChildElements() {
		el.RemoveChild(child)
	}
	for _, f := range entity.Fields {
		v, _ := c.Value(f)
		el.CreateElement(string(f)).SetText(v)
	}
}
