// Package memory implementa CustomerRepository en memoria (vida del proceso, sin E/S).
package memory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/customer-handbook/internal/domain/entity"
	"github.com/jhoicas/customer-handbook/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo guarda los registros en un slice en orden de inserción.
// Se pierde al terminar el proceso. Sin locks: la sesión es secuencial.
type CustomerRepo struct {
	customers []*entity.Customer
	log       zerolog.Logger
}

// NewCustomerRepository construye el repositorio vacío.
func NewCustomerRepository(log zerolog.Logger) *CustomerRepo {
	return &CustomerRepo{log: log.With().Str("backend", "memory").Logger()}
}

// Insert agrega una copia del cliente al final.
func (r *CustomerRepo) Insert(_ context.Context, customer *entity.Customer) error {
	c := *customer
	r.customers = append(r.customers, &c)
	r.log.Debug().Str("customer_id", c.CustomerID).Int("total", len(r.customers)).Msg("cliente insertado")
	return nil
}

// Find recorre los registros y devuelve una copia del primero cuyo campo coincide exactamente.
func (r *CustomerRepo) Find(_ context.Context, field entity.Field, value string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if v, _ := c.Value(field); v == value {
			found := *c
			return &found, nil
		}
	}
	return nil, nil
}

// Update sobrescribe los campos mutables del registro con el mismo customer_id.
func (r *CustomerRepo) Update(_ context.Context, customer *entity.Customer, fullName, position, organizationName, email, phone string) error {
	if i := r.indexOf(customer.CustomerID); i >= 0 {
		r.customers[i].Apply(fullName, position, organizationName, email, phone)
		r.log.Debug().Str("customer_id", customer.CustomerID).Msg("cliente actualizado")
	}
	return nil
}

// Delete elimina el registro con el mismo customer_id conservando el orden del resto.
func (r *CustomerRepo) Delete(_ context.Context, customer *entity.Customer) error {
	if i := r.indexOf(customer.CustomerID); i >= 0 {
		r.customers = append(r.customers[:i], r.customers[i+1:]...)
		r.log.Debug().Str("customer_id", customer.CustomerID).Msg("cliente eliminado")
	}
	return nil
}

// List devuelve copias de todos los registros, ordenadas si sortBy no está vacío.
func (r *CustomerRepo) List(_ context.Context, sortBy []entity.Field) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		cp := *c
		out = append(out, &cp)
	}
	entity.SortCustomers(out, sortBy)
	return out, nil
}

func (r *CustomerRepo) indexOf(customerID string) int {
	for i, c := range r.customers {
		if c.CustomerID == customerID {
			return i
		}
	}
	return -1
}
