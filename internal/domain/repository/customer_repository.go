package repository

import (
	"context"

	"github.com/jhoicas/customer-handbook/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Lo implementan el backend en memoria, el archivo XML y PostgreSQL.
// No detecta duplicados: esa regla vive en el caso de uso.
type CustomerRepository interface {
	Insert(ctx context.Context, customer *entity.Customer) error
	// Find devuelve (nil, nil) si ningún registro coincide.
	Find(ctx context.Context, field entity.Field, value string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer, fullName, position, organizationName, email, phone string) error
	Delete(ctx context.Context, customer *entity.Customer) error
	// List sin campos devuelve el orden nativo del backend; con campos, orden ascendente compuesto.
	List(ctx context.Context, sortBy []entity.Field) ([]*entity.Customer, error)
}
