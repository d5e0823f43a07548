package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/customer-handbook/internal/application/dto"
	"github.com/jhoicas/customer-handbook/internal/domain"
	"github.com/jhoicas/customer-handbook/internal/domain/entity"
	"github.com/jhoicas/customer-handbook/internal/domain/repository"
	"github.com/jhoicas/customer-handbook/internal/domain/validator"
)

// CustomerUseCase casos de uso del directorio de clientes sobre un único backend activo.
// Agrega las reglas que los backends no aplican: unicidad de customer_id y existencia previa.
// No guarda caché: toda lectura pasa por el repositorio.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente si el customer_id no existe. Con duplicado devuelve ErrDuplicate sin insertar.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*entity.Customer, error) {
	customer := in.ToEntity()
	if err := validator.ValidateCustomer(customer).Err(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.Find(ctx, entity.FieldCustomerID, customer.CustomerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Insert(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// FindByField busca el primer cliente cuyo campo coincide. Devuelve (nil, nil) si no hay registro.
func (uc *CustomerUseCase) FindByField(ctx context.Context, field entity.Field, value string) (*entity.Customer, error) {
	if _, ok := entity.ParseField(string(field)); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownField, string(field))
	}
	return uc.repo.Find(ctx, field, value)
}

// Get busca por customer_id y devuelve ErrNotFound si no existe.
func (uc *CustomerUseCase) Get(ctx context.Context, customerID string) (*entity.Customer, error) {
	c, err := uc.repo.Find(ctx, entity.FieldCustomerID, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Update reemplaza los campos mutables del cliente in.CustomerID. Si no existe devuelve ErrNotFound
// y no toca el backend. Solo se validan los campos que cambian: un valor guardado fuera de la
// aplicación no bloquea la edición de los demás.
func (uc *CustomerUseCase) Update(ctx context.Context, in dto.CustomerRequest) (*entity.Customer, error) {
	if err := validator.ValidateField(entity.FieldCustomerID, in.CustomerID).Err(); err != nil {
		return nil, err
	}
	current, err := uc.Get(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateChanges(current, in.ToEntity()).Err(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, current, in.FullName, in.Position, in.OrganizationName, in.Email, in.Phone); err != nil {
		return nil, err
	}
	current.Apply(in.FullName, in.Position, in.OrganizationName, in.Email, in.Phone)
	return current, nil
}

// Remove elimina el cliente. Si no existe devuelve ErrNotFound.
func (uc *CustomerUseCase) Remove(ctx context.Context, customerID string) error {
	current, err := uc.Get(ctx, customerID)
	if err != nil {
		return err
	}
	return uc.repo.Delete(ctx, current)
}

// List devuelve todos los clientes ordenados por sortBy (vacío = orden nativo). Nunca devuelve nil.
func (uc *CustomerUseCase) List(ctx context.Context, sortBy []entity.Field) ([]*entity.Customer, error) {
	for _, f := range sortBy {
		if _, ok := entity.ParseField(string(f)); !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownField, string(f))
		}
	}
	list, err := uc.repo.List(ctx, sortBy)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entity.Customer{}
	}
	return list, nil
}
