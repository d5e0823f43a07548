package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/jhoicas/customer-handbook/internal/domain"
	"github.com/jhoicas/customer-handbook/internal/domain/entity"
	"github.com/jhoicas/customer-handbook/internal/domain/repository"
)

const customersTable = "customers"

// schemaDDL crea la tabla si no existe. row_id fija el orden natural de filas para listados sin orden.
const schemaDDL = `
	CREATE TABLE IF NOT EXISTS customers (
		row_id            BIGSERIAL PRIMARY KEY,
		customer_id       TEXT NOT NULL UNIQUE,
		full_name         TEXT NOT NULL DEFAULT '',
		position          TEXT NOT NULL DEFAULT '',
		organization_name TEXT NOT NULL DEFAULT '',
		email             TEXT NOT NULL DEFAULT '',
		phone             TEXT NOT NULL DEFAULT ''
	)`

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL (usable con pool o tx).
// Los valores siempre viajan como parámetros; los nombres de columna pasan por columnFor.
type CustomerRepo struct {
	q   Querier
	log zerolog.Logger
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier, log zerolog.Logger) *CustomerRepo {
	return &CustomerRepo{q: q, log: log.With().Str("backend", "postgres").Logger()}
}

// EnsureSchema crea la tabla customers si no existe.
func (r *CustomerRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, schemaDDL); err != nil {
		return unavailable("crear tabla customers", err)
	}
	return nil
}

// Insert persiste un nuevo cliente.
func (r *CustomerRepo) Insert(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (customer_id, full_name, position, organization_name, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		customer.CustomerID, customer.FullName, customer.Position,
		customer.OrganizationName, customer.Email, customer.Phone,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return unavailable("insert customer", err)
	}
	r.log.Debug().Str("customer_id", customer.CustomerID).Msg("cliente insertado")
	return nil
}

// Find obtiene el primer cliente (en orden de fila) cuyo campo coincide con value.
func (r *CustomerRepo) Find(ctx context.Context, field entity.Field, value string) (*entity.Customer, error) {
	query, err := findQuery(field)
	if err != nil {
		return nil, err
	}
	var c entity.Customer
	err = r.q.QueryRow(ctx, query, value).Scan(
		&c.CustomerID, &c.FullName, &c.Position, &c.OrganizationName, &c.Email, &c.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, unavailable("get customer", err)
	}
	return &c, nil
}

// Update actualiza los campos mutables; customer_id no cambia.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer, fullName, position, organizationName, email, phone string) error {
	query := `
		UPDATE customers SET full_name = $2, position = $3, organization_name = $4, email = $5, phone = $6
		WHERE customer_id = $1`
	_, err := r.q.Exec(ctx, query, customer.CustomerID, fullName, position, organizationName, email, phone)
	if err != nil {
		return unavailable("update customer", err)
	}
	r.log.Debug().Str("customer_id", customer.CustomerID).Msg("cliente actualizado")
	return nil
}

// Delete elimina un cliente por customer_id.
func (r *CustomerRepo) Delete(ctx context.Context, customer *entity.Customer) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1`, customer.CustomerID)
	if err != nil {
		return unavailable("delete customer", err)
	}
	r.log.Debug().Str("customer_id", customer.CustomerID).Msg("cliente eliminado")
	return nil
}

// List lista todos los clientes; sin sortBy en orden natural de filas.
func (r *CustomerRepo) List(ctx context.Context, sortBy []entity.Field) ([]*entity.Customer, error) {
	query, err := listQuery(sortBy)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, unavailable("list customers", err)
	}
	defer rows.Close()
	list := make([]*entity.Customer, 0)
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.CustomerID, &c.FullName, &c.Position, &c.OrganizationName, &c.Email, &c.Phone); err != nil {
			return nil, unavailable("scan customer", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list customers", err)
	}
	return list, nil
}

// columnFor traduce un campo a identificador SQL citado. Solo acepta los seis campos conocidos:
// los identificadores no admiten parámetros, así que nunca llegan a la consulta sin esta lista.
func columnFor(field entity.Field) (string, error) {
	if _, ok := entity.ParseField(string(field)); !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownField, string(field))
	}
	return pgx.Identifier{string(field)}.Sanitize(), nil
}

func selectColumns() string {
	cols := make([]string, 0, len(entity.Fields))
	for _, f := range entity.Fields {
		cols = append(cols, pgx.Identifier{string(f)}.Sanitize())
	}
	return strings.Join(cols, ", ")
}

func findQuery(field entity.Field) (string, error) {
	col, err := columnFor(field)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY row_id LIMIT 1",
		selectColumns(), customersTable, col), nil
}

// listQuery arma SELECT ... ORDER BY con comparación binaria (COLLATE "C") para que el orden
// sea lexicográfico y sensible a mayúsculas, igual que en los otros backends.
func listQuery(sortBy []entity.Field) (string, error) {
	order := make([]string, 0, len(sortBy)+1)
	for _, f := range sortBy {
		col, err := columnFor(f)
		if err != nil {
			return "", err
		}
		order = append(order, col+` COLLATE "C"`)
	}
	order = append(order, "row_id")
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		selectColumns(), customersTable, strings.Join(order, ", ")), nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, op, err)
}
