package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// schemaLockKey clave del advisory lock que serializa el bootstrap del esquema entre procesos.
const schemaLockKey int64 = 0x68616e64626f6f6b // "handbook"

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool, log zerolog.Logger) *TxRunner {
	return &TxRunner{pool: pool, log: log}
}

// Run inicia una transacción, ejecuta fn con un repo atado a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repo *CustomerRepo) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return unavailable("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCustomerRepository(tx, r.log)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return unavailable("commit transaction", err)
	}
	return nil
}

// Bootstrap crea el esquema bajo un advisory lock de transacción.
// Dos procesos arrancando a la vez con CREATE TABLE IF NOT EXISTS pueden chocar en el catálogo.
func (r *TxRunner) Bootstrap(ctx context.Context) error {
	return r.Run(ctx, func(repo *CustomerRepo) error {
		if _, err := repo.q.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", schemaLockKey); err != nil {
			return unavailable("advisory lock", err)
		}
		if err := repo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
		return nil
	})
}
