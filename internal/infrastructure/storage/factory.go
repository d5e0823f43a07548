// Package storage elige una sola vez, al arrancar, el backend de clientes según la configuración.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/customer-handbook/internal/domain"
	"github.com/jhoicas/customer-handbook/internal/domain/repository"
	"github.com/jhoicas/customer-handbook/internal/infrastructure/memory"
	"github.com/jhoicas/customer-handbook/internal/infrastructure/postgres"
	"github.com/jhoicas/customer-handbook/internal/infrastructure/xmlfile"
	"github.com/jhoicas/customer-handbook/pkg/config"
)

// Open construye el backend indicado por cfg.Backend() (archivo > base de datos > memoria).
// La función devuelta libera los recursos del backend (pool PostgreSQL); nunca es nil.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.CustomerRepository, func(), error) {
	noop := func() {}
	switch backend := cfg.Backend(); backend {
	case config.BackendFile:
		r, err := xmlfile.NewCustomerRepository(cfg.Storage.FilePath, log)
		if err != nil {
			return nil, noop, err
		}
		return r, noop, nil
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
		}
		if err := postgres.NewTxRunner(pool, log).Bootstrap(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return postgres.NewCustomerRepository(pool, log), pool.Close, nil
	case config.BackendMemory:
		return memory.NewCustomerRepository(log), noop, nil
	default:
		return nil, noop, fmt.Errorf("backend desconocido: %s", backend)
	}
}
