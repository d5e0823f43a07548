package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-handbook/internal/domain"
	"github.com/jhoicas/customer-handbook/internal/infrastructure/memory"
	"github.com/jhoicas/customer-handbook/internal/infrastructure/storage"
	"github.com/jhoicas/customer-handbook/internal/infrastructure/xmlfile"
	"github.com/jhoicas/customer-handbook/pkg/config"
)

func TestOpen_Memoria(t *testing.T) {
	repo, closeRepo, err := storage.Open(context.Background(), &config.Config{}, zerolog.Nop())
	require.NoError(t, err)
	defer closeRepo()
	assert.IsType(t, &memory.CustomerRepo{}, repo)
}

// El archivo gana aunque haya credenciales de base de datos: no se intenta conectar.
func TestOpen_ArchivoAntesQueBaseDeDatos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handbook.xml")
	cfg := &config.Config{
		Storage: config.StorageConfig{FilePath: path},
		DB:      config.DBConfig{DBName: "handbook", Host: "127.0.0.1", Port: 1},
	}

	repo, closeRepo, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeRepo()

	assert.IsType(t, &xmlfile.CustomerRepo{}, repo)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_ArchivoInvalido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handbook.xml")
	require.NoError(t, os.WriteFile(path, []byte("<other/>"), 0o644))

	_, closeRepo, err := storage.Open(context.Background(), &config.Config{Storage: config.StorageConfig{FilePath: path}}, zerolog.Nop())
	require.NotNil(t, closeRepo)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
