package xmlfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/customer-handbook/internal/domain"
	"github.com/jhoicas/customer-handbook/internal/domain/entity"
	"github.com/jhoicas/customer-handbook/internal/domain/repository"
	"github.com/jhoicas/customer-handbook/internal/domain/repository/repositorytest"
	"github.com/jhoicas/customer-handbook/internal/infrastructure/xmlfile"
)

func newRepo(t *testing.T, path string) *xmlfile.CustomerRepo {
	t.Helper()
	repo, err := xmlfile.NewCustomerRepository(path, zerolog.Nop())
	require.NoError(t, err)
	return repo
}

func TestCustomerRepo_Contrato(t *testing.T) {
	repositorytest.Run(t, func(t *testing.T) repository.CustomerRepository {
		return newRepo(t, filepath.Join(t.TempDir(), "handbook.xml"))
	})
}

// Sin archivo previo se crea un documento vacío válido con raíz <data>.
func TestNewCustomerRepository_CreaArchivoVacio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handbook.xml")
	newRepo(t, path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, string(raw), "<data")
}

func TestNewCustomerRepository_RaizInvalida(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handbook.xml")
	require.NoError(t, os.WriteFile(path, []byte("<clients/>"), 0o644))

	_, err := xmlfile.NewCustomerRepository(path, zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestNewCustomerRepository_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handbook.xml")
	require.NoError(t, os.WriteFile(path, []byte("<data><<"), 0o644))

	_, err := xmlfile.NewCustomerRepository(path, zerolog.Nop())
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

// Escribir N registros, reabrir el archivo y listar devuelve los mismos N registros.
func TestCustomerRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "handbook.xml")
	repo := newRepo(t, path)

	want := []*entity.Customer{
		repositorytest.Ivanov(),
		{CustomerID: "000000002", FullName: "Ivanov Peter", Position: "manager", OrganizationName: `"COMPANY-3567"`, Email: "peter@mail.ru", Phone: "79279826478"},
		{CustomerID: "000000003", FullName: "Романов Дмитрий", Position: "менеджер", OrganizationName: "ООО <Рога & Копыта>", Email: "dmitriy@mail.ru", Phone: "79273987569"},
	}
	for _, c := range want {
		require.NoError(t, repo.Insert(ctx, c))
	}

	reopened := newRepo(t, path)
	got, err := reopened.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, *want[i], *got[i])
	}
}

// Los seis campos se escriben siempre en el orden canónico, también tras un update.
func TestCustomerRepo_OrdenDeCampos(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "handbook.xml")
	repo := newRepo(t, path)

	c := repositorytest.Ivanov()
	require.NoError(t, repo.Insert(ctx, c))
	require.NoError(t, repo.Update(ctx, c, c.FullName, c.Position, c.OrganizationName, "new@mail.ru", c.Phone))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(raw)
	last := -1
	for _, f := range entity.Fields {
		idx := strings.Index(doc, "<"+string(f)+">")
		require.GreaterOrEqual(t, idx, 0, "falta <%s>", f)
		assert.Greater(t, idx, last, "<%s> fuera de orden", f)
		last = idx
	}
	assert.Contains(t, doc, "<email>new@mail.ru</email>")
}

// El archivo es la única fuente de verdad: una edición externa se ve en la siguiente lectura.
func TestCustomerRepo_LeeEdicionesExternas(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "handbook.xml")
	repo := newRepo(t, path)
	require.NoError(t, repo.Insert(ctx, repositorytest.Ivanov()))

	external := `<data>
  <customer>
    <customer_id>000000009</customer_id>
    <full_name>Edited Outside</full_name>
    <position>manager</position>
    <organization_name>FGH</organization_name>
    <email>out@mail.ru</email>
    <phone>79270000000</phone>
  </customer>
</data>`
	require.NoError(t, os.WriteFile(path, []byte(external), 0o644))

	got, err := repo.Find(ctx, entity.FieldCustomerID, "000000009")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Edited Outside", got.FullName)

	gone, err := repo.Find(ctx, entity.FieldCustomerID, "000000001")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

// Un <customer> sin algún hijo se lee con cadena vacía en ese campo.
func TestCustomerRepo_CampoAusenteEsVacio(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "handbook.xml")
	doc := `<data><customer><customer_id>000000005</customer_id><full_name>No Phone</full_name></customer></data>`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	repo := newRepo(t, path)
	got, err := repo.Find(ctx, entity.FieldCustomerID, "000000005")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "", got.Phone)
	assert.Equal(t, "", got.Email)
}

// Archivos heredados en windows-1251 se leen y se reescriben en UTF-8.
func TestCustomerRepo_CodificacionWindows1251(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "handbook.xml")

	doc := `<?xml version="1.0" encoding="windows-1251"?>
<data><customer><customer_id>000000001</customer_id><full_name>Иванов Василий</full_name><position>разработчик</position><organization_name>ФГХ</organization_name><email>vasyl@mail.ru</email><phone>79278763423</phone></customer></data>`
	encoded, err := charmap.Windows1251.NewEncoder().String(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o644))

	repo := newRepo(t, path)
	got, err := repo.Find(ctx, entity.FieldFullName, "Иванов Василий")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "разработчик", got.Position)

	c := repositorytest.Ivanov()
	c.CustomerID = "000000002"
	require.NoError(t, repo.Insert(ctx, c))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `encoding="UTF-8"`)
	assert.Contains(t, string(raw), "Иванов Василий")
}
