// Package repositorytest contiene la batería de pruebas común a toda implementación de
// repository.CustomerRepository (memoria, archivo XML, PostgreSQL).
package repositorytest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-handbook/internal/domain/entity"
	"github.com/jhoicas/customer-handbook/internal/domain/repository"
)

// Factory devuelve un repositorio vacío y aislado para cada subtest.
type Factory func(t *testing.T) repository.CustomerRepository

// Ivanov registro de ejemplo usado en la documentación del directorio.
func Ivanov() *entity.Customer {
	return &entity.Customer{
		CustomerID:       "000000001",
		FullName:         "Ivanov Vasyl",
		Position:         "developer",
		OrganizationName: "FGH",
		Email:            "vasyl@mail.ru",
		Phone:            "79278763423",
	}
}

func customer(id, name, position string) *entity.Customer {
	return &entity.Customer{
		CustomerID:       id,
		FullName:         name,
		Position:         position,
		OrganizationName: "FGH-2000",
		Email:            "mail" + id + "@mail.ru",
		Phone:            "7927876" + id[len(id)-4:],
	}
}

func ids(list []*entity.Customer) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.CustomerID)
	}
	return out
}

// Run ejecuta el contrato completo contra la implementación construida por newRepo.
func Run(t *testing.T, newRepo Factory) {
	ctx := context.Background()

	t.Run("InsertYFindPorCadaCampo", func(t *testing.T) {
		repo := newRepo(t)
		in := Ivanov()
		require.NoError(t, repo.Insert(ctx, in))

		for _, f := range entity.Fields {
			v, _ := in.Value(f)
			got, err := repo.Find(ctx, f, v)
			require.NoError(t, err)
			require.NotNil(t, got, "find por %s", f)
			assert.Equal(t, *in, *got)
		}
	})

	t.Run("FindSinCoincidenciaDevuelveNil", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Insert(ctx, Ivanov()))

		got, err := repo.Find(ctx, entity.FieldCustomerID, "999999999")
		require.NoError(t, err)
		assert.Nil(t, got)

		// coincidencia exacta: un prefijo no basta
		got, err = repo.Find(ctx, entity.FieldFullName, "Ivanov")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("FindDevuelveElPrimero", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Insert(ctx, customer("000000001", "Petrov Ivan", "manager")))
		require.NoError(t, repo.Insert(ctx, customer("000000002", "Sidorov Oleg", "manager")))

		got, err := repo.Find(ctx, entity.FieldPosition, "manager")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "000000001", got.CustomerID)
	})

	t.Run("UpdateSobrescribeCamposMutables", func(t *testing.T) {
		repo := newRepo(t)
		in := Ivanov()
		require.NoError(t, repo.Insert(ctx, in))
		require.NoError(t, repo.Insert(ctx, customer("000000002", "Sidorov Oleg", "manager")))

		current, err := repo.Find(ctx, entity.FieldCustomerID, in.CustomerID)
		require.NoError(t, err)
		require.NoError(t, repo.Update(ctx, current, in.FullName, "senior developer", in.OrganizationName, in.Email, "79278763447"))

		got, err := repo.Find(ctx, entity.FieldCustomerID, in.CustomerID)
		require.NoError(t, err)
		require.NotNil(t, got)
		want := *in
		want.Position = "senior developer"
		want.Phone = "79278763447"
		assert.Equal(t, want, *got)

		other, err := repo.Find(ctx, entity.FieldCustomerID, "000000002")
		require.NoError(t, err)
		require.NotNil(t, other)
		assert.Equal(t, "manager", other.Position, "los demás registros no cambian")
	})

	t.Run("DeleteEliminaSoloElRegistro", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Insert(ctx, customer("000000001", "Petrov Ivan", "manager")))
		require.NoError(t, repo.Insert(ctx, customer("000000002", "Sidorov Oleg", "manager")))
		require.NoError(t, repo.Insert(ctx, customer("000000003", "Romanov Dmitriy", "manager")))

		target, err := repo.Find(ctx, entity.FieldCustomerID, "000000002")
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, target))

		got, err := repo.Find(ctx, entity.FieldCustomerID, "000000002")
		require.NoError(t, err)
		assert.Nil(t, got)

		list, err := repo.List(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"000000001", "000000003"}, ids(list))
	})

	t.Run("ListVacio", func(t *testing.T) {
		repo := newRepo(t)
		list, err := repo.List(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("ListSinOrdenConservaInsercion", func(t *testing.T) {
		repo := newRepo(t)
		for _, id := range []string{"000000003", "000000001", "000000002"} {
			require.NoError(t, repo.Insert(ctx, customer(id, "Petrov Ivan", "manager")))
		}
		list, err := repo.List(ctx, []entity.Field{})
		require.NoError(t, err)
		assert.Equal(t, []string{"000000003", "000000001", "000000002"}, ids(list))
	})

	t.Run("ListOrdenCompuesto", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Insert(ctx, customer("000000001", "Sidorov Oleg", "manager")))
		require.NoError(t, repo.Insert(ctx, customer("000000002", "Abramov Ilya", "tester")))
		require.NoError(t, repo.Insert(ctx, customer("000000003", "Abramov Ilya", "developer")))
		require.NoError(t, repo.Insert(ctx, customer("000000004", "Petrov Ivan", "manager")))

		list, err := repo.List(ctx, []entity.Field{entity.FieldPosition, entity.FieldFullName})
		require.NoError(t, err)
		assert.Equal(t, []string{"000000003", "000000004", "000000001", "000000002"}, ids(list))

		list, err = repo.List(ctx, []entity.Field{entity.FieldFullName, entity.FieldPosition})
		require.NoError(t, err)
		assert.Equal(t, []string{"000000003", "000000002", "000000004", "000000001"}, ids(list))
	})

	t.Run("ListOrdenSensibleAMayusculas", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Insert(ctx, customer("000000001", "apple Tree", "manager")))
		require.NoError(t, repo.Insert(ctx, customer("000000002", "Banana Tree", "manager")))

		list, err := repo.List(ctx, []entity.Field{entity.FieldFullName})
		require.NoError(t, err)
		// "B" (0x42) precede a "a" (0x61)
		assert.Equal(t, []string{"000000002", "000000001"}, ids(list))
	})

	t.Run("CamposCirilicos", func(t *testing.T) {
		repo := newRepo(t)
		in := customer("000000007", "Иванов Василий", "разработчик")
		require.NoError(t, repo.Insert(ctx, in))

		got, err := repo.Find(ctx, entity.FieldFullName, "Иванов Василий")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, *in, *got)
	})
}
