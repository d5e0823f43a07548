package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/customer-handbook/internal/domain/entity"
)

func TestParseField(t *testing.T) {
	for _, f := range entity.Fields {
		got, ok := entity.ParseField(string(f))
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	for _, name := range []string{"", "customer", "Customer_ID", "name_of_the_organization"} {
		_, ok := entity.ParseField(name)
		assert.False(t, ok, "%q no es un campo", name)
	}
}

func TestCustomer_SetNoModificaCustomerID(t *testing.T) {
	c := &entity.Customer{CustomerID: "000000001"}
	assert.False(t, c.Set(entity.FieldCustomerID, "000000002"))
	assert.Equal(t, "000000001", c.CustomerID)

	assert.True(t, c.Set(entity.FieldPhone, "79278763447"))
	v, ok := c.Value(entity.FieldPhone)
	assert.True(t, ok)
	assert.Equal(t, "79278763447", v)
}

func TestCustomer_String(t *testing.T) {
	c := &entity.Customer{
		CustomerID: "000000001", FullName: "Ivanov Vasyl", Position: "developer",
		OrganizationName: "FGH", Email: "vasyl@mail.ru", Phone: "79278763423",
	}
	assert.Equal(t, "000000001\tIvanov Vasyl\tdeveloper\tFGH\tvasyl@mail.ru\t79278763423", c.String())
}

func TestSortCustomers_EstableYCompuesto(t *testing.T) {
	list := []*entity.Customer{
		{CustomerID: "3", FullName: "b", Position: "x"},
		{CustomerID: "1", FullName: "a", Position: "y"},
		{CustomerID: "2", FullName: "b", Position: "x"},
		{CustomerID: "4", FullName: "B", Position: "x"},
	}
	entity.SortCustomers(list, []entity.Field{entity.FieldPosition, entity.FieldFullName})

	got := make([]string, 0, len(list))
	for _, c := range list {
		got = append(got, c.CustomerID)
	}
	// "B" < "b"; empate total (3, 2) conserva el orden original
	assert.Equal(t, []string{"4", "3", "2", "1"}, got)
}

func TestSortCustomers_SinCamposNoReordena(t *testing.T) {
	list := []*entity.Customer{{CustomerID: "2"}, {CustomerID: "1"}}
	entity.SortCustomers(list, nil)
	assert.Equal(t, "2", list[0].CustomerID)
}
