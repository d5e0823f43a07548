package entity

import (
	"slices"
	"strings"
)

// SortCustomers ordena in situ de forma ascendente por la clave compuesta sortBy
// (primario, secundario, ...). Comparación lexicográfica sensible a mayúsculas.
// El orden es estable: los empates completos conservan el orden de inserción.
func SortCustomers(list []*Customer, sortBy []Field) {
	if len(sortBy) == 0 {
		return
	}
	slices.SortStableFunc(list, func(a, b *Customer) int {
		for _, f := range sortBy {
			av, _ := a.Value(f)
			bv, _ := b.Value(f)
			if c := strings.Compare(av, bv); c != 0 {
				return c
			}
		}
		return 0
	})
}
