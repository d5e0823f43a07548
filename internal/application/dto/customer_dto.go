package dto

import "github.com/jhoicas/customer-handbook/internal/domain/entity"

// CustomerRequest entrada para crear o reemplazar un cliente (los seis campos).
type CustomerRequest struct {
	CustomerID       string
	FullName         string
	Position         string
	OrganizationName string
	Email            string
	Phone            string
}

// ToEntity construye el Customer con todos los campos a la vez.
func (r CustomerRequest) ToEntity() *entity.Customer {
	return &entity.Customer{
		CustomerID:       r.CustomerID,
		FullName:         r.FullName,
		Position:         r.Position,
		OrganizationName: r.OrganizationName,
		Email:            r.Email,
		Phone:            r.Phone,
	}
}

// RequestFromEntity copia un registro existente en un request (base para Update parcial).
func RequestFromEntity(c *entity.Customer) CustomerRequest {
	return CustomerRequest{
		CustomerID:       c.CustomerID,
		FullName:         c.FullName,
		Position:         c.Position,
		OrganizationName: c.OrganizationName,
		Email:            c.Email,
		Phone:            c.Phone,
	}
}
