package domain

import (
	"errors"
	"strings"
)

// Customer is a registered buyer identified by RUT.
type Customer struct {
	RUT             string `json:"rut"`
	Name            string `json:"nombre"`
	PaternalSurname string `json:"apellidoPaterno"`
	MaternalSurname string `json:"apellidoMaterno,omitempty"`
	Country         string `json:"pais"`
	Orders          int64  `json:"pedidos"`
	Frequent        bool   `json:"frecuente"`
}

var (
	ErrEmptyRUT       = errors.New("customer rut is required")
	ErrEmptyName      = errors.New("customer name is required")
	ErrEmptySurname   = errors.New("customer paternal surname is required")
	ErrEmptyCountry   = errors.New("customer country is required")
	ErrNegativeOrders = errors.New("order count must be greater or equal to zero")
)

// Validate enforces the customer invariants.
func (c *Customer) Validate() error {
	switch {
	case strings.TrimSpace(c.RUT) == "":
		return ErrEmptyRUT
	case strings.TrimSpace(c.Name) == "":
		return ErrEmptyName
	case strings.TrimSpace(c.PaternalSurname) == "":
		return ErrEmptySurname
	case strings.TrimSpace(c.Country) == "":
		return ErrEmptyCountry
	case c.Orders < 0:
		return ErrNegativeOrders
	}
	return nil
}

// DisplayName joins the first name and the paternal surname.
func (c Customer) DisplayName() string {
	return strings.TrimSpace(c.Name + " " + c.PaternalSurname)
}

// FullName joins the first name and both surnames.
func (c Customer) FullName() string {
	return strings.Join(strings.Fields(c.Name+" "+c.PaternalSurname+" "+c.MaternalSurname), " ")
}
