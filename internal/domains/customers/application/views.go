package application

import (
	"strconv"

	"github.com/Apurer/huerto-store/internal/domains/customers/domain"
	"github.com/Apurer/huerto-store/internal/shared/table"
)

const EmptyCustomersMessage = "No hay clientes que coincidan con los filtros."

// CustomerTable renders the back-office customer listing.
func CustomerTable(customers []domain.Customer) table.Table {
	columns := []table.Column[domain.Customer]{
		{Key: "rut", Title: "RUT", Cell: func(c domain.Customer) table.Cell { return table.Text(c.RUT) }},
		{Key: "nombre", Title: "Nombre", Cell: func(c domain.Customer) table.Cell { return table.Text(c.FullName()) }},
		{Key: "pais", Title: "País", Cell: func(c domain.Customer) table.Cell { return table.Text(c.Country) }},
		{Key: "pedidos", Title: "Pedidos", Cell: func(c domain.Customer) table.Cell {
			return table.Text(strconv.FormatInt(c.Orders, 10))
		}},
		{Key: "frecuente", Title: "Frecuente", Cell: func(c domain.Customer) table.Cell { return table.YesNo(c.Frequent) }},
	}
	return table.Render(customers, func(c domain.Customer) string { return c.RUT }, columns, EmptyCustomersMessage)
}
