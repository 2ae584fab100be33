package application

import (
	"github.com/Apurer/huerto-store/internal/domains/orders/domain"
	"github.com/Apurer/huerto-store/internal/shared/table"
)

const EmptyOrdersMessage = "No hay pedidos que coincidan con los filtros."

var statusTones = map[domain.Status]table.Tone{
	domain.StatusCompleted: table.TonePositive,
	domain.StatusPending:   table.ToneCaution,
	domain.StatusCancelled: table.ToneNegative,
}

// StatusTone maps an order status to its badge colour; unknown statuses get the default.
func StatusTone(status domain.Status) table.Tone {
	if tone, ok := statusTones[status]; ok {
		return tone
	}
	return table.ToneDefault
}

// OrderTable renders the back-office order listing.
func OrderTable(orders []domain.Order, f *table.Formatter) table.Table {
	columns := []table.Column[domain.Order]{
		{Key: "id", Title: "Pedido", Cell: func(o domain.Order) table.Cell { return table.Text(o.ID) }},
		{Key: "fecha", Title: "Fecha", Cell: func(o domain.Order) table.Cell { return table.Text(f.Date(o.Date.Time)) }},
		{Key: "cliente", Title: "Cliente", Cell: func(o domain.Order) table.Cell { return table.Text(o.Customer) }},
		{Key: "total", Title: "Total", Cell: func(o domain.Order) table.Cell {
			return table.Text(f.Currency(o.Total.Round(0).IntPart()))
		}},
		{Key: "estado", Title: "Estado", Cell: func(o domain.Order) table.Cell {
			return table.Badge(string(o.Status), StatusTone(o.Status))
		}},
	}
	return table.Render(orders, func(o domain.Order) string { return o.ID }, columns, EmptyOrdersMessage)
}
