package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultOrders is the sample order history used when nothing has been persisted yet.
func DefaultOrders() []Order {
	return []Order{
		{ID: "ORD-1001", Date: NewDay(2025, time.March, 3), Customer: "Juan Pérez", Total: decimal.NewFromInt(15400), Status: StatusCompleted},
		{ID: "ORD-1002", Date: NewDay(2025, time.March, 5), Customer: "María López", Total: decimal.NewFromInt(8900), Status: StatusPending},
		{ID: "ORD-1003", Date: NewDay(2025, time.March, 7), Customer: "Carlos Gómez", Total: decimal.NewFromInt(23750), Status: StatusCompleted},
		{ID: "ORD-1004", Date: NewDay(2025, time.March, 10), Customer: "Pedro Sánchez", Total: decimal.NewFromInt(5200), Status: StatusCancelled},
		{ID: "ORD-1005", Date: NewDay(2025, time.March, 12), Customer: "Lucía Rojas", Total: decimal.NewFromInt(31980), Status: StatusPending},
	}
}
