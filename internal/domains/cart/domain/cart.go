package domain

import (
	"strconv"
	"strings"

	catalog "github.com/Apurer/huerto-store/internal/domains/catalog/domain"
)

// Line is a product snapshot taken when it was first added, plus the quantity.
type Line struct {
	catalog.Product
	Quantity int64 `json:"cantidad"`
}

// Subtotal is price times quantity.
func (l Line) Subtotal() int64 {
	return l.Price * l.Quantity
}

// Cart holds at most one line per product id, in insertion order.
type Cart []Line

// Add returns a copy of c with qty units of product added. An existing line keeps its
// snapshot and only its quantity grows.
func (c Cart) Add(product catalog.Product, qty int64) Cart {
	if qty <= 0 {
		qty = 1
	}
	next := append(make(Cart, 0, len(c)+1), c...)
	for i := range next {
		if next[i].ID == product.ID {
			next[i].Quantity += qty
			return next
		}
	}
	return append(next, Line{Product: product, Quantity: qty})
}

// Units sums the quantities of every line.
func (c Cart) Units() int64 {
	var n int64
	for _, l := range c {
		n += l.Quantity
	}
	return n
}

// Total sums every line subtotal.
func (c Cart) Total() int64 {
	var n int64
	for _, l := range c {
		n += l.Subtotal()
	}
	return n
}

// Changed is published after every persisted cart mutation.
type Changed struct {
	Lines int   `json:"lineas"`
	Units int64 `json:"unidades"`
}

// Summary describes c for change subscribers.
func (c Cart) Summary() Changed {
	return Changed{Lines: len(c), Units: c.Units()}
}

// ParseQuantity reads the leading integer of raw. Missing, non-numeric or non-positive
// input yields 1.
func ParseQuantity(raw string) int64 {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 1
	}
	n, err := strconv.ParseInt(raw[:end], 10, 64)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}
