package domain

import (
	"errors"
	"strings"
)

// DefaultOrigin is applied to products created without an origin.
const DefaultOrigin = "Chile"

// Stock thresholds shared by the stock badge and the low-stock filter.
const (
	HighStockAbove = 20
	LowStockBelow  = 10
)

// StockBand classifies a stock level.
type StockBand string

const (
	StockHigh   StockBand = "high"
	StockMedium StockBand = "medium"
	StockLow    StockBand = "low"
)

// Product is a catalog item.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Category    string `json:"categoria"`
	Description string `json:"descripcion"`
	Price       int64  `json:"precio"`
	Stock       int64  `json:"stock"`
	Origin      string `json:"origen,omitempty"`
	Image       string `json:"imagen,omitempty"`
}

var (
	ErrEmptyName     = errors.New("product name is required")
	ErrEmptyCategory = errors.New("product category is required")
	ErrNegativePrice = errors.New("price must be greater or equal to zero")
	ErrNegativeStock = errors.New("stock must be greater or equal to zero")
	ErrInvalidID     = errors.New("product id must be greater than zero")
)

// Validate enforces the product invariants.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(p.Category) == "" {
		return ErrEmptyCategory
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// ApplyDefaults fills optional fields left empty.
func (p *Product) ApplyDefaults() {
	if strings.TrimSpace(p.Origin) == "" {
		p.Origin = DefaultOrigin
	}
}

// Band classifies the product stock.
func (p Product) Band() StockBand {
	return BandFor(p.Stock)
}

// LowStock reports whether the product sits in the low band.
func (p Product) LowStock() bool {
	return p.Band() == StockLow
}

// BandFor classifies stock: above 20 is high, 10 through 20 is medium, below 10 is low.
func BandFor(stock int64) StockBand {
	switch {
	case stock > HighStockAbove:
		return StockHigh
	case stock >= LowStockBelow:
		return StockMedium
	default:
		return StockLow
	}
}

// NextID returns an identifier greater than every id in products.
func NextID(products []Product) int64 {
	var max int64
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
