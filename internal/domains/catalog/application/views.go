package application

import (
	"strconv"

	"github.com/Apurer/huerto-store/internal/domains/catalog/domain"
	"github.com/Apurer/huerto-store/internal/shared/table"
)

// EmptyProductsMessage fills the placeholder row of an empty product table.
const EmptyProductsMessage = "No hay productos que coincidan con los filtros."

var stockTones = map[domain.StockBand]table.Tone{
	domain.StockHigh:   table.TonePositive,
	domain.StockMedium: table.ToneCaution,
	domain.StockLow:    table.ToneNegative,
}

// StockTone maps a stock level to its badge colour.
func StockTone(stock int64) table.Tone {
	return stockTones[domain.BandFor(stock)]
}

// ProductTable renders the back-office product listing.
func ProductTable(products []domain.Product, f *table.Formatter) table.Table {
	columns := []table.Column[domain.Product]{
		{Key: "id", Title: "ID", Cell: func(p domain.Product) table.Cell {
			return table.Text(strconv.FormatInt(p.ID, 10))
		}},
		{Key: "nombre", Title: "Nombre", Cell: func(p domain.Product) table.Cell { return table.Text(p.Name) }},
		{Key: "categoria", Title: "Categoría", Cell: func(p domain.Product) table.Cell { return table.Text(p.Category) }},
		{Key: "precio", Title: "Precio", Cell: func(p domain.Product) table.Cell {
			return table.Text(f.Currency(p.Price))
		}},
		{Key: "stock", Title: "Stock", Cell: func(p domain.Product) table.Cell {
			return table.Badge(strconv.FormatInt(p.Stock, 10), StockTone(p.Stock))
		}},
		{Key: "origen", Title: "Origen", Cell: func(p domain.Product) table.Cell { return table.Text(p.Origin) }},
	}
	return table.Render(products, productKey, columns, EmptyProductsMessage)
}

func productKey(p domain.Product) string { return strconv.FormatInt(p.ID, 10) }
