package ports

import (
	"errors"

	"github.com/Apurer/huerto-store/internal/shared/filter"
)

var ErrNotFound = errors.New("product not found")

// CategorySentinel is the category filter value meaning "every category".
const CategorySentinel = "todas"

// ProductQuery carries the active product filters.
type ProductQuery struct {
	Text     string
	Category string
	LowStock filter.TriState
}
