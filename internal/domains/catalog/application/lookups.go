package application

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/Apurer/huerto-store/internal/domains/catalog/domain"
	"github.com/Apurer/huerto-store/internal/domains/catalog/ports"
)

// Lookups caches the reference lists fetched once from the external catalog.
// Until Load finishes every list is empty.
type Lookups struct {
	remote ports.RemoteCatalog
	logger *slog.Logger

	mu         sync.RWMutex
	loaded     bool
	categories []domain.Lookup
	countries  []domain.Lookup
	products   []domain.Product
}

// NewLookups returns empty lookups backed by remote. A nil remote leaves them empty forever.
func NewLookups(remote ports.RemoteCatalog, logger *slog.Logger) *Lookups {
	if logger == nil {
		logger = slog.Default()
	}
	return &Lookups{remote: remote, logger: logger}
}

// Load fetches categories, countries and products once. Failures are logged and the
// affected list stays empty; there is no retry.
func (l *Lookups) Load(ctx context.Context) {
	if l == nil || l.remote == nil {
		return
	}
	categories, err := l.remote.ListCategories(ctx)
	if err != nil {
		l.logger.WarnContext(ctx, "catalog lookup failed", slog.String("lookup", "categorias"), slog.Any("error", err))
	}
	countries, err := l.remote.ListCountries(ctx)
	if err != nil {
		l.logger.WarnContext(ctx, "catalog lookup failed", slog.String("lookup", "paises"), slog.Any("error", err))
	}
	products, err := l.remote.ListProducts(ctx)
	if err != nil {
		l.logger.WarnContext(ctx, "catalog lookup failed", slog.String("lookup", "productos"), slog.Any("error", err))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.categories = categories
	l.countries = countries
	l.products = products
	l.loaded = true
	l.logger.InfoContext(ctx, "catalog lookups loaded",
		slog.Int("categorias", len(categories)),
		slog.Int("paises", len(countries)),
		slog.Int("productos", len(products)),
	)
}

// Loaded reports whether Load has completed.
func (l *Lookups) Loaded() bool {
	if l == nil {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

func (l *Lookups) Categories() []domain.Lookup {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.categories)
}

func (l *Lookups) Countries() []domain.Lookup {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.countries)
}

// Products returns the remote catalog, used to seed an empty local store.
func (l *Lookups) Products() []domain.Product {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.products)
}
