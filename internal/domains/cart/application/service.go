package application

import (
	"context"
	"log/slog"

	"github.com/Apurer/huerto-store/internal/domains/cart/domain"
	"github.com/Apurer/huerto-store/internal/domains/cart/ports"
	"github.com/Apurer/huerto-store/internal/platform/localstore"
	"github.com/Apurer/huerto-store/internal/shared/events"
)

// Service keeps the cart in the local store and announces every change on a bus.
type Service struct {
	lines    *localstore.Collection[domain.Line]
	products ports.ProductCatalog
	bus      *events.Bus[domain.Changed]
	logger   *slog.Logger
}

var _ ports.Service = (*Service)(nil)

type Option func(*Service)

// WithBus shares a bus with other publishers or subscribers.
func WithBus(bus *events.Bus[domain.Changed]) Option {
	return func(s *Service) {
		if bus != nil {
			s.bus = bus
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService wires the cart service. The cart starts empty.
func NewService(store localstore.Store, products ports.ProductCatalog, opts ...Option) *Service {
	s := &Service{
		lines:    localstore.NewCollection[domain.Line](store, localstore.KeyCart, nil),
		products: products,
		bus:      events.NewBus[domain.Changed](),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Get(ctx context.Context) (domain.Cart, error) {
	lines, err := s.lines.All(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Cart(lines), nil
}

// AddToCart snapshots the product, merges it into the cart, persists the whole cart and
// then publishes the new summary.
func (s *Service) AddToCart(ctx context.Context, productID, quantity int64) (domain.Cart, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	lines, err := s.lines.Mutate(ctx, func(lines []domain.Line) ([]domain.Line, error) {
		return domain.Cart(lines).Add(*product, quantity), nil
	})
	if err != nil {
		return nil, err
	}
	cart := domain.Cart(lines)
	s.bus.Publish(cart.Summary())
	s.logger.DebugContext(ctx, "cart updated", slog.Int64("product_id", productID), slog.Int64("units", cart.Units()))
	return cart, nil
}

// Clear empties the cart and publishes an empty summary.
func (s *Service) Clear(ctx context.Context) error {
	if _, err := s.lines.Mutate(ctx, func([]domain.Line) ([]domain.Line, error) {
		return []domain.Line{}, nil
	}); err != nil {
		return err
	}
	s.bus.Publish(domain.Changed{})
	return nil
}

func (s *Service) Subscribe() (<-chan domain.Changed, func()) {
	return s.bus.Subscribe()
}
