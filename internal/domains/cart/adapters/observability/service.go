package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/huerto-store/internal/domains/cart/domain"
	"github.com/Apurer/huerto-store/internal/domains/cart/ports"
)

const tracerName = "github.com/Apurer/huerto-store/internal/domains/cart/adapters/observability/service"

// Service decorates the cart port with tracing, logging, and metrics.
type Service struct {
	inner  ports.Service
	tracer trace.Tracer
	logger *slog.Logger
	added  metric.Int64Counter
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter counts units added to the cart.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		if m == nil {
			return
		}
		s.added, _ = m.Int64Counter("cart.service.units_added", metric.WithDescription("Number of units added to the cart"))
	}
}

func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{inner: inner}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *Service) Get(ctx context.Context) (domain.Cart, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Get")
	defer span.End()

	cart, err := s.inner.Get(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load cart")
	}
	span.SetAttributes(attribute.Int("cart.lines", len(cart)))
	return cart, nil
}

func (s *Service) AddToCart(ctx context.Context, productID, quantity int64) (domain.Cart, error) {
	ctx, span := s.tracer.Start(ctx, "Service.AddToCart", trace.WithAttributes(
		attribute.Int64("product.id", productID),
		attribute.Int64("cart.quantity", quantity),
	))
	defer span.End()

	cart, err := s.inner.AddToCart(ctx, productID, quantity)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add to cart", slog.Int64("product.id", productID))
	}
	if s.added != nil {
		s.added.Add(ctx, quantity, metric.WithAttributes(attribute.Int64("product.id", productID)))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "added to cart",
		slog.Int64("product.id", productID),
		slog.Int64("quantity", quantity),
		slog.Int64("cart.units", cart.Units()),
	)
	return cart, nil
}

func (s *Service) Clear(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "Service.Clear")
	defer span.End()

	if err := s.inner.Clear(ctx); err != nil {
		return s.handleError(ctx, span, err, "failed to clear cart")
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "cart cleared")
	return nil
}

func (s *Service) Subscribe() (<-chan domain.Changed, func()) {
	return s.inner.Subscribe()
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.LogAttrs(ctx, slog.LevelError, msg, append(attrs, slog.String("error", err.Error()))...)
	return err
}

var _ ports.Service = (*Service)(nil)
