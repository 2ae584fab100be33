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

	"github.com/Apurer/huerto-store/internal/domains/catalog/domain"
	"github.com/Apurer/huerto-store/internal/domains/catalog/ports"
	"github.com/Apurer/huerto-store/internal/shared/editor"
)

const tracerName = "github.com/Apurer/huerto-store/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	ctx, span := s.startSpan(ctx, "Service.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("product.result.count", len(result)))
	return result, nil
}

// Search filters the catalog with instrumentation.
func (s *Service) Search(ctx context.Context, query ports.ProductQuery) ([]domain.Product, error) {
	ctx, span := s.startSpan(ctx, "Service.Search",
		attribute.String("product.query.text", query.Text),
		attribute.String("product.query.category", query.Category),
		attribute.String("product.query.low_stock", query.LowStock.String()),
	)
	defer span.End()

	result, err := s.inner.Search(ctx, query)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to search products", slog.String("query", query.Text))
	}
	span.SetAttributes(attribute.Int("product.result.count", len(result)))
	s.logInfo(ctx, "searched products", slog.String("query", query.Text), slog.String("category", query.Category), slog.Int("count", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, span := s.startSpan(ctx, "Service.GetByID", attribute.Int64("product.id", id))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get product", slog.Int64("product.id", id))
	}
	return result, nil
}

// Delete removes a product with instrumentation.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "Service.Delete", attribute.Int64("product.id", id))
	defer span.End()

	s.logInfo(ctx, "deleting product", slog.Int64("product.id", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete product", slog.Int64("product.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "product deleted", slog.Int64("product.id", id))
	return nil
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	ctx, span := s.startSpan(ctx, "Service.Categories")
	defer span.End()

	result, err := s.inner.Categories(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list categories")
	}
	return result, nil
}

func (s *Service) EditorState(ctx context.Context, session string) (editor.State, error) {
	ctx, span := s.startSpan(ctx, "Service.EditorState")
	defer span.End()

	state, err := s.inner.EditorState(ctx, session)
	if err != nil {
		return state, s.handleError(ctx, span, err, "failed to read product editor")
	}
	return state, nil
}

func (s *Service) SelectForEdit(ctx context.Context, session string, id int64) (editor.State, error) {
	ctx, span := s.startSpan(ctx, "Service.SelectForEdit", attribute.Int64("product.id", id))
	defer span.End()

	state, err := s.inner.SelectForEdit(ctx, session, id)
	if err != nil {
		return state, s.handleError(ctx, span, err, "failed to select product for edit", slog.Int64("product.id", id))
	}
	s.logInfo(ctx, "editing product", slog.Int64("product.id", id))
	return state, nil
}

func (s *Service) UpdateDraft(ctx context.Context, session string, fields editor.Form) (editor.State, error) {
	ctx, span := s.startSpan(ctx, "Service.UpdateDraft", attribute.Int("product.draft.fields", len(fields)))
	defer span.End()

	state, err := s.inner.UpdateDraft(ctx, session, fields)
	if err != nil {
		return state, s.handleError(ctx, span, err, "failed to update product draft")
	}
	return state, nil
}

// SubmitDraft commits the editor with instrumentation.
func (s *Service) SubmitDraft(ctx context.Context, session string) (*ports.CommitResult, error) {
	ctx, span := s.startSpan(ctx, "Service.SubmitDraft")
	defer span.End()

	result, err := s.inner.SubmitDraft(ctx, session)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to submit product draft")
	}
	if result == nil {
		return result, nil
	}
	span.SetAttributes(attribute.Bool("product.commit.applied", result.Applied), attribute.Bool("product.commit.created", result.Created))
	if !result.Applied || result.Product == nil {
		s.logInfo(ctx, "product edit target no longer exists; nothing committed")
		return result, nil
	}
	if result.Created {
		s.metrics.recordCreated(ctx, result.Product.Category)
		s.logInfo(ctx, "product created", slog.Int64("product.id", result.Product.ID), slog.String("category", result.Product.Category))
	} else {
		s.metrics.recordUpdated(ctx, result.Product.Category)
		s.logInfo(ctx, "product updated", slog.Int64("product.id", result.Product.ID), slog.String("category", result.Product.Category))
	}
	return result, nil
}

func (s *Service) CancelEdit(ctx context.Context, session string) (editor.State, error) {
	ctx, span := s.startSpan(ctx, "Service.CancelEdit")
	defer span.End()

	state, err := s.inner.CancelEdit(ctx, session)
	if err != nil {
		return state, s.handleError(ctx, span, err, "failed to cancel product edit")
	}
	return state, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	productsCreated metric.Int64Counter
	productsUpdated metric.Int64Counter
	productsDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	productsCreated, _ := m.Int64Counter("catalog.service.created", metric.WithDescription("Number of products created"))
	productsUpdated, _ := m.Int64Counter("catalog.service.updated", metric.WithDescription("Number of products updated"))
	productsDeleted, _ := m.Int64Counter("catalog.service.deleted", metric.WithDescription("Number of products deleted"))
	return serviceMetrics{
		productsCreated: productsCreated,
		productsUpdated: productsUpdated,
		productsDeleted: productsDeleted,
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context, category string) {
	addCounter(ctx, m.productsCreated, 1, attribute.String("product.category", category))
}

func (m serviceMetrics) recordUpdated(ctx context.Context, category string) {
	addCounter(ctx, m.productsUpdated, 1, attribute.String("product.category", category))
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	addCounter(ctx, m.productsDeleted, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
