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

	"github.com/Apurer/huerto-store/internal/domains/customers/domain"
	"github.com/Apurer/huerto-store/internal/domains/customers/ports"
	"github.com/Apurer/huerto-store/internal/shared/editor"
)

const tracerName = "github.com/Apurer/huerto-store/internal/domains/customers/adapters/observability/service"

// Service decorates the customers application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
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

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
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
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "Service.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list customers")
	}
	return result, nil
}

func (s *Service) Search(ctx context.Context, query ports.CustomerQuery) ([]domain.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Search", trace.WithAttributes(
		attribute.String("customer.query.country", query.Country),
		attribute.String("customer.query.frequent", query.Frequent.String()),
	))
	defer span.End()

	result, err := s.inner.Search(ctx, query)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to search customers")
	}
	span.SetAttributes(attribute.Int("customer.result.count", len(result)))
	return result, nil
}

func (s *Service) GetByRUT(ctx context.Context, rut string) (*domain.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "Service.GetByRUT")
	defer span.End()

	result, err := s.inner.GetByRUT(ctx, rut)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get customer", slog.String("rut", rut))
	}
	return result, nil
}

func (s *Service) Countries(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Countries")
	defer span.End()

	result, err := s.inner.Countries(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list countries")
	}
	return result, nil
}

func (s *Service) EditorState(ctx context.Context, session string) (editor.State, error) {
	ctx, span := s.tracer.Start(ctx, "Service.EditorState")
	defer span.End()

	state, err := s.inner.EditorState(ctx, session)
	if err != nil {
		return state, s.handleError(ctx, span, err, "failed to read customer editor")
	}
	return state, nil
}

func (s *Service) SelectForEdit(ctx context.Context, session, rut string) (editor.State, error) {
	ctx, span := s.tracer.Start(ctx, "Service.SelectForEdit")
	defer span.End()

	state, err := s.inner.SelectForEdit(ctx, session, rut)
	if err != nil {
		return state, s.handleError(ctx, span, err, "failed to select customer for edit", slog.String("rut", rut))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "editing customer", slog.String("rut", rut))
	return state, nil
}

func (s *Service) UpdateDraft(ctx context.Context, session string, fields editor.Form) (editor.State, error) {
	ctx, span := s.tracer.Start(ctx, "Service.UpdateDraft")
	defer span.End()

	state, err := s.inner.UpdateDraft(ctx, session, fields)
	if err != nil {
		return state, s.handleError(ctx, span, err, "failed to update customer draft")
	}
	return state, nil
}

func (s *Service) SubmitDraft(ctx context.Context, session string) (*ports.CommitResult, error) {
	ctx, span := s.tracer.Start(ctx, "Service.SubmitDraft")
	defer span.End()

	result, err := s.inner.SubmitDraft(ctx, session)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to submit customer draft")
	}
	if result != nil && result.Customer != nil {
		s.metrics.recordCommitted(ctx, result.Created)
		s.logger.LogAttrs(ctx, slog.LevelInfo, "customer committed",
			slog.String("rut", result.Customer.RUT),
			slog.Bool("created", result.Created),
		)
	}
	return result, nil
}

func (s *Service) CancelEdit(ctx context.Context, session string) (editor.State, error) {
	ctx, span := s.tracer.Start(ctx, "Service.CancelEdit")
	defer span.End()

	state, err := s.inner.CancelEdit(ctx, session)
	if err != nil {
		return state, s.handleError(ctx, span, err, "failed to cancel customer edit")
	}
	return state, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	return err
}

type serviceMetrics struct {
	committed metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	committed, _ := m.Int64Counter("customers.service.committed", metric.WithDescription("Number of customer editor commits"))
	return serviceMetrics{committed: committed}
}

func (m serviceMetrics) recordCommitted(ctx context.Context, created bool) {
	if m.committed == nil {
		return
	}
	m.committed.Add(ctx, 1, metric.WithAttributes(attribute.Bool("customer.created", created)))
}

var _ ports.Service = (*Service)(nil)
