package application

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/Apurer/huerto-store/internal/domains/customers/domain"
	"github.com/Apurer/huerto-store/internal/domains/customers/ports"
	"github.com/Apurer/huerto-store/internal/platform/localstore"
	"github.com/Apurer/huerto-store/internal/shared/editor"
	"github.com/Apurer/huerto-store/internal/shared/filter"
)

// Service orchestrates the customer use cases over the local customer collection.
type Service struct {
	customers *localstore.Collection[domain.Customer]
	editors   *editor.Sessions[domain.Customer]
	countries func() []string
	logger    *slog.Logger
}

var _ ports.Service = (*Service)(nil)

// Option configures the customer service.
type Option func(*Service)

// WithCountrySource supplies the reference country list, typically fetched from the catalog API.
func WithCountrySource(source func() []string) Option {
	return func(s *Service) {
		s.countries = source
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService wires the customer service with its dependencies.
func NewService(store localstore.Store, opts ...Option) *Service {
	s := &Service{
		customers: localstore.NewCollection(store, localstore.KeyCustomers, domain.DefaultCustomers),
		editors:   editor.NewSessions[domain.Customer](CustomerBinding{}),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customers.All(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return customers, nil
}

// Search filters the full customer list, recomputed on every call.
func (s *Service) Search(ctx context.Context, query ports.CustomerQuery) ([]domain.Customer, error) {
	customers, err := s.customers.All(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return filter.Apply(customers,
		filter.Contains[domain.Customer](query.Text, customerName, customerPaternal, customerMaternal),
		filter.Exact[domain.Customer](query.Country, ports.CountrySentinel, customerCountry),
		filter.Flag[domain.Customer](query.Frequent, customerFrequent),
	), nil
}

func (s *Service) GetByRUT(ctx context.Context, rut string) (*domain.Customer, error) {
	customers, err := s.customers.All(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	rut = strings.ToUpper(strings.TrimSpace(rut))
	idx := slices.IndexFunc(customers, func(c domain.Customer) bool { return c.RUT == rut })
	if idx < 0 {
		return nil, ports.ErrNotFound
	}
	customer := customers[idx]
	return &customer, nil
}

// Countries returns the reference country names, or the distinct customer countries until
// the reference list is available.
func (s *Service) Countries(ctx context.Context) ([]string, error) {
	if s.countries != nil {
		if names := s.countries(); len(names) > 0 {
			return names, nil
		}
	}
	customers, err := s.customers.All(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	names := make([]string, 0)
	for _, c := range customers {
		if c.Country != "" && !slices.Contains(names, c.Country) {
			names = append(names, c.Country)
		}
	}
	return names, nil
}

func (s *Service) EditorState(_ context.Context, session string) (editor.State, error) {
	var state editor.State
	err := s.editors.With(session, func(e *editor.Editor[domain.Customer]) error {
		state = e.State()
		return nil
	})
	return state, err
}

func (s *Service) SelectForEdit(ctx context.Context, session, rut string) (editor.State, error) {
	customer, err := s.GetByRUT(ctx, rut)
	if err != nil {
		return editor.State{}, err
	}
	var state editor.State
	err = s.editors.With(session, func(e *editor.Editor[domain.Customer]) error {
		e.Select(*customer)
		state = e.State()
		return nil
	})
	return state, err
}

func (s *Service) UpdateDraft(_ context.Context, session string, fields editor.Form) (editor.State, error) {
	var state editor.State
	err := s.editors.With(session, func(e *editor.Editor[domain.Customer]) error {
		if err := e.Fill(fields); err != nil {
			return err
		}
		state = e.State()
		return nil
	})
	return state, err
}

// SubmitDraft commits the session draft and persists the whole customer list.
func (s *Service) SubmitDraft(ctx context.Context, session string) (*ports.CommitResult, error) {
	var result ports.CommitResult
	err := s.editors.With(session, func(e *editor.Editor[domain.Customer]) error {
		_, err := s.customers.Mutate(ctx, func(customers []domain.Customer) ([]domain.Customer, error) {
			commit, err := e.Prepare(customers)
			if err != nil {
				return nil, err
			}
			result.Created = commit.Created
			result.Applied = commit.Applied
			if commit.Applied {
				record := commit.Record
				result.Customer = &record
			}
			return commit.Collection, nil
		})
		if err == nil {
			e.Confirm()
		}
		result.State = e.State()
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}
	if result.Customer != nil {
		s.logger.DebugContext(ctx, "customer committed", slog.String("rut", result.Customer.RUT), slog.Bool("created", result.Created))
	}
	return &result, nil
}

func (s *Service) CancelEdit(_ context.Context, session string) (editor.State, error) {
	var state editor.State
	err := s.editors.With(session, func(e *editor.Editor[domain.Customer]) error {
		e.Cancel()
		state = e.State()
		return nil
	})
	return state, err
}

func customerName(c domain.Customer) (string, bool)     { return c.Name, c.Name != "" }
func customerPaternal(c domain.Customer) (string, bool) { return c.PaternalSurname, c.PaternalSurname != "" }
func customerMaternal(c domain.Customer) (string, bool) { return c.MaternalSurname, c.MaternalSurname != "" }
func customerCountry(c domain.Customer) (string, bool)  { return c.Country, c.Country != "" }
func customerFrequent(c domain.Customer) (bool, bool)   { return c.Frequent, true }

// DropEditor forgets the editor of session.
func (s *Service) DropEditor(session string) {
	s.editors.Drop(session)
}
