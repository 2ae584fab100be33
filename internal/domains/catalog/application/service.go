package application

import (
	"context"
	"log/slog"
	"slices"
	"strconv"

	"github.com/Apurer/huerto-store/internal/domains/catalog/domain"
	"github.com/Apurer/huerto-store/internal/domains/catalog/ports"
	"github.com/Apurer/huerto-store/internal/platform/localstore"
	"github.com/Apurer/huerto-store/internal/shared/editor"
	"github.com/Apurer/huerto-store/internal/shared/filter"
)

// Service orchestrates the catalog use cases over the local product collection.
type Service struct {
	products *localstore.Collection[domain.Product]
	editors  *editor.Sessions[domain.Product]
	sync     ports.CatalogSync
	lookups  *Lookups
	logger   *slog.Logger
}

var _ ports.Service = (*Service)(nil)

// Option configures the catalog service.
type Option func(*Service)

// WithCatalogSync mirrors commits and deletes to the external catalog.
func WithCatalogSync(sync ports.CatalogSync) Option {
	return func(s *Service) {
		if sync != nil {
			s.sync = sync
		}
	}
}

// WithLookups seeds from the remote catalog and serves its categories when available.
func WithLookups(lookups *Lookups) Option {
	return func(s *Service) {
		s.lookups = lookups
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService wires the catalog service with its dependencies.
func NewService(store localstore.Store, opts ...Option) *Service {
	s := &Service{
		editors: editor.NewSessions[domain.Product](ProductBinding{}),
		sync:    ports.NoopCatalogSync,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.products = localstore.NewCollection(store, localstore.KeyProducts, s.seed)
	return s
}

// seed prefers the remote catalog over the built-in one.
func (s *Service) seed() []domain.Product {
	if remote := s.lookups.Products(); len(remote) > 0 {
		for i := range remote {
			remote[i].ApplyDefaults()
		}
		return remote
	}
	return domain.DefaultProducts()
}

// List returns the full catalog.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return products, nil
}

// Search filters the full catalog, recomputed on every call.
func (s *Service) Search(ctx context.Context, query ports.ProductQuery) ([]domain.Product, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return filter.Apply(products,
		filter.Contains[domain.Product](query.Text, productName, productCategory, productDescription),
		filter.Exact[domain.Product](query.Category, ports.CategorySentinel, productCategory),
		filter.Flag[domain.Product](query.LowStock, productLowStock),
	), nil
}

// GetByID loads a single product.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	idx := slices.IndexFunc(products, func(p domain.Product) bool { return p.ID == id })
	if idx < 0 {
		return nil, ports.ErrNotFound
	}
	product := products[idx]
	return &product, nil
}

// Delete removes a product and mirrors the removal.
func (s *Service) Delete(ctx context.Context, id int64) error {
	var removed domain.Product
	_, err := s.products.Mutate(ctx, func(products []domain.Product) ([]domain.Product, error) {
		idx := slices.IndexFunc(products, func(p domain.Product) bool { return p.ID == id })
		if idx < 0 {
			return nil, ports.ErrNotFound
		}
		removed = products[idx]
		return slices.Delete(slices.Clone(products), idx, idx+1), nil
	})
	if err != nil {
		return mapError(err)
	}
	s.mirror(ctx, ports.SyncCommand{Action: ports.SyncDelete, Product: removed})
	return nil
}

// Categories returns the remote category names, or the distinct local ones until they arrive.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	if remote := s.lookups.Categories(); len(remote) > 0 {
		names := make([]string, 0, len(remote))
		for _, c := range remote {
			names = append(names, c.Name)
		}
		return names, nil
	}
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	names := make([]string, 0)
	for _, p := range products {
		if p.Category != "" && !slices.Contains(names, p.Category) {
			names = append(names, p.Category)
		}
	}
	return names, nil
}

func (s *Service) EditorState(_ context.Context, session string) (editor.State, error) {
	var state editor.State
	err := s.editors.With(session, func(e *editor.Editor[domain.Product]) error {
		state = e.State()
		return nil
	})
	return state, err
}

// SelectForEdit loads the product into the session editor.
func (s *Service) SelectForEdit(ctx context.Context, session string, id int64) (editor.State, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return editor.State{}, err
	}
	var state editor.State
	err = s.editors.With(session, func(e *editor.Editor[domain.Product]) error {
		e.Select(*product)
		state = e.State()
		return nil
	})
	return state, err
}

func (s *Service) UpdateDraft(_ context.Context, session string, fields editor.Form) (editor.State, error) {
	var state editor.State
	err := s.editors.With(session, func(e *editor.Editor[domain.Product]) error {
		if err := e.Fill(fields); err != nil {
			return err
		}
		state = e.State()
		return nil
	})
	return state, err
}

// SubmitDraft commits the session draft into the catalog and persists the whole collection.
func (s *Service) SubmitDraft(ctx context.Context, session string) (*ports.CommitResult, error) {
	var result ports.CommitResult
	err := s.editors.With(session, func(e *editor.Editor[domain.Product]) error {
		_, err := s.products.Mutate(ctx, func(products []domain.Product) ([]domain.Product, error) {
			commit, err := e.Prepare(products)
			if err != nil {
				return nil, err
			}
			result.Created = commit.Created
			result.Applied = commit.Applied
			if commit.Applied {
				record := commit.Record
				result.Product = &record
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
	if result.Product != nil {
		action := ports.SyncUpdate
		if result.Created {
			action = ports.SyncCreate
		}
		s.mirror(ctx, ports.SyncCommand{Action: action, Product: *result.Product})
	}
	return &result, nil
}

func (s *Service) CancelEdit(_ context.Context, session string) (editor.State, error) {
	var state editor.State
	err := s.editors.With(session, func(e *editor.Editor[domain.Product]) error {
		e.Cancel()
		state = e.State()
		return nil
	})
	return state, err
}

// mirror never fails the caller; the local commit already happened.
func (s *Service) mirror(ctx context.Context, cmd ports.SyncCommand) {
	cmd.Refs = s.refs(cmd.Product)
	if err := s.sync.Sync(ctx, cmd); err != nil {
		s.logger.WarnContext(ctx, "catalog sync failed",
			slog.String("action", string(cmd.Action)),
			slog.String("product_id", strconv.FormatInt(cmd.Product.ID, 10)),
			slog.Any("error", err),
		)
	}
}

// refs resolves the catalog API ids of p's category and origin from the loaded lookups.
func (s *Service) refs(p domain.Product) domain.ProductRefs {
	return domain.ProductRefs{
		CategoryID: domain.LookupID(s.lookups.Categories(), p.Category),
		CountryID:  domain.LookupID(s.lookups.Countries(), p.Origin),
	}
}

func productName(p domain.Product) (string, bool)        { return p.Name, p.Name != "" }
func productCategory(p domain.Product) (string, bool)    { return p.Category, p.Category != "" }
func productDescription(p domain.Product) (string, bool) { return p.Description, p.Description != "" }
func productLowStock(p domain.Product) (bool, bool)      { return p.LowStock(), true }

// DropEditor forgets the editor of session.
func (s *Service) DropEditor(session string) {
	s.editors.Drop(session)
}
