package workflows

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/huerto-store/internal/domains/catalog/domain"
	"github.com/Apurer/huerto-store/internal/domains/catalog/ports"
)

type fakeRemote struct {
	calls []string
}

func (f *fakeRemote) ListProducts(context.Context) ([]domain.Product, error)  { return nil, nil }
func (f *fakeRemote) ListCategories(context.Context) ([]domain.Lookup, error) { return nil, nil }
func (f *fakeRemote) ListCountries(context.Context) ([]domain.Lookup, error)  { return nil, nil }

func (f *fakeRemote) CreateProduct(_ context.Context, p domain.Product, refs domain.ProductRefs) error {
	f.calls = append(f.calls, fmt.Sprintf("create:%s:%d", p.Name, refs.CategoryID))
	return nil
}

func (f *fakeRemote) UpdateProduct(_ context.Context, p domain.Product, _ domain.ProductRefs) error {
	f.calls = append(f.calls, "update:"+p.Name)
	return nil
}

func (f *fakeRemote) DeleteProduct(_ context.Context, _ int64) error {
	f.calls = append(f.calls, "delete")
	return nil
}

func TestInlineCatalogSync_DispatchesByAction(t *testing.T) {
	remote := &fakeRemote{}
	sync := NewInlineCatalogSync(remote)
	ctx := context.Background()
	product := domain.Product{ID: 10, Name: "Paltas"}

	require.NoError(t, sync.Sync(ctx, ports.SyncCommand{Action: ports.SyncCreate, Product: product, Refs: domain.ProductRefs{CategoryID: 1}}))
	require.NoError(t, sync.Sync(ctx, ports.SyncCommand{Action: ports.SyncUpdate, Product: product}))
	require.NoError(t, sync.Sync(ctx, ports.SyncCommand{Action: ports.SyncDelete, Product: product}))
	require.Error(t, sync.Sync(ctx, ports.SyncCommand{Action: "merge", Product: product}))

	require.Equal(t, []string{"create:Paltas:1", "update:Paltas", "delete"}, remote.calls)
}

func TestCatalogSync_NotConfigured(t *testing.T) {
	var inline *InlineCatalogSync
	require.Error(t, inline.Sync(context.Background(), ports.SyncCommand{}))

	var durable *TemporalCatalogSync
	require.Error(t, durable.Sync(context.Background(), ports.SyncCommand{}))
}

func TestBuildProductSyncWorkflowID(t *testing.T) {
	id := buildProductSyncWorkflowID(ports.SyncCommand{Action: ports.SyncUpdate, Product: domain.Product{ID: 7}}, "trace")
	require.Equal(t, "product-sync-update-7-trace", id)
	require.Contains(t, workflowTraceComponent(context.Background()), "fallback-")
}
