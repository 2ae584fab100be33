package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/huerto-store/internal/domains/cart/domain"
	catalog "github.com/Apurer/huerto-store/internal/domains/catalog/domain"
	"github.com/Apurer/huerto-store/internal/platform/localstore"
)

var errUnknownProduct = errors.New("unknown product")

type catalogStub map[int64]catalog.Product

func (c catalogStub) GetByID(_ context.Context, id int64) (*catalog.Product, error) {
	p, ok := c[id]
	if !ok {
		return nil, errUnknownProduct
	}
	return &p, nil
}

func newTestService(t *testing.T) (*Service, localstore.Store) {
	t.Helper()
	store := localstore.NewMemory()
	products := catalogStub{}
	for _, p := range catalog.DefaultProducts() {
		products[p.ID] = p
	}
	return NewService(store, products), store
}

func TestAddToCart_MergesAndPersists(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, 1, 2)
	require.NoError(t, err)
	cart, err := svc.AddToCart(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.Equal(t, int64(5), cart[0].Quantity)

	raw, ok, err := store.Get(ctx, localstore.KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []domain.Line
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	require.Len(t, persisted, 1)
	require.Equal(t, int64(5), persisted[0].Quantity)
	require.Equal(t, "Manzanas Fuji", persisted[0].Name)
}

func TestAddToCart_PublishesSummary(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	changes, cancel := svc.Subscribe()
	defer cancel()

	_, err := svc.AddToCart(ctx, 2, 1)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, 3, 4)
	require.NoError(t, err)

	select {
	case change := <-changes:
		require.Equal(t, domain.Changed{Lines: 2, Units: 5}, change)
	case <-time.After(time.Second):
		t.Fatal("no cart change published")
	}
}

func TestAddToCart_UnknownProductLeavesCartUntouched(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	changes, cancel := svc.Subscribe()
	defer cancel()

	_, err := svc.AddToCart(ctx, 404, 1)
	require.ErrorIs(t, err, errUnknownProduct)

	cart, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, cart)
	select {
	case <-changes:
		t.Fatal("unexpected cart change")
	default:
	}
}

func TestClear(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, 1, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))

	cart, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, cart)
	require.Zero(t, cart.Units())
}

func TestCartSurvivesServiceRestart(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	_, err := svc.AddToCart(ctx, 8, 2)
	require.NoError(t, err)

	restarted := NewService(store, catalogStub{})
	cart, err := restarted.Get(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.Equal(t, int64(12990), cart[0].Price)
}
