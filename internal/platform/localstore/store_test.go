package localstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

func TestLoad_SeedsDefaultWhenMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	def := []item{{ID: 1, Name: "Manzana"}, {ID: 2, Name: "Pera"}}

	got, err := Load(ctx, store, KeyProducts, def)
	require.NoError(t, err)
	assert.Equal(t, def, got)

	raw, ok, err := store.Get(ctx, KeyProducts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1,"nombre":"Manzana"},{"id":2,"nombre":"Pera"}]`, raw)
}

func TestLoad_EmptyStoredCollectionIsReseeded(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	require.NoError(t, store.Set(ctx, KeyProducts, "[]"))
	def := []item{{ID: 7, Name: "Lechuga"}}

	got, err := Load(ctx, store, KeyProducts, def)
	require.NoError(t, err)
	assert.Equal(t, def, got)

	raw, _, err := store.Get(ctx, KeyProducts)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":7,"nombre":"Lechuga"}]`, raw)
}

func TestLoad_MalformedValueIsReseeded(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	require.NoError(t, store.Set(ctx, KeyProducts, `{"not":"a list"}`))

	got, err := Load(ctx, store, KeyProducts, []item{{ID: 3, Name: "Tomate"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Tomate", got[0].Name)
}

func TestLoad_ReturnsStoredCollection(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	require.NoError(t, Save(ctx, store, KeyProducts, []item{{ID: 9, Name: "Palta"}}))

	got, err := Load(ctx, store, KeyProducts, []item{{ID: 1, Name: "Manzana"}})
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 9, Name: "Palta"}}, got)
}

func TestSave_OverwritesWholeValue(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	require.NoError(t, Save(ctx, store, KeyCart, []item{{ID: 1}, {ID: 2}}))
	require.NoError(t, Save(ctx, store, KeyCart, []item{{ID: 3}}))

	raw, _, err := store.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":3,"nombre":""}]`, raw)
}

func TestSave_NilCollectionIsEncodedAsEmptyArray(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	require.NoError(t, Save[item](ctx, store, KeyCart, nil))

	raw, _, err := store.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestCollection_MutatePersists(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	coll := NewCollection(store, KeyProducts, func() []item { return []item{{ID: 1, Name: "Manzana"}} })

	next, err := coll.Mutate(ctx, func(items []item) ([]item, error) {
		return append(items, item{ID: 2, Name: "Pera"}), nil
	})
	require.NoError(t, err)
	require.Len(t, next, 2)

	reloaded, err := Load[item](ctx, store, KeyProducts, nil)
	require.NoError(t, err)
	assert.Equal(t, next, reloaded)
}

func TestCollection_MutateFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	coll := NewCollection(store, KeyProducts, func() []item { return []item{{ID: 1, Name: "Manzana"}} })
	boom := errors.New("boom")

	_, err := coll.Mutate(ctx, func(items []item) ([]item, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	all, err := coll.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 1, Name: "Manzana"}}, all)
}

func TestCollection_ResetReseeds(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	coll := NewCollection(store, KeyCustomers, func() []item { return []item{{ID: 1}} })
	_, err := coll.Mutate(ctx, func(items []item) ([]item, error) { return append(items, item{ID: 2}), nil })
	require.NoError(t, err)

	require.NoError(t, coll.Reset(ctx))
	all, err := coll.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 1}}, all)
}

func TestLoad_NilStore(t *testing.T) {
	_, err := Load[item](context.Background(), nil, KeyProducts, nil)
	require.ErrorIs(t, err, ErrNotConfigured)
}
