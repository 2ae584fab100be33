package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandFor_Thresholds(t *testing.T) {
	assert.Equal(t, StockHigh, BandFor(21))
	assert.Equal(t, StockMedium, BandFor(20))
	assert.Equal(t, StockMedium, BandFor(11))
	assert.Equal(t, StockMedium, BandFor(10))
	assert.Equal(t, StockLow, BandFor(9))
	assert.Equal(t, StockLow, BandFor(0))
}

func TestLowStock_UsesBand(t *testing.T) {
	assert.False(t, Product{Stock: 10}.LowStock())
	assert.True(t, Product{Stock: 9}.LowStock())
}

func TestValidate(t *testing.T) {
	valid := Product{Name: "Kiwi", Category: "Frutas"}
	assert.NoError(t, valid.Validate())

	cases := map[error]Product{
		ErrEmptyName:     {Category: "Frutas"},
		ErrEmptyCategory: {Name: "Kiwi"},
		ErrNegativePrice: {Name: "Kiwi", Category: "Frutas", Price: -1},
		ErrNegativeStock: {Name: "Kiwi", Category: "Frutas", Stock: -1},
	}
	for want, p := range cases {
		assert.ErrorIs(t, p.Validate(), want)
	}
}

func TestApplyDefaults(t *testing.T) {
	p := Product{}
	p.ApplyDefaults()
	assert.Equal(t, DefaultOrigin, p.Origin)

	q := Product{Origin: "Perú"}
	q.ApplyDefaults()
	assert.Equal(t, "Perú", q.Origin)
}

func TestNextID(t *testing.T) {
	assert.Equal(t, int64(1), NextID(nil))
	assert.Equal(t, int64(10), NextID(DefaultProducts()))
}

func TestDefaultProducts_AreValidAndUnique(t *testing.T) {
	seen := map[int64]bool{}
	for _, p := range DefaultProducts() {
		assert.NoError(t, p.Validate())
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}
