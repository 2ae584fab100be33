package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/huerto-store/internal/platform/localstore"
)

func TestSelectKeys_DefaultsToCollections(t *testing.T) {
	keys, err := selectKeys(nil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"productos", "clientes", "pedidos", "cartHuerto"}, keys)
}

func TestSelectKeys_TokenFlagAppendsToken(t *testing.T) {
	keys, err := selectKeys([]string{localstore.KeyCart}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"cartHuerto", "token"}, keys)
}

func TestSelectKeys_RejectsUnknownKey(t *testing.T) {
	_, err := selectKeys([]string{"usuarios"}, false)
	require.EqualError(t, err, "unknown local store key usuarios")
}
