package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_CoversCatalog(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	checks := registry.List()
	assert.Len(t, checks, 52)
	for _, check := range checks {
		assert.NotNil(t, check.Run, check.Control.ID)
	}
}

func TestNewRegistry_ManualFallback(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	check, ok := registry.Lookup("m365_cis_v400_2_1_8")
	require.True(t, ok)
	require.NotNil(t, check.Run)

	findings, err := check.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Nil(t, findings[0].IsCompliant)
}

func TestBodies_OnlyAutomatedControls(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	for id := range Bodies {
		check, ok := registry.Lookup(id)
		require.True(t, ok, id)
		assert.False(t, check.Control.ManualVerification, id)
	}
}
