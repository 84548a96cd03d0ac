package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	lists := Load()

	require.NotEmpty(t, lists.Specialties.Entries())
	require.NotEmpty(t, lists.Governorates.Entries())

	assert.True(t, lists.Specialties.Contains("Cardiologist"))
	assert.True(t, lists.Governorates.Contains("cairo"))
	assert.False(t, lists.Specialties.Contains("alchemy"))
	assert.False(t, lists.Governorates.Contains("atlantis"))
}

func TestEntriesHaveIDsAndLabels(t *testing.T) {
	lists := Load()

	seen := map[string]bool{}
	for _, e := range lists.Specialties.Entries() {
		assert.NotEmpty(t, e.ID, "specialty %s", e.Value)
		assert.NotEmpty(t, e.Label.En, "specialty %s", e.Value)
		assert.NotEmpty(t, e.Label.Ar, "specialty %s", e.Value)
		assert.False(t, seen[e.Value], "duplicate specialty %s", e.Value)
		seen[e.Value] = true
	}
}
