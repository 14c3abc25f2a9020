package registry_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/registry"
)

// TestRegister_FirstSeenOrder verifies contiguous indices in first-seen order.
func TestRegister_FirstSeenOrder(t *testing.T) {
	r := registry.New()
	assert.Equal(t, 0, r.Register("Denver"))
	assert.Equal(t, 1, r.Register("Boise"))
	assert.Equal(t, 2, r.Register("Austin"))
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"Denver", "Boise", "Austin"}, r.Labels())
}

// TestRegister_Idempotent verifies that repeated labels keep their index.
func TestRegister_Idempotent(t *testing.T) {
	r := registry.New()
	a := r.Register("A")
	b := r.Register("B")
	assert.Equal(t, a, r.Register("A"))
	assert.Equal(t, b, r.Register("B"))
	assert.Equal(t, 2, r.Len())

	// The empty string is a label like any other.
	assert.Equal(t, 2, r.Register(""))
	assert.Equal(t, 2, r.Register(""))
}

// TestLookup covers Index and Label for known and unknown keys.
func TestLookup(t *testing.T) {
	r := registry.New()
	r.Register("X")
	r.Register("Y")

	i, ok := r.Index("Y")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = r.Index("Z")
	assert.False(t, ok)

	label, ok := r.Label(0)
	require.True(t, ok)
	assert.Equal(t, "X", label)
	_, ok = r.Label(2)
	assert.False(t, ok)
	_, ok = r.Label(-1)
	assert.False(t, ok)
}

// TestLabels_ReturnsCopy verifies that callers cannot mutate the registry.
func TestLabels_ReturnsCopy(t *testing.T) {
	r := registry.New()
	r.Register("A")
	labels := r.Labels()
	labels[0] = "mutated"

	label, _ := r.Label(0)
	assert.Equal(t, "A", label)
}

// TestRegister_Bijection checks the label↔index round trip on many labels.
func TestRegister_Bijection(t *testing.T) {
	r := registry.New()
	for i := 0; i < 1000; i++ {
		r.Register(fmt.Sprintf("V%d", i%250))
	}
	require.Equal(t, 250, r.Len())
	for i := 0; i < r.Len(); i++ {
		label, ok := r.Label(i)
		require.True(t, ok)
		j, ok := r.Index(label)
		require.True(t, ok)
		assert.Equal(t, i, j)
	}
}
