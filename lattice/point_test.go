// SPDX-License-Identifier: MIT

package lattice_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cellgate/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPoint_Normalizes verifies construction yields unit length and keeps the tag.
func TestNewPoint_Normalizes(t *testing.T) {
	p, err := lattice.NewPoint([4]float64{3, 0, 4, 0}, lattice.Relation)
	require.NoError(t, err)

	assert.InDelta(t, 1, p.Norm(), 1e-15)
	assert.Equal(t, [4]float64{0.6, 0, 0.8, 0}, p.Coords())
	assert.Equal(t, lattice.Relation, p.Kind())
	assert.Equal(t, "relation", p.Kind().String())
}

// TestNewPoint_Rejects covers zero and non-finite input.
func TestNewPoint_Rejects(t *testing.T) {
	_, err := lattice.NewPoint([4]float64{}, lattice.Object)
	require.ErrorIs(t, err, lattice.ErrZeroVector)

	_, err = lattice.NewPoint([4]float64{1, math.NaN(), 0, 0}, lattice.Object)
	require.ErrorIs(t, err, lattice.ErrNonFinite)

	_, err = lattice.NewPoint([4]float64{math.Inf(-1), 0, 0, 0}, lattice.Object)
	require.ErrorIs(t, err, lattice.ErrNonFinite)
}

// TestPoint_EqualityIsPositional checks epsilon equality ignores the tag.
func TestPoint_EqualityIsPositional(t *testing.T) {
	a, err := lattice.NewPoint([4]float64{0, 1, 0, 0}, lattice.Object)
	require.NoError(t, err)
	b, err := lattice.NewPoint([4]float64{0, 1, 1e-12, 0}, lattice.Relation)
	require.NoError(t, err)

	assert.True(t, a.Equal(b, lattice.Epsilon))
	assert.False(t, a.Equal(a.Neg(), lattice.Epsilon))
	assert.InDelta(t, 2, a.Distance(a.Neg()), 1e-15)
	assert.InDelta(t, -1, a.Dot(a.Neg()), 1e-15)
}
