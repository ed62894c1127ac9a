// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cellgate/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdd covers the dense path, the wrapped fallback path and shape errors.
func TestAdd(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 3, 4)
	b := mustDense(t, 2, 2, 10, 20, 30, 40)
	want := mustDense(t, 2, 2, 11, 22, 33, 44)

	got, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, want.String(), got.String())

	got, err = matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	assert.Equal(t, want.String(), got.String(), "fallback path must match dense path")

	_, err = matrix.Add(a, mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScale verifies scalar multiplication and nil rejection.
func TestScale(t *testing.T) {
	got, err := matrix.Scale(mustDense(t, 1, 3, 1, -2, 0.5), -2)
	require.NoError(t, err)
	assert.Equal(t, "[-2, 4, -1]\n", got.String())

	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul checks a rectangular product and inner-dimension errors.
func TestMul(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustDense(t, 3, 2, 7, 8, 9, 10, 11, 12)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, "[58, 64]\n[139, 154]\n", got.String())

	got, err = matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	assert.Equal(t, "[58, 64]\n[139, 154]\n", got.String())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_Identity verifies I·A == A.
func TestMul_Identity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	a := mustDense(t, 3, 3, 2, -1, 0, 4, 5, 6, 0, 0, 1)

	got, err := matrix.Mul(id, a)
	require.NoError(t, err)
	ok, err := matrix.AllClose(got, a, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestTranspose checks shape flip and element placement.
func TestTranspose(t *testing.T) {
	got, err := matrix.Transpose(mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, 3, got.Rows())
	assert.Equal(t, 2, got.Cols())
	assert.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", got.String())

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec checks y = m·x and vector validation.
func TestMatVec(t *testing.T) {
	m := mustDense(t, 2, 3, 1, 0, 2, -1, 3, 1)

	y, err := matrix.MatVec(m, []float64{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 4}, y)

	_, err = matrix.MatVec(m, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAllClose covers tolerance handling, NaN, and invalid tolerances.
func TestAllClose(t *testing.T) {
	a := mustDense(t, 1, 2, 1, 2)
	b := mustDense(t, 1, 2, 1+1e-12, 2)

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.AllClose(mustDense(t, 1, 1, math.NaN()), mustDense(t, 1, 1, math.NaN()), 1, 1)
	require.NoError(t, err)
	assert.False(t, ok, "NaN never compares close")

	_, err = matrix.AllClose(a, b, math.Inf(1), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
