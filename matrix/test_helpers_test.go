// SPDX-License-Identifier: MIT
// Package matrix_test contains small deterministic fixtures shared by the tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cellgate/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through the generic At-based path.
type hide struct{ matrix.Matrix }

// mustDense builds an r×c *Dense from row-major values or fails the test.
func mustDense(t *testing.T, r, c int, values ...float64) *matrix.Dense {
	t.Helper()
	if len(values) == 0 {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)

		return m
	}
	m, err := matrix.NewDenseFrom(r, c, values)
	require.NoError(t, err)

	return m
}

// at reads m(i,j) or fails the test.
func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
