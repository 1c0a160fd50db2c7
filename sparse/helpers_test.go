// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures for grids.
//   - An invariant checker used after every mutation sequence.

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hodsonus/sparse-matrix-add-multiply/sparse"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing Add/Mul/Equal onto the generic At-based fallback.
type hide struct{ sparse.Matrix }

// mustGrid allocates an empty r×c grid or fails the test.
func mustGrid(t testing.TB, r, c int, opts ...sparse.Option) *sparse.Grid {
	t.Helper()
	g, err := sparse.New(r, c, opts...)
	require.NoError(t, err)

	return g
}

// gridOf builds an r×c grid from row-major dense values.
func gridOf(t testing.TB, r, c int, vals ...int) *sparse.Grid {
	t.Helper()
	require.Len(t, vals, r*c, "gridOf: want %d values", r*c)
	g := mustGrid(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, g.Set(i, j, vals[i*c+j]))
		}
	}

	return g
}

// requireInvariants checks sorted order, uniqueness, no zeros and bounds.
func requireInvariants(t testing.TB, g *sparse.Grid) {
	t.Helper()
	cells := g.Cells()
	for k, c := range cells {
		require.NotZero(t, c.Value, "cell %d stores zero: %+v", k, c)
		require.True(t, c.Row >= 0 && c.Row < g.Rows(), "row out of bounds: %+v", c)
		require.True(t, c.Col >= 0 && c.Col < g.Cols(), "col out of bounds: %+v", c)
		if k == 0 {
			continue
		}
		p := cells[k-1]
		less := p.Row < c.Row || (p.Row == c.Row && p.Col < c.Col)
		require.True(t, less, "cells %d,%d out of order: %+v then %+v", k-1, k, p, c)
	}
}
