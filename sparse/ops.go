// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Matrix algebra over the Matrix capability: Add (elementwise sum),
//     Mul (matrix product) and Equal.
//   - *Grid operands unlock sparse fast paths; any other Matrix goes through
//     a generic fallback that reads every position via At.
//
// Determinism:
//   - Fixed loop orders (i -> j -> k); results are emitted in reading order.
//   - Fast path and fallback produce identical grids, including under checked
//     arithmetic (partial sums are accumulated in the same k order; zero terms
//     are skipped by the fast path, which never changes a partial sum).
//
// Aliasing:
//   - Operands are only read; the result is always a fresh grid, so Add(g, g)
//     and Mul(g, g) are safe.
//
// Overflow:
//   - Default: native int wraparound. WithCheckedArithmetic: ErrOverflow.

package sparse

import (
	"fmt"
	"slices"
)

const (
	ctxAdd = "Add"
	ctxMul = "Mul"
)

// resultOptions starts from a's options when a is a *Grid, then applies opts.
func resultOptions(a Matrix, opts []Option) Options {
	base := defaultOptions()
	if g, ok := a.(*Grid); ok {
		base = g.opts
	}

	return gatherOptions(base, opts...)
}

// overflowErrorf reports where a checked operation overflowed.
func overflowErrorf(tag string, row, col int) error {
	return fmt.Errorf("%s: at (%d,%d): %w", tag, row, col, ErrOverflow)
}

// ---------- Add ----------

// Add returns the elementwise sum a + b as a new grid of the same shape.
// Positions whose sum is 0 are not stored.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ); no result is produced.
//   - ErrOverflow under WithCheckedArithmetic.
//   - Any error returned by a.At / b.At on the fallback path.
//
// Complexity: O(nnz(a)+nnz(b)) when both are *Grid; O(rows*cols*cost(At)) otherwise.
func Add(a, b Matrix, opts ...Option) (*Grid, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(ctxAdd, err)
	}
	o := resultOptions(a, opts)
	out := &Grid{rows: a.Rows(), cols: a.Cols(), opts: o}

	ga, okA := a.(*Grid)
	gb, okB := b.(*Grid)
	if okA && okB {
		if err := addMerge(out, ga.cells, gb.cells, o.checked); err != nil {
			return nil, err
		}
		return out, nil
	}

	// Generic fallback: visit every position in reading order.
	for i := 0; i < out.rows; i++ {
		for j := 0; j < out.cols; j++ {
			va, err := a.At(i, j)
			if err != nil {
				return nil, opErrorf(ctxAdd, err)
			}
			vb, err := b.At(i, j)
			if err != nil {
				return nil, opErrorf(ctxAdd, err)
			}
			s, ok := addInt(va, vb, o.checked)
			if !ok {
				return nil, overflowErrorf(ctxAdd, i, j)
			}
			out.appendCell(i, j, s)
		}
	}

	return out, nil
}

// addMerge writes the sorted merge of two cell sequences into out.
// Both inputs are in reading order, so the output is too.
func addMerge(out *Grid, x, y []Cell, checked bool) error {
	out.cells = make([]Cell, 0, max(len(x), len(y)))
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		cx, cy := x[i], y[j]
		switch compareKey(cx.Row, cx.Col, cy.Row, cy.Col) {
		case -1:
			out.cells = append(out.cells, cx)
			i++
		case 1:
			out.cells = append(out.cells, cy)
			j++
		default:
			s, ok := addInt(cx.Value, cy.Value, checked)
			if !ok {
				return overflowErrorf(ctxAdd, cx.Row, cx.Col)
			}
			out.appendCell(cx.Row, cx.Col, s) // cancelling pair stores nothing
			i++
			j++
		}
	}
	out.cells = append(out.cells, x[i:]...)
	out.cells = append(out.cells, y[j:]...)

	return nil
}

// Add is the method form of the package-level Add: g + other.
func (g *Grid) Add(other Matrix, opts ...Option) (*Grid, error) {
	return Add(g, other, opts...)
}

// ---------- Mul ----------

// Mul returns the matrix product a × b as a new a.Rows()×b.Cols() grid.
// Each result cell sums a[i,k]*b[k,j] over the full contraction dimension
// k in [0, a.Cols()) (equal to b.Rows() by the precondition).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()); no result is produced.
//   - ErrOverflow under WithCheckedArithmetic.
//   - Any error returned by a.At / b.At on the fallback path.
//
// Complexity: O(Σ_i Σ_{k in row i of a} nnz(row k of b)) plus a per-row sort of
// touched columns when both are *Grid; O(r*c*n*cost(At)) otherwise.
func Mul(a, b Matrix, opts ...Option) (*Grid, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(ctxMul, err)
	}
	o := resultOptions(a, opts)
	out := &Grid{rows: a.Rows(), cols: b.Cols(), opts: o}
	inner := a.Cols() // contraction dimension, == b.Rows()

	ga, okA := a.(*Grid)
	gb, okB := b.(*Grid)
	if okA && okB {
		if err := mulSparse(out, ga, gb, o.checked); err != nil {
			return nil, err
		}
		return out, nil
	}

	// Generic fallback: reference triple loop in i -> j -> k order.
	for i := 0; i < out.rows; i++ {
		for j := 0; j < out.cols; j++ {
			sum := 0
			for k := 0; k < inner; k++ {
				va, err := a.At(i, k)
				if err != nil {
					return nil, opErrorf(ctxMul, err)
				}
				vb, err := b.At(k, j)
				if err != nil {
					return nil, opErrorf(ctxMul, err)
				}
				p, ok := mulInt(va, vb, o.checked)
				if !ok {
					return nil, overflowErrorf(ctxMul, i, j)
				}
				if sum, ok = addInt(sum, p, o.checked); !ok {
					return nil, overflowErrorf(ctxMul, i, j)
				}
			}
			out.appendCell(i, j, sum)
		}
	}

	return out, nil
}

// rowOffsets returns off with len rows+1 such that row r of g occupies
// g.cells[off[r]:off[r+1]].
// Complexity: O(rows + nnz).
func rowOffsets(g *Grid) []int {
	off := make([]int, g.rows+1)
	for _, c := range g.cells {
		off[c.Row+1]++
	}
	for r := 0; r < g.rows; r++ {
		off[r+1] += off[r]
	}

	return off
}

// mulSparse computes out = a × b row by row with a scatter accumulator.
// For every stored a[i,k] (ascending k) it adds a[i,k]*b[k,j] into acc[j] for
// every stored b[k,j], then emits row i's nonzeros in ascending column order.
func mulSparse(out, a, b *Grid, checked bool) error {
	bOff := rowOffsets(b)
	acc := make([]int, b.cols)    // running sums for the current output row
	seen := make([]bool, b.cols)  // columns touched in the current output row
	touched := make([]int, 0, 16) // touched column list, sorted before emitting

	for start := 0; start < len(a.cells); {
		i := a.cells[start].Row
		end := start
		for end < len(a.cells) && a.cells[end].Row == i {
			end++
		}

		for _, ca := range a.cells[start:end] {
			for _, cb := range b.cells[bOff[ca.Col]:bOff[ca.Col+1]] {
				p, ok := mulInt(ca.Value, cb.Value, checked)
				if !ok {
					return overflowErrorf(ctxMul, i, cb.Col)
				}
				if acc[cb.Col], ok = addInt(acc[cb.Col], p, checked); !ok {
					return overflowErrorf(ctxMul, i, cb.Col)
				}
				if !seen[cb.Col] {
					seen[cb.Col] = true
					touched = append(touched, cb.Col)
				}
			}
		}

		slices.Sort(touched)
		for _, j := range touched {
			out.appendCell(i, j, acc[j]) // cancelled sums store nothing
			acc[j], seen[j] = 0, false
		}
		touched = touched[:0]
		start = end
	}

	return nil
}

// Mul is the method form of the package-level Mul: g × other.
func (g *Grid) Mul(other Matrix, opts ...Option) (*Grid, error) {
	return Mul(g, other, opts...)
}

// ---------- Equal ----------

// Equal reports whether a and b have the same shape and the same value at
// every position. Nil operands and At errors compare unequal.
// Complexity: O(nnz) for two *Grid; O(rows*cols*cost(At)) otherwise.
func Equal(a, b Matrix) bool {
	if err := ValidateSameShape(a, b); err != nil {
		return false
	}
	ga, okA := a.(*Grid)
	gb, okB := b.(*Grid)
	if okA && okB {
		return slices.Equal(ga.cells, gb.cells)
	}

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			va, errA := a.At(i, j)
			vb, errB := b.At(i, j)
			if errA != nil || errB != nil || va != vb {
				return false
			}
		}
	}

	return true
}
