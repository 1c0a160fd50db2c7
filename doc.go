// Package sparsegrid is a small, dependency-light home for sparse integer
// matrices: a sorted-triple container with bounds-checked access, a canonical
// text form, and the two algebra operations that matter for it.
//
// What is in here?
//
//	A fixed-bound matrix that stores only its nonzero cells:
//		• Construction & sizing: New, NewDefault (5×5), Resize, Clear
//		• Element access: Set (0 removes), Remove, At; errors, never panics
//		• Canonical text: "row col value\n" per cell in reading order; Parse reads it back
//		• Algebra: Add (sorted merge) and Mul (row-wise sparse accumulation)
//		• Arithmetic policy: native wraparound, or checked with ErrOverflow
//
// Under the hood, everything is organized under these packages:
//
//	sparse/              Grid, Cell, the Matrix capability, Add/Mul/Equal
//	internal/config/     YAML document (matrices, ops, logging) for the CLI
//	internal/workspace/  named grids in declaration order + op evaluation
//	internal/cli/        cobra commands: render, add, mul, eval
//	cmd/sparsegrid/      CLI entry point
//	examples/            runnable demo
//
// Quick example, the matrix
//
//	3 0 1
//	0 2 0
//	0 0 4
//
// renders as
//
//	0 0 3
//	0 2 1
//	1 1 2
//	2 2 4
//
//	go run ./cmd/sparsegrid -f sparsegrid.yaml eval
package sparsegrid
