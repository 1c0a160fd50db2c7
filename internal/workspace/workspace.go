// Package workspace holds the named grids of a loaded document and evaluates
// add/mul operations between them. Names keep their declaration order, and
// results stored under a name are appended after the declared matrices.
package workspace

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/hodsonus/sparse-matrix-add-multiply/internal/config"
	"github.com/hodsonus/sparse-matrix-add-multiply/sparse"
)

// ErrUnknownName is returned when a lookup names no grid.
var ErrUnknownName = errors.New("workspace: unknown name")

// Workspace maps names to grids in insertion order.
type Workspace struct {
	grids *orderedmap.OrderedMap // string -> *sparse.Grid
	opts  []sparse.Option
}

// Result is the outcome of one evaluated operation.
type Result struct {
	Label string
	Grid  *sparse.Grid
}

// New returns an empty workspace whose grids are built with opts.
func New(opts ...sparse.Option) *Workspace {
	return &Workspace{grids: orderedmap.New(), opts: opts}
}

// FromDocument builds every matrix declared in doc, in declaration order.
func FromDocument(doc *config.Document) (*Workspace, error) {
	var opts []sparse.Option
	if doc.Overflow == config.OverflowChecked {
		opts = append(opts, sparse.WithCheckedArithmetic())
	}
	ws := New(opts...)
	for _, m := range doc.Matrices {
		g, err := ws.build(m.MatrixSpec)
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", m.Name, err)
		}
		ws.Put(m.Name, g)
	}

	return ws, nil
}

// build turns one matrix definition into a grid.
func (ws *Workspace) build(def config.MatrixSpec) (*sparse.Grid, error) {
	if def.Dense != nil {
		g, err := sparse.FromDense(def.Dense, ws.opts...)
		if err != nil {
			return nil, err
		}
		if (def.Rows != nil && *def.Rows != g.Rows()) || (def.Cols != nil && *def.Cols != g.Cols()) {
			return nil, fmt.Errorf("declared shape disagrees with dense data: %w", sparse.ErrDimensionMismatch)
		}
		return g, nil
	}

	var g *sparse.Grid
	if def.Rows == nil && def.Cols == nil {
		g = sparse.NewDefault(ws.opts...)
	} else {
		rows, cols := sparse.DefaultRows, sparse.DefaultCols
		if def.Rows != nil {
			rows = *def.Rows
		}
		if def.Cols != nil {
			cols = *def.Cols
		}
		var err error
		if g, err = sparse.New(rows, cols, ws.opts...); err != nil {
			return nil, err
		}
	}
	for k, c := range def.Cells {
		if len(c) != 3 {
			return nil, fmt.Errorf("cells[%d]: %w", k, config.ErrMalformedCell)
		}
		if err := g.Set(c[0], c[1], c[2]); err != nil {
			return nil, fmt.Errorf("cells[%d]: %w", k, err)
		}
	}

	return g, nil
}

// Put stores g under name. A new name goes last; an existing name keeps its slot.
func (ws *Workspace) Put(name string, g *sparse.Grid) {
	ws.grids.Set(name, g)
}

// Get returns the grid stored under name.
func (ws *Workspace) Get(name string) (*sparse.Grid, error) {
	v, ok := ws.grids.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}

	return v.(*sparse.Grid), nil
}

// Len returns the number of stored grids.
func (ws *Workspace) Len() int { return ws.grids.Len() }

// Names returns every stored name in insertion order.
func (ws *Workspace) Names() []string {
	names := make([]string, 0, ws.grids.Len())
	for p := ws.grids.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key.(string))
	}

	return names
}

// Eval runs a single add/mul between two stored grids. When op.Name is set
// the result is stored under it.
func (ws *Workspace) Eval(op config.Op) (Result, error) {
	left, err := ws.Get(op.Left)
	if err != nil {
		return Result{}, err
	}
	right, err := ws.Get(op.Right)
	if err != nil {
		return Result{}, err
	}

	var out *sparse.Grid
	switch op.Op {
	case config.OpAdd:
		out, err = sparse.Add(left, right, ws.opts...)
	case config.OpMul:
		out, err = sparse.Mul(left, right, ws.opts...)
	default:
		return Result{}, fmt.Errorf("%w: %q", config.ErrUnknownOp, op.Op)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s %s %s: %w", op.Left, op.Op, op.Right, err)
	}
	if op.Name != "" {
		ws.Put(op.Name, out)
	}

	return Result{Label: Label(op), Grid: out}, nil
}

// Run evaluates ops in order and stops at the first failure, returning the
// results computed so far.
func (ws *Workspace) Run(ops []config.Op) ([]Result, error) {
	results := make([]Result, 0, len(ops))
	for i, op := range ops {
		r, err := ws.Eval(op)
		if err != nil {
			return results, fmt.Errorf("ops[%d]: %w", i, err)
		}
		results = append(results, r)
	}

	return results, nil
}

// Label names an operation for output: its result name, or "left op right".
func Label(op config.Op) string {
	if op.Name != "" {
		return op.Name
	}

	return fmt.Sprintf("%s %s %s", op.Left, op.Op, op.Right)
}
