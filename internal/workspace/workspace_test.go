package workspace_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hodsonus/sparse-matrix-add-multiply/internal/config"
	"github.com/hodsonus/sparse-matrix-add-multiply/internal/workspace"
	"github.com/hodsonus/sparse-matrix-add-multiply/sparse"
)

func mustDoc(t *testing.T, src string) *config.Document {
	t.Helper()
	doc, err := config.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func TestFromDocument_BuildsInOrder(t *testing.T) {
	doc := mustDoc(t, `
matrices:
  B: {dense: [[5, 6], [7, 8]]}
  A: {rows: 2, cols: 2, cells: [[1, 1, 1], [0, 0, 1]]}
  D: {cells: [[4, 4, 9]]}
`)
	ws, err := workspace.FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "D"}, ws.Names())
	assert.Equal(t, 3, ws.Len())

	a, err := ws.Get("A")
	require.NoError(t, err)
	assert.Equal(t, "0 0 1\n1 1 1\n", a.Render())

	d, err := ws.Get("D")
	require.NoError(t, err)
	assert.Equal(t, sparse.DefaultRows, d.Rows(), "no bounds means the default 5x5")
	assert.Equal(t, "4 4 9\n", d.Render())

	_, err = ws.Get("nope")
	require.ErrorIs(t, err, workspace.ErrUnknownName)
}

func TestFromDocument_Errors(t *testing.T) {
	_, err := workspace.FromDocument(mustDoc(t, "matrices: {A: {rows: 1, cols: 1, cells: [[1, 0, 3]]}}"))
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = workspace.FromDocument(mustDoc(t, "matrices: {A: {rows: 3, dense: [[1, 2]]}}"))
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = workspace.FromDocument(mustDoc(t, "matrices: {A: {dense: [[1, 2], [3]]}}"))
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = workspace.FromDocument(mustDoc(t, "matrices: {A: {rows: -1, cols: 2}}"))
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}

func TestRun_ChainsNamedResults(t *testing.T) {
	doc := mustDoc(t, `
matrices:
  I: {dense: [[1, 0], [0, 1]]}
  B: {dense: [[5, 6], [7, 8]]}
ops:
  - {op: mul, left: I, right: B, name: P}
  - {op: add, left: P, right: B}
`)
	ws, err := workspace.FromDocument(doc)
	require.NoError(t, err)

	results, err := ws.Run(doc.Ops)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "P", results[0].Label)
	assert.Equal(t, "0 0 5\n0 1 6\n1 0 7\n1 1 8\n", results[0].Grid.Render())
	assert.Equal(t, "P add B", results[1].Label)
	assert.Equal(t, "0 0 10\n0 1 12\n1 0 14\n1 1 16\n", results[1].Grid.Render())
	assert.Equal(t, []string{"I", "B", "P"}, ws.Names())
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	doc := mustDoc(t, `
matrices:
  A: {rows: 2, cols: 3}
  B: {rows: 2, cols: 3}
ops:
  - {op: add, left: A, right: B}
  - {op: mul, left: A, right: B}
  - {op: add, left: B, right: A}
`)
	ws, err := workspace.FromDocument(doc)
	require.NoError(t, err)

	results, err := ws.Run(doc.Ops)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "ops[1]")
	assert.Len(t, results, 1)
}

func TestEval_CheckedOverflowPolicy(t *testing.T) {
	src := `
overflow: %s
matrices:
  A: {dense: [[9223372036854775807]]}
  B: {dense: [[1]]}
`
	wrap, err := workspace.FromDocument(mustDoc(t, fmt.Sprintf(src, "wrap")))
	require.NoError(t, err)
	r, err := wrap.Eval(config.Op{Op: config.OpAdd, Left: "A", Right: "B"})
	require.NoError(t, err)
	assert.Equal(t, "0 0 -9223372036854775808\n", r.Grid.Render())

	checked, err := workspace.FromDocument(mustDoc(t, fmt.Sprintf(src, "checked")))
	require.NoError(t, err)
	_, err = checked.Eval(config.Op{Op: config.OpAdd, Left: "A", Right: "B"})
	require.ErrorIs(t, err, sparse.ErrOverflow)
}

func TestEval_UnknownOp(t *testing.T) {
	ws := workspace.New()
	g, err := sparse.New(1, 1)
	require.NoError(t, err)
	ws.Put("A", g)

	_, err = ws.Eval(config.Op{Op: "div", Left: "A", Right: "A"})
	require.ErrorIs(t, err, config.ErrUnknownOp)
	_, err = ws.Eval(config.Op{Op: config.OpAdd, Left: "A", Right: "Z"})
	require.ErrorIs(t, err, workspace.ErrUnknownName)
}
