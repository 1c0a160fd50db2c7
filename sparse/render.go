// SPDX-License-Identifier: MIT

// Package sparse - canonical text projection.
//
// Format:
//   - one line per stored cell, in storage (reading) order;
//   - each line is "row col value\n" with single spaces;
//   - an empty grid renders to "".
//
// Parse is the inverse: it rebuilds a grid of the given bounds from that text.
package sparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = " "
	_fmtLineEnd = "\n"
)

const ctxParse = "Parse"

// appendCellLine appends the canonical line for c to dst.
func appendCellLine(dst []byte, c Cell) []byte {
	dst = strconv.AppendInt(dst, int64(c.Row), 10)
	dst = append(dst, _fmtSep...)
	dst = strconv.AppendInt(dst, int64(c.Col), 10)
	dst = append(dst, _fmtSep...)
	dst = strconv.AppendInt(dst, int64(c.Value), 10)

	return append(dst, _fmtLineEnd...)
}

// Render returns the canonical text form of g.
// Deterministic and side-effect free.
// Complexity: O(nnz).
func (g *Grid) Render() string {
	if len(g.cells) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(g.cells)*8) // rough guess: short indices and values
	for _, c := range g.cells {
		buf = appendCellLine(buf, c)
	}

	return string(buf)
}

// String implements fmt.Stringer; it is identical to Render.
func (g *Grid) String() string { return g.Render() }

// WriteTo streams the canonical text form of g into w.
// Implements io.WriterTo.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var (
		total int64
		line  []byte
	)
	for _, c := range g.cells {
		line = appendCellLine(line[:0], c)
		n, err := w.Write(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

var _ io.WriterTo = (*Grid)(nil)

// Parse builds a rows×cols grid from canonical text.
// Blank lines are skipped, zero values are dropped and a later line for the
// same position overwrites an earlier one, exactly as repeated Set calls would.
//
// Errors:
//   - ErrInvalidDimensions for negative bounds;
//   - ErrMalformedLine (with the 1-based line number) when a line is not three integers;
//   - ErrOutOfRange when a position lies outside the bounds.
func Parse(text string, rows, cols int, opts ...Option) (*Grid, error) {
	g, err := New(rows, cols, opts...)
	if err != nil {
		return nil, opErrorf(ctxParse, err)
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s: line %d: %w", ctxParse, lineNo, ErrMalformedLine)
		}
		var nums [3]int
		for k, f := range fields {
			if nums[k], err = strconv.Atoi(f); err != nil {
				return nil, fmt.Errorf("%s: line %d: %q: %w", ctxParse, lineNo, f, ErrMalformedLine)
			}
		}
		if err = g.Set(nums[0], nums[1], nums[2]); err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", ctxParse, lineNo, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, opErrorf(ctxParse, err)
	}

	return g, nil
}
