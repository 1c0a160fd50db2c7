// Package config parses the YAML document consumed by the sparsegrid CLI:
// logging settings, the arithmetic policy, named matrices and a list of
// operations to evaluate.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the top-level structure parsed from a sparsegrid YAML file.
type Document struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Overflow selects the arithmetic policy: "wrap" (default) or "checked".
	Overflow string `yaml:"overflow"`
	// Matrices lists the named matrices in declaration order.
	Matrices []NamedMatrix `yaml:"-"`
	// Ops is the list of operations run by `sparsegrid eval`.
	Ops []Op `yaml:"ops"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// NamedMatrix pairs a declared name with its definition.
type NamedMatrix struct {
	Name string
	MatrixSpec
}

// MatrixSpec defines one matrix. Exactly one of Cells or Dense may be set.
// With Cells (or neither), Rows/Cols give the bounds; when both are omitted
// the default 5×5 bounds apply. With Dense, the shape comes from the data and
// Rows/Cols, if present, must agree with it.
type MatrixSpec struct {
	// Rows is the row bound.
	Rows *int `yaml:"rows"`
	// Cols is the column bound.
	Cols *int `yaml:"cols"`
	// Cells lists [row, col, value] triples.
	Cells [][]int `yaml:"cells"`
	// Dense gives the matrix row by row.
	Dense [][]int `yaml:"dense"`
}

// Op is one operation of the eval list.
type Op struct {
	// Op is "add" or "mul".
	Op string `yaml:"op"`
	// Left and Right name the operands (matrices or earlier results).
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	// Name, if set, stores the result under that name for later operations.
	Name string `yaml:"name"`
}

// Supported operation names.
const (
	OpAdd = "add"
	OpMul = "mul"
)

// Supported overflow policies.
const (
	OverflowWrap    = "wrap"
	OverflowChecked = "checked"
)

var (
	// ErrUnknownOp is returned for an op other than add or mul.
	ErrUnknownOp = errors.New("config: unknown op")
	// ErrUnknownMatrix is returned when an op references an undeclared name.
	ErrUnknownMatrix = errors.New("config: unknown matrix")
	// ErrAmbiguousMatrix is returned when a matrix sets both cells and dense.
	ErrAmbiguousMatrix = errors.New("config: matrix sets both cells and dense")
	// ErrDuplicateMatrix is returned when a name is declared twice.
	ErrDuplicateMatrix = errors.New("config: duplicate matrix name")
	// ErrMalformedCell is returned for a cells entry that is not [row, col, value].
	ErrMalformedCell = errors.New("config: cell must be [row, col, value]")
	// ErrUnknownOverflow is returned for an overflow policy other than wrap/checked.
	ErrUnknownOverflow = errors.New("config: unknown overflow policy")
)

// UnmarshalYAML decodes a Document, keeping the declaration order of the
// matrices mapping (a plain Go map would lose it).
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	type plain Document // drops methods, avoids recursion
	if err := node.Decode((*plain)(d)); err != nil {
		return err
	}
	d.Matrices = nil

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "matrices" {
			continue
		}
		m := node.Content[i+1]
		if m.ShortTag() == "!!null" {
			return nil
		}
		if m.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: matrices must be a mapping", m.Line)
		}
		for k := 0; k+1 < len(m.Content); k += 2 {
			key, val := m.Content[k], m.Content[k+1]
			var def MatrixSpec
			if err := val.Decode(&def); err != nil {
				return fmt.Errorf("matrix %q: %w", key.Value, err)
			}
			d.Matrices = append(d.Matrices, NamedMatrix{Name: key.Value, MatrixSpec: def})
		}
	}

	return nil
}

// Load reads and parses the document at path, then applies defaults and validates it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes a document from YAML bytes, applies defaults and validates it.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	ApplyDefaults(&doc)
	if err := Validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// ApplyDefaults fills in unset fields.
func ApplyDefaults(doc *Document) {
	if doc.Logging.Level == "" {
		doc.Logging.Level = "info"
	}
	if doc.Overflow == "" {
		doc.Overflow = OverflowWrap
	}
	for i := range doc.Ops {
		doc.Ops[i].Op = strings.ToLower(strings.TrimSpace(doc.Ops[i].Op))
	}
}

// Validate checks the document for structural errors. Names referenced by
// ops must be declared matrices or results of earlier ops.
func Validate(doc *Document) error {
	switch doc.Overflow {
	case OverflowWrap, OverflowChecked:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOverflow, doc.Overflow)
	}

	known := make(map[string]bool, len(doc.Matrices))
	for _, m := range doc.Matrices {
		if known[m.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateMatrix, m.Name)
		}
		known[m.Name] = true
		if m.Cells != nil && m.Dense != nil {
			return fmt.Errorf("matrix %q: %w", m.Name, ErrAmbiguousMatrix)
		}
		for k, c := range m.Cells {
			if len(c) != 3 {
				return fmt.Errorf("matrix %q: cells[%d]: %w", m.Name, k, ErrMalformedCell)
			}
		}
	}

	for i, op := range doc.Ops {
		if op.Op != OpAdd && op.Op != OpMul {
			return fmt.Errorf("ops[%d]: %w: %q", i, ErrUnknownOp, op.Op)
		}
		for _, name := range []string{op.Left, op.Right} {
			if !known[name] {
				return fmt.Errorf("ops[%d]: %w: %q", i, ErrUnknownMatrix, name)
			}
		}
		if op.Name != "" {
			known[op.Name] = true
		}
	}

	return nil
}
