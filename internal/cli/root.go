// Package cli holds the cobra command tree of the sparsegrid tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hodsonus/sparse-matrix-add-multiply/internal/config"
	xlog "github.com/hodsonus/sparse-matrix-add-multiply/internal/log"
	"github.com/hodsonus/sparse-matrix-add-multiply/internal/workspace"
	"github.com/hodsonus/sparse-matrix-add-multiply/sparse"
)

// DefaultDocument is the document read when --file is not given.
const DefaultDocument = "sparsegrid.yaml"

// app carries state shared by every subcommand of one invocation.
type app struct {
	file     string
	logLevel string
	logFile  string

	doc    *config.Document
	ws     *workspace.Workspace
	logger *slog.Logger
}

// NewRootCmd builds the command tree. Output goes to the command's out writer
// (stdout by default, settable with SetOut).
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sparsegrid",
		Short: "Evaluate sums and products of sparse integer matrices",
		Long: `sparsegrid loads named sparse matrices from a YAML document and prints
their canonical form: one "row col value" line per nonzero cell, in reading order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.file, "file", "f", DefaultDocument, "YAML document with matrices and ops")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the document")
	flags.StringVar(&a.logFile, "log-file", "", "log file path; overrides the document (default stderr)")

	root.AddCommand(
		a.newRenderCmd(),
		a.newBinaryCmd(config.OpAdd, "Print the elementwise sum of two matrices"),
		a.newBinaryCmd(config.OpMul, "Print the matrix product of two matrices"),
		a.newEvalCmd(),
	)

	return root
}

// Execute runs the root command against os.Args and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// load reads the document, configures logging and builds the workspace.
func (a *app) load(cmd *cobra.Command) error {
	doc, err := config.Load(a.file)
	if err != nil {
		return err
	}

	level, path := doc.Logging.Level, doc.Logging.Path
	if a.logLevel != "" {
		level = a.logLevel
	}
	if a.logFile != "" {
		path = a.logFile
	}
	if path != "" {
		if err := xlog.Init(path, level); err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logger = slog.Default()
	} else {
		a.logger = xlog.New(cmd.ErrOrStderr(), level)
	}
	a.logger = a.logger.With("run", uuid.NewString(), "cmd", cmd.Name())

	ws, err := workspace.FromDocument(doc)
	if err != nil {
		return err
	}
	a.doc, a.ws = doc, ws
	a.logger.Debug("document loaded",
		"file", a.file,
		"matrices", ws.Len(),
		"ops", len(doc.Ops),
		"overflow", doc.Overflow,
	)

	return nil
}

// writeGrid prints an optional "# label (rows x cols)" header and the grid's canonical text.
func writeGrid(w io.Writer, label string, g *sparse.Grid) error {
	if label != "" {
		if _, err := fmt.Fprintf(w, "# %s (%dx%d)\n", label, g.Rows(), g.Cols()); err != nil {
			return err
		}
	}
	_, err := g.WriteTo(w)

	return err
}
