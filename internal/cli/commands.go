package cli

import (
	"github.com/spf13/cobra"

	"github.com/hodsonus/sparse-matrix-add-multiply/internal/config"
)

// newRenderCmd prints the named matrices, or all of them in declaration order.
func (a *app) newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [name...]",
		Short: "Print matrices in canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = a.ws.Names()
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				g, err := a.ws.Get(name)
				if err != nil {
					return err
				}
				if err := writeGrid(out, name, g); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// newBinaryCmd builds the add/mul subcommands. The result is printed bare, so
// the output is exactly the canonical rendering.
func (a *app) newBinaryCmd(op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " LEFT RIGHT",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.ws.Eval(config.Op{Op: op, Left: args[0], Right: args[1]})
			if err != nil {
				a.logger.Error("operation failed", "op", op, "err", err)
				return err
			}
			a.logger.Info("operation done",
				"op", op,
				"rows", r.Grid.Rows(),
				"cols", r.Grid.Cols(),
				"nnz", r.Grid.NNZ(),
			)
			return writeGrid(cmd.OutOrStdout(), "", r.Grid)
		},
	}
}

// newEvalCmd runs the document's ops list and prints every labelled result.
func (a *app) newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval",
		Short: "Run every op listed in the document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for i, op := range a.doc.Ops {
				r, err := a.ws.Eval(op)
				if err != nil {
					a.logger.Error("operation failed", "index", i, "op", op.Op, "err", err)
					return err
				}
				a.logger.Debug("operation done", "index", i, "label", r.Label, "nnz", r.Grid.NNZ())
				if err := writeGrid(out, r.Label, r.Grid); err != nil {
					return err
				}
			}
			a.logger.Info("eval finished", "ops", len(a.doc.Ops))
			return nil
		},
	}
}
