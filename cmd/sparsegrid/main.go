package main

import "github.com/hodsonus/sparse-matrix-add-multiply/internal/cli"

// main is the entry point of the sparsegrid CLI.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cli.Execute()
}
