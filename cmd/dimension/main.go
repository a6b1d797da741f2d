// Command dimension is the batch CLI front-end for the ray tracing
// engine, replacing the teacher's flag-based interactive demo menu
// (main.go) with cobra subcommands appropriate for a non-interactive
// renderer: render a scene file to a PNG, or benchmark the spatial
// index builder.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "dimension",
		Short: "A concurrent CPU ray tracer built around a flattened BVH",
	}

	root.AddCommand(newRenderCommand())
	root.AddCommand(newBenchCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
