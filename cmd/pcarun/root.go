package main

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute builds the pcarun command tree and runs it under ctx.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:           "pcarun",
		Short:         "Principal component analysis on labeled tabular data",
		Long: `pcarun standardizes a table of real-valued features, eigendecomposes its
covariance matrix, reports the explained-variance structure, and projects
the observations onto the leading principal components.

With no input file the embedded 150×4 Iris dataset is analyzed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd())

	return root.ExecuteContext(ctx)
}
