// Package main provides the alignr command line: the HTTP server plus offline
// helpers for comparing skill lists, extracting keywords and checking catalogs.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "alignr",
		Short:         "Alignr career-alignment API",
		Long:          "Alignr compares a candidate's skills with job requirements and serves rule-based career guidance over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newCompareCmd(),
		newExtractCmd(),
		newCatalogCmd(),
	)
	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
