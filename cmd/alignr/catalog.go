package main

import (
	"fmt"

	"alignr/internal/catalog"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect skill and course catalogs",
	}
	cmd.AddCommand(newCatalogValidateCmd())
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate a catalog JSON file against the catalog schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "catalog %s is valid: %d keywords, %d courses, %d gap report items\n",
				args[0], len(cat.SkillKeywords), len(cat.Courses), len(cat.SkillsGapReport.SkillsToDevelop))
			return err
		},
	}
}
