package main

import (
	"fmt"
	"os"
	"strings"

	"alignr/internal/domain/matching"

	"github.com/spf13/cobra"
)

type extractOutput struct {
	ExtractedSkills []string `json:"extracted_skills"`
}

func newExtractCmd() *cobra.Command {
	var inputFile, catalogPath string

	cmd := &cobra.Command{
		Use:   "extract [text]",
		Short: "Extract known skill keywords from a job description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			switch {
			case inputFile != "" && len(args) > 0:
				return fmt.Errorf("cannot use --in together with a text argument")
			case inputFile != "":
				b, err := os.ReadFile(inputFile)
				if err != nil {
					return fmt.Errorf("failed to read input file: %w", err)
				}
				text = string(b)
			case len(args) > 0:
				text = args[0]
			default:
				return fmt.Errorf("must provide either a text argument or --in")
			}

			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), extractOutput{
				ExtractedSkills: matching.ExtractKeywords(strings.TrimSpace(text), cat.Keywords()),
			})
		},
	}

	cmd.Flags().StringVarP(&inputFile, "in", "i", "", "Path to a job description text file")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a catalog JSON file (overrides CATALOG_PATH)")
	return cmd
}
