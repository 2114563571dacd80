package main

import (
	"alignr/internal/domain/matching"

	"github.com/spf13/cobra"
)

type compareSummary struct {
	TotalRequired int `json:"total_required"`
	TotalMatched  int `json:"total_matched"`
	TotalMissing  int `json:"total_missing"`
}

type compareOutput struct {
	MatchedSkills []string       `json:"matched_skills"`
	MissingSkills []string       `json:"missing_skills"`
	Summary       compareSummary `json:"summary"`
}

func newCompareCmd() *cobra.Command {
	var userSkills, jobSkills string

	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Compare a user's skills with a job's required skills",
		Example: `  alignr compare --user "SQL, Excel" --job "SQL, Tableau, Python"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := matching.Compare(splitSkills(userSkills), splitSkills(jobSkills))
			return writeJSON(cmd.OutOrStdout(), compareOutput{
				MatchedSkills: res.MatchedNames(),
				MissingSkills: res.MissingNames(),
				Summary: compareSummary{
					TotalRequired: res.Summary.TotalRequired,
					TotalMatched:  res.Summary.TotalMatched,
					TotalMissing:  res.Summary.TotalMissing,
				},
			})
		},
	}

	cmd.Flags().StringVar(&userSkills, "user", "", "Comma-separated skills the user has")
	cmd.Flags().StringVar(&jobSkills, "job", "", "Comma-separated skills the job requires")
	_ = cmd.MarkFlagRequired("job")
	return cmd
}
