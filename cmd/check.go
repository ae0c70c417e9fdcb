package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpv/episcreen/internal/dataset"
	"github.com/mcpv/episcreen/internal/screening"
	"github.com/mcpv/episcreen/internal/ui/theme"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate input documents without scoring",
	RunE: func(cmd *cobra.Command, args []string) error {
		responsesPath, _ := cmd.Flags().GetString("responses")
		codesPath, _ := cmd.Flags().GetString("codes")

		roster, err := dataset.LoadResponses(responsesPath)
		if err != nil {
			return err
		}
		codes, err := dataset.LoadCodes(codesPath)
		if err != nil {
			return err
		}
		if err := dataset.Check(roster, codes, screening.DefaultQuestionSet()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %d patients, all checks passed\n",
			theme.Good.Render("ok:"), roster.Len())
		return nil
	},
}

func init() {
	checkCmd.Flags().StringP("responses", "r", "", "Path to patient responses JSON (required)")
	checkCmd.Flags().StringP("codes", "c", "", "Path to billing codes JSON (required)")
	_ = checkCmd.MarkFlagRequired("responses")
	_ = checkCmd.MarkFlagRequired("codes")
}
