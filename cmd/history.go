package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpv/episcreen/internal/store"
	"github.com/mcpv/episcreen/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent scoring runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		runs, err := st.ListRecent(cmd.Context(), limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, theme.Label.Render("no recorded runs"))
			return nil
		}
		for _, run := range runs {
			fmt.Fprintf(out, "%s  %s  %s  %s\n",
				theme.Value.Render(run.CreatedAt.Format("2006-01-02 15:04")),
				theme.Label.Render(run.ID[:8]),
				theme.Value.Render(fmt.Sprintf("%4d patients", run.Patients)),
				theme.Value.Render(fmt.Sprintf("acc %.3f / bal %.3f", run.Accuracy, run.BalancedAccuracy)),
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to list")
}
