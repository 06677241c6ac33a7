package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var (
		jobID   int64
		rescore bool
	)
	cmd := &cobra.Command{
		Use:   "import FILE.xlsx",
		Short: "Import candidates of a job from a spreadsheet",
		Long: `Reads the first sheet; the header row names the columns name, email, phone,
skills, stage and match_pct. Values are stored as given unless --rescore is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			e, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer e.close()

			res, err := e.app.Service.ImportSpreadsheet(cmd.Context(), jobID, f, rescore)
			if err != nil {
				return err
			}
			renderCandidates(cmd.OutOrStdout(), res.Imported)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d candidates (scored: %t)\n", len(res.Imported), res.Scored)
			return nil
		},
	}
	cmd.Flags().Int64Var(&jobID, "job", 0, "job id (required)")
	cmd.Flags().BoolVar(&rescore, "rescore", false, "recompute stage and match_pct from the skills column")
	_ = cmd.MarkFlagRequired("job")
	return cmd
}

func newShortlistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shortlist",
		Short: "List candidates selected for interview across all jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer e.close()

			list, err := e.app.Service.Shortlist(cmd.Context())
			if err != nil {
				return err
			}
			renderShortlist(cmd.OutOrStdout(), list)
			return nil
		},
	}
}

func newDashboardCmd() *cobra.Command {
	var jobID int64
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the hiring funnel of a job",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer e.close()

			d, err := e.app.Service.Dashboard(cmd.Context(), jobID)
			if err != nil {
				return err
			}
			renderDashboard(cmd.OutOrStdout(), d)
			return nil
		},
	}
	cmd.Flags().Int64Var(&jobID, "job", 0, "job id (required)")
	_ = cmd.MarkFlagRequired("job")
	return cmd
}
