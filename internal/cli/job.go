package cli

import (
	"fmt"
	"strconv"

	"applicant-tracker/internal/recruit"

	"github.com/spf13/cobra"
)

func newJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Create, list and delete job postings",
	}
	cmd.AddCommand(newJobCreateCmd(), newJobListCmd(), newJobDeleteCmd())
	return cmd
}

func newJobCreateCmd() *cobra.Command {
	var in recruit.NewJob
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an open job",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer e.close()

			job, err := e.app.Service.CreateJob(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created job %d (%s)\n", job.ID, job.JobCode)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.JobCode, "code", "", "job code (required)")
	cmd.Flags().StringVar(&in.Title, "title", "", "job title (required)")
	cmd.Flags().StringVar(&in.Department, "department", "", "department")
	cmd.Flags().StringVar(&in.CreatedDate, "created", "", "created date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&in.ClosedDate, "closes", "", "closing date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&in.RequiredSkills, "skills", "", "comma separated required skills")
	return cmd
}

func newJobListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer e.close()

			jobs, err := e.app.Service.ListJobs(cmd.Context())
			if err != nil {
				return err
			}
			renderJobs(cmd.OutOrStdout(), jobs)
			return nil
		},
	}
}

func newJobDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a job that has no candidates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job id %q", args[0])
			}

			e, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.app.Service.DeleteJob(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted job %d\n", id)
			return nil
		},
	}
}
