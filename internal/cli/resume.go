package cli

import (
	"errors"
	"fmt"

	"applicant-tracker/internal/objectstore"
	"applicant-tracker/internal/recruit"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newResumeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Screen resumes against a job",
	}
	cmd.AddCommand(newResumeIngestCmd())
	return cmd
}

func newResumeIngestCmd() *cobra.Command {
	var (
		jobID       int64
		dir         string
		bucket      string
		prefix      string
		autoApprove bool
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Parse and score resumes, then store the ones with an email",
		Long: `Reads PDF and DOCX resumes from a local directory or an S3 compatible bucket,
shows the extracted fields and the screening decision, and asks before storing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (dir == "") == (bucket == "") {
				return errors.New("exactly one of --dir or --bucket is required")
			}

			ctx := cmd.Context()
			e, err := setup(ctx, cmd)
			if err != nil {
				return err
			}
			defer e.close()

			var files []recruit.ResumeFile
			if dir != "" {
				files, err = readDir(dir, e.logger)
			} else {
				s3cfg := e.cfg.S3
				s3cfg.Bucket = bucket
				var b *objectstore.Bucket
				b, err = objectstore.NewBucket(ctx, s3cfg)
				if err == nil {
					files, err = readBucket(ctx, b, prefix, e.logger)
				}
			}
			if err != nil {
				return err
			}
			if len(files) == 0 {
				e.logger.Info("exiting", zap.String("reason", "no resumes found"))
				return nil
			}

			previews, err := e.app.Service.PreviewResumes(ctx, jobID, files)
			if err != nil {
				return err
			}
			renderPreviews(cmd.OutOrStdout(), previews)

			if !autoApprove {
				prompt := promptui.Prompt{
					Label:     fmt.Sprintf("Store %d candidates", countStorable(previews)),
					IsConfirm: true,
				}
				if _, err := prompt.Run(); err != nil {
					e.logger.Info("exiting", zap.String("reason", "got no from prompt"))
					return nil
				}
			}

			res, err := e.app.Service.SaveCandidates(ctx, previews)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %d candidates, skipped %d without email\n", len(res.Saved), len(res.Skipped))
			for _, f := range res.Skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "  skipped: %s\n", f)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&jobID, "job", 0, "job id (required)")
	cmd.Flags().StringVar(&dir, "dir", "", "local directory with resumes")
	cmd.Flags().StringVar(&bucket, "bucket", "", "bucket with resumes (uses the s3 config section)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "key prefix inside the bucket")
	cmd.Flags().BoolVarP(&autoApprove, "yes", "y", false, "do not ask for confirmation")
	_ = cmd.MarkFlagRequired("job")
	return cmd
}

func countStorable(previews []recruit.Preview) int {
	n := 0
	for _, p := range previews {
		if p.Storable() {
			n++
		}
	}
	return n
}
