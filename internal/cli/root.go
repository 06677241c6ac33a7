// Package cli implements the ats command line tool.
package cli

import (
	"context"
	"fmt"

	"applicant-tracker/internal/app"
	"applicant-tracker/internal/config"
	"applicant-tracker/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const name = "ats"

// env carries what every subcommand needs once flags are parsed.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	app    *app.App
}

func (e *env) close() {
	e.app.Close()
	_ = e.logger.Sync()
}

// NewRootCmd builds the ats command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           name,
		Short:         "ats manages job postings and screens resumes against them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "a config file (yaml, json or toml)")
	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	root.AddCommand(
		newJobCmd(),
		newResumeCmd(),
		newImportCmd(),
		newShortlistCmd(),
		newDashboardCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads config, builds the logger and opens the application. Flags
// override the log settings from config.
func setup(ctx context.Context, cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Log.Debug = true
	}
	if json, _ := cmd.Flags().GetBool("json"); json {
		cfg.Log.JSON = true
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: log, app: application}, nil
}
