package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-scores/internal/config"
	"github.com/preston-bernstein/nba-scores/internal/logging"
	"github.com/preston-bernstein/nba-scores/internal/session"
)

const serviceName = "nba-scores"

// runViewer remains a var for tests to replace the interactive program.
var runViewer = func(ctx context.Context, s *session.Session) error {
	return s.RunViewer(ctx)
}

type rootOptions struct {
	configPath string
	version    string
}

// NewRootCommand builds the nba-scores command tree. Without a subcommand it opens the viewer.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{version: version}

	cmd := &cobra.Command{
		Use:   "nba-scores",
		Short: "Browse NBA game results by date in the terminal",
		Long: `nba-scores shows the NBA games of a day and their final scores.

Keys:
  j / k   one day forward / back
  h / l   one week forward / back
  t       today
  q       quit

Examples:
  # Open the viewer
  nba-scores

  # Print the results of one day and exit
  nba-scores scores --date 2023-01-15`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runViewer(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file (environment variables still win)")

	cmd.AddCommand(newScoresCommand(opts))
	return cmd
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	if o.configPath == "" {
		return config.Load(), nil
	}
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (o *rootOptions) newLogger(cfg config.Config, out io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  out,
		Service: serviceName,
		Version: o.version,
	})
}

func (o *rootOptions) runViewer(cmd *cobra.Command) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	logFile, err := logging.OpenFile(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := o.newLogger(cfg, logFile)

	s := session.New(cfg, logger)
	return runViewer(cmd.Context(), s)
}
