package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-scores/internal/logging"
	"github.com/preston-bernstein/nba-scores/internal/session"
	"github.com/preston-bernstein/nba-scores/internal/timeutil"
)

// now remains a var for tests to pin the default date.
var now = time.Now

func newScoresCommand(root *rootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Print the results of one day and exit",
		Long: `Scores fetches the games played on one day and prints one line per game
as "<home> <home score>:<visitor score> <visitor>".

The date defaults to yesterday (UTC).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = timeutil.FormatUTCDate(timeutil.AddDays(now(), -1))
			}
			return root.runScores(cmd, date)
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date to show (YYYY-MM-DD), defaults to yesterday")
	return cmd
}

func (o *rootOptions) runScores(cmd *cobra.Command, date string) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	logger := o.newLogger(cfg, cmd.ErrOrStderr())

	s := session.New(cfg, logger)
	defer s.Close()

	result, err := s.FetchOnce(cmd.Context(), date)
	if err != nil {
		return err
	}
	logging.Info(logger, "games fetched",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(result.Games)),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "These are the results for %s!\n", date)
	for _, g := range result.Games {
		fmt.Fprintln(out, g.DisplayLine())
	}
	return nil
}
