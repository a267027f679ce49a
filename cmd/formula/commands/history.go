package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.trai.ch/formula/internal/core/domain"
)

func (c *CLI) newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent install attempts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			records, err := c.app.History(cmd.Context(), limit)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(records) == 0 {
				_, _ = fmt.Fprintln(w, "no installs recorded")
				return nil
			}

			// The colored outcome stays in the last cell, which tabwriter does not pad.
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "STARTED\tFORMULA\tMODE\tVERSION\tPREFIX\tDURATION\tOUTCOME")
			for _, r := range records {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.StartedAt.Local().Format(time.DateTime),
					r.Formula,
					r.Mode,
					versionOf(r),
					r.Prefix,
					r.Duration.Round(time.Millisecond),
					outcomeOf(r),
				)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntP("limit", "n", 10, "Number of entries to show (0 shows all)")
	return cmd
}

func versionOf(r domain.InstallRecord) string {
	if r.Mode == domain.ModeHead {
		return domain.HeadVersion
	}
	return r.Version
}

func outcomeOf(r domain.InstallRecord) string {
	switch r.Outcome {
	case domain.OutcomeSucceeded:
		return color.GreenString(string(r.Outcome))
	case domain.OutcomeFailed:
		if r.ExitCode != domain.ExitSuccess {
			return color.RedString("%s (exit %d)", r.Outcome, int(r.ExitCode))
		}
		return color.RedString(string(r.Outcome))
	default:
		return color.YellowString(string(r.Outcome))
	}
}
