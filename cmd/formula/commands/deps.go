package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "List declared dependencies and whether they are on PATH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := c.app.Deps(cmd.Context(), c.configPath)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, s := range statuses {
				name := s.Dependency.Name
				if s.Dependency.Recommended {
					name += " (recommended)"
				}
				if s.Found() {
					_, _ = fmt.Fprintf(w, "%s %s %s\n", color.GreenString("✔"), name, s.Path)
				} else {
					_, _ = fmt.Fprintf(w, "%s %s %s\n", color.RedString("✘"), name, color.YellowString("not found"))
				}
			}
			return nil
		},
	}
}
