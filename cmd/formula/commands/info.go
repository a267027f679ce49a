package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.trai.ch/formula/internal/core/domain"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show formula metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formula, err := c.app.Info(cmd.Context(), c.configPath)
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), formula)
			return nil
		},
	}
}

func printInfo(w io.Writer, f *domain.Formula) {
	bold := color.New(color.Bold).SprintFunc()

	_, _ = fmt.Fprintf(w, "%s: stable %s", bold(f.Name), f.Version)
	if f.Head.URL != "" {
		_, _ = fmt.Fprint(w, ", HEAD")
	}
	_, _ = fmt.Fprintln(w)

	if f.Homepage != "" {
		_, _ = fmt.Fprintln(w, f.Homepage)
	}
	if f.URL != "" {
		_, _ = fmt.Fprintf(w, "Source: %s", f.URL)
		if tag := f.ReleaseTag(); tag != "" {
			_, _ = fmt.Fprintf(w, " (tag %s)", tag)
		}
		_, _ = fmt.Fprintln(w)
	}
	if f.Head.URL != "" {
		_, _ = fmt.Fprintf(w, "Head: %s (branch %s)\n", f.Head.URL, f.Head.Branch)
	}

	if f.Policy.AllowReleaseInstalls {
		_, _ = fmt.Fprintln(w, "Installs: release and HEAD")
	} else {
		_, _ = fmt.Fprintln(w, "Installs: HEAD only")
	}

	if len(f.Dependencies) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, bold("Dependencies"))
	for _, d := range f.Dependencies {
		if d.Recommended {
			_, _ = fmt.Fprintf(w, "  %s (recommended)\n", d.Name)
		} else {
			_, _ = fmt.Fprintf(w, "  %s\n", d.Name)
		}
	}
}
