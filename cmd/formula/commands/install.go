package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/formula/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Build and install the formula into a prefix",
		Long: "Build and install the formula by running the build system with PREFIX and VERSION set.\n" +
			"Without --HEAD the release version of the formula (or --version) is installed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			head, _ := cmd.Flags().GetBool("HEAD")
			version, _ := cmd.Flags().GetString("version")
			prefix, _ := cmd.Flags().GetString("prefix")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			opts := app.InstallOptions{
				ConfigPath: c.configPath,
				Head:       head,
				Version:    version,
				Prefix:     prefix,
				DryRun:     dryRun,
				Out:        cmd.OutOrStdout(),
			}

			// The formula policy applies unless the flag was given explicitly.
			if cmd.Flags().Changed("allow-release") {
				allow, _ := cmd.Flags().GetBool("allow-release")
				opts.AllowRelease = &allow
			}

			return c.app.Install(cmd.Context(), opts)
		},
	}
	cmd.Flags().Bool("HEAD", false, "Install the latest unreleased state of the head branch")
	cmd.Flags().String("version", "", "Release version to install (defaults to the formula version)")
	cmd.Flags().StringP("prefix", "p", "", "Install root passed to the build system as PREFIX")
	cmd.Flags().Bool("allow-release", true, "Allow release installs; false permits HEAD installs only")
	cmd.Flags().BoolP("dry-run", "n", false, "Print the build command instead of running it")
	return cmd
}
