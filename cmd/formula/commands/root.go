// Package commands implements the CLI commands for the formula installer.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/formula/internal/app"
	"go.trai.ch/formula/internal/build"
	"go.trai.ch/formula/internal/core/domain"
	"go.trai.ch/formula/internal/core/ports"
)

// CLI represents the command line interface for formula.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath  string
	historyPath string
	verbose     bool
}

// Application represents the application logic interface.
type Application interface {
	Install(ctx context.Context, opts app.InstallOptions) error
	Info(ctx context.Context, configPath string) (*domain.Formula, error)
	Deps(ctx context.Context, configPath string) ([]ports.DependencyStatus, error)
	History(ctx context.Context, limit int) ([]domain.InstallRecord, error)
	UseHistoryPath(path string)
	SetVerbose(verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "formula",
		Short:         "Install json2sqlite3 from a head checkout or a tagged release",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c.app.SetVerbose(c.verbose)
			c.app.UseHistoryPath(c.historyPath)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		"Path to the formula file (defaults to formula.yaml, formula.yml or formula.toml, then the built-in formula)")
	rootCmd.PersistentFlags().StringVar(&c.historyPath, "history", "",
		"Path to the install history database")
	rootCmd.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "Enable debug logging")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newHistoryCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
