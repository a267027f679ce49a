// Package app implements the application layer for formula.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.trai.ch/formula/internal/adapters/history" //nolint:depguard // Wired in app layer
	"go.trai.ch/formula/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/formula/internal/build"
	"go.trai.ch/formula/internal/core/domain"
	"go.trai.ch/formula/internal/core/ports"
	"go.trai.ch/formula/internal/engine/dispatcher"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       ports.ProcessRunner
	logger       ports.Logger
	history      ports.InstallHistory
	receipts     ports.ReceiptWriter
	telemetry    ports.Telemetry
	probe        ports.DependencyProbe
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	runner ports.ProcessRunner,
	log ports.Logger,
	hist ports.InstallHistory,
	receipts ports.ReceiptWriter,
	telemetry ports.Telemetry,
	probe ports.DependencyProbe,
) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		logger:       log,
		history:      hist,
		receipts:     receipts,
		telemetry:    telemetry,
		probe:        probe,
		now:          time.Now,
	}
}

// WithClock replaces the clock used for history records and receipts.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithHistory replaces the install history.
func (a *App) WithHistory(h ports.InstallHistory) *App {
	a.history = h
	return a
}

// UseHistoryPath switches the install history to the SQLite database at path.
func (a *App) UseHistoryPath(path string) {
	if path == "" {
		return
	}
	_ = a.closeHistory()
	a.history = history.NewStore(path)
}

// SetVerbose enables debug logging when the logger supports levels.
func (a *App) SetVerbose(verbose bool) {
	l, ok := a.logger.(interface{ SetLevel(slog.Level) })
	if !ok {
		return
	}
	if verbose {
		l.SetLevel(slog.LevelDebug)
	} else {
		l.SetLevel(slog.LevelInfo)
	}
}

// Close releases the telemetry session and the history database.
func (a *App) Close() error {
	var errs error
	if a.telemetry != nil {
		errs = errors.Join(errs, a.telemetry.Close())
	}
	return errors.Join(errs, a.closeHistory())
}

func (a *App) closeHistory() error {
	if c, ok := a.history.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	// ConfigPath is the formula file. Empty means discovery or the built-in formula.
	ConfigPath string
	// Head requests a head install. Otherwise a release is installed.
	Head bool
	// Version overrides the formula version for release installs.
	Version string
	// Prefix is the install root.
	Prefix string
	// AllowRelease overrides the formula policy when set.
	AllowRelease *bool
	// DryRun prints the build invocation to Out instead of running it.
	DryRun bool
	// Out receives dry run output. Defaults to os.Stdout.
	Out io.Writer
}

// Install loads the formula and dispatches a single install request.
// Every attempt except dry runs is appended to the install history. A receipt
// is written into the prefix after a successful build.
func (a *App) Install(ctx context.Context, opts InstallOptions) error {
	formula, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load formula")
	}

	policy := formula.Policy
	if opts.AllowRelease != nil {
		policy.AllowReleaseInstalls = *opts.AllowRelease
	}

	req := requestFor(formula, opts)

	if opts.DryRun {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		d := dispatcher.New(shell.NewDryRunner(out), policy, dispatcher.WithBuildSettings(formula.Build))
		return d.Install(ctx, req)
	}

	d := dispatcher.New(a.runner, policy, dispatcher.WithBuildSettings(formula.Build))

	rec := domain.NewInstallRecord(formula.Name, req, a.now())
	inv, err := d.Plan(req)
	if err != nil {
		rec.Outcome = domain.OutcomeRejected
		rec.Error = err.Error()
		a.appendHistory(ctx, rec)
		return err
	}
	rec.Command = inv.String()
	rec.Digest = inv.Digest()

	vctx, vertex := a.telemetry.Record(ctx, inv.String())
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("installing %s %s into %s", formula.Name, versionLabel(req), req.Prefix))
	err = d.Install(vctx, req)
	vertex.Complete(err)

	rec.Duration = a.now().Sub(rec.StartedAt)
	if err != nil {
		rec.Outcome = domain.OutcomeFailed
		rec.Error = err.Error()
		if code, ok := domain.ExitCodeOf(err); ok {
			rec.ExitCode = code
		}
		a.appendHistory(ctx, rec)
		return err
	}

	rec.Outcome = domain.OutcomeSucceeded
	a.appendHistory(ctx, rec)

	receipt := domain.Receipt{
		Formula:     formula.Name,
		Mode:        req.Mode,
		Version:     versionLabel(req),
		Source:      sourceFor(formula, req.Mode),
		Command:     inv.Args,
		InstalledAt: a.now().UTC(),
		Installer:   build.Version,
	}
	if err := a.receipts.Write(req.Prefix, receipt); err != nil {
		return zerr.Wrap(err, "installed but failed to write receipt")
	}

	a.logger.Info(fmt.Sprintf("installed %s %s", formula.Name, versionLabel(req)))
	return nil
}

// Info returns the formula selected by configPath.
func (a *App) Info(_ context.Context, configPath string) (*domain.Formula, error) {
	formula, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load formula")
	}
	return formula, nil
}

// Deps reports which declared dependencies are present on the host.
// Missing dependencies are not an error.
func (a *App) Deps(ctx context.Context, configPath string) ([]ports.DependencyStatus, error) {
	formula, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load formula")
	}

	statuses, err := a.probe.Probe(ctx, formula.Dependencies)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to probe dependencies")
	}
	return statuses, nil
}

// History returns the latest install attempts, newest first.
func (a *App) History(ctx context.Context, limit int) ([]domain.InstallRecord, error) {
	records, err := a.history.Recent(ctx, limit)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read install history")
	}
	return records, nil
}

// appendHistory records an attempt. A failing audit log never changes the install result.
func (a *App) appendHistory(ctx context.Context, rec domain.InstallRecord) {
	if err := a.history.Append(context.WithoutCancel(ctx), rec); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to record install history"))
	}
}

func requestFor(formula *domain.Formula, opts InstallOptions) domain.InstallRequest {
	if opts.Head {
		return domain.InstallRequest{Mode: domain.ModeHead, Prefix: opts.Prefix}
	}
	version := opts.Version
	if version == "" {
		version = formula.Version
	}
	return domain.InstallRequest{Mode: domain.ModeRelease, Version: version, Prefix: opts.Prefix}
}

func versionLabel(req domain.InstallRequest) string {
	if req.Mode == domain.ModeHead {
		return domain.HeadVersion
	}
	return req.Version
}

func sourceFor(formula *domain.Formula, mode domain.Mode) string {
	if mode == domain.ModeHead {
		if formula.Head.URL == "" {
			return ""
		}
		return formula.Head.URL + "#" + formula.Head.Branch
	}
	if tag := formula.ReleaseTag(); tag != "" && formula.URL != "" {
		return formula.URL + "#" + tag
	}
	return formula.URL
}
