package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/formula/cmd/formula/commands"
	"go.trai.ch/formula/internal/app"
	"go.trai.ch/formula/internal/build"
	"go.trai.ch/formula/internal/core/domain"
	"go.trai.ch/formula/internal/core/ports"
)

type mockApp struct {
	installFunc func(ctx context.Context, opts app.InstallOptions) error
	infoFunc    func(ctx context.Context, configPath string) (*domain.Formula, error)
	depsFunc    func(ctx context.Context, configPath string) ([]ports.DependencyStatus, error)
	historyFunc func(ctx context.Context, limit int) ([]domain.InstallRecord, error)

	historyPath string
	verbose     bool
}

func (m *mockApp) Install(ctx context.Context, opts app.InstallOptions) error {
	if m.installFunc != nil {
		return m.installFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Info(ctx context.Context, configPath string) (*domain.Formula, error) {
	if m.infoFunc != nil {
		return m.infoFunc(ctx, configPath)
	}
	return domain.DefaultFormula(), nil
}

func (m *mockApp) Deps(ctx context.Context, configPath string) ([]ports.DependencyStatus, error) {
	if m.depsFunc != nil {
		return m.depsFunc(ctx, configPath)
	}
	return nil, nil
}

func (m *mockApp) History(ctx context.Context, limit int) ([]domain.InstallRecord, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockApp) UseHistoryPath(path string) {
	m.historyPath = path
}

func (m *mockApp) SetVerbose(verbose bool) {
	m.verbose = verbose
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Install(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.InstallOptions
		mock := &mockApp{
			installFunc: func(_ context.Context, opts app.InstallOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "-c", "formula.toml", "install", "--HEAD", "--prefix", "/opt/x", "--dry-run")
		require.NoError(t, err)

		assert.Equal(t, "formula.toml", captured.ConfigPath)
		assert.True(t, captured.Head)
		assert.Equal(t, "/opt/x", captured.Prefix)
		assert.True(t, captured.DryRun)
		assert.Nil(t, captured.AllowRelease)
		assert.NotNil(t, captured.Out)
	})

	t.Run("release with version", func(t *testing.T) {
		var captured app.InstallOptions
		mock := &mockApp{
			installFunc: func(_ context.Context, opts app.InstallOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "install", "--version", "0.20240220.1", "-p", "/opt/x")
		require.NoError(t, err)

		assert.False(t, captured.Head)
		assert.Equal(t, "0.20240220.1", captured.Version)
		assert.Nil(t, captured.AllowRelease)
	})

	t.Run("explicit allow-release overrides policy", func(t *testing.T) {
		var captured app.InstallOptions
		mock := &mockApp{
			installFunc: func(_ context.Context, opts app.InstallOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "install", "--allow-release=false", "-p", "/opt/x")
		require.NoError(t, err)

		require.NotNil(t, captured.AllowRelease)
		assert.False(t, *captured.AllowRelease)
	})

	t.Run("returns error on install failure", func(t *testing.T) {
		mock := &mockApp{
			installFunc: func(_ context.Context, _ app.InstallOptions) error {
				return domain.ErrUnsupportedMode
			},
		}

		_, err := execute(t, mock, "install", "-p", "/opt/x")
		require.ErrorIs(t, err, domain.ErrUnsupportedMode)
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "install", "extra")
		require.Error(t, err)
	})
}

func TestCommands_PersistentFlags(t *testing.T) {
	mock := &mockApp{}

	_, err := execute(t, mock, "--history", "/tmp/h.db", "--verbose", "history")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/h.db", mock.historyPath)
	assert.True(t, mock.verbose)
}

func TestCommands_Info(t *testing.T) {
	var gotPath string
	mock := &mockApp{
		infoFunc: func(_ context.Context, configPath string) (*domain.Formula, error) {
			gotPath = configPath
			return domain.DefaultFormula(), nil
		},
	}

	out, err := execute(t, mock, "--config", "formula.yaml", "info")
	require.NoError(t, err)

	assert.Equal(t, "formula.yaml", gotPath)
	assert.Contains(t, out, "json2sqlite3: stable 0.20240220.1, HEAD")
	assert.Contains(t, out, "https://github.com/yyuu/json2sqlite3")
	assert.Contains(t, out, "(tag v0.20240220.1)")
	assert.Contains(t, out, "Head: https://github.com/yyuu/json2sqlite3.git (branch main)")
	assert.Contains(t, out, "Installs: release and HEAD")
	assert.Contains(t, out, "  coreutils (recommended)")
	assert.Contains(t, out, "  jq\n")
}

func TestCommands_Info_Golden(t *testing.T) {
	out, err := execute(t, &mockApp{}, "info")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "info_default", []byte(out))
}

func TestCommands_Info_HeadOnly(t *testing.T) {
	mock := &mockApp{
		infoFunc: func(_ context.Context, _ string) (*domain.Formula, error) {
			f := domain.DefaultFormula()
			f.Policy.AllowReleaseInstalls = false
			return f, nil
		},
	}

	out, err := execute(t, mock, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Installs: HEAD only")
}

func TestCommands_Info_Error(t *testing.T) {
	mock := &mockApp{
		infoFunc: func(_ context.Context, _ string) (*domain.Formula, error) {
			return nil, domain.ErrConfigParseFailed
		},
	}

	_, err := execute(t, mock, "info")
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestCommands_Deps(t *testing.T) {
	mock := &mockApp{
		depsFunc: func(_ context.Context, _ string) ([]ports.DependencyStatus, error) {
			return []ports.DependencyStatus{
				{Dependency: domain.Dependency{Name: "bash"}, Path: "/bin/bash"},
				{Dependency: domain.Dependency{Name: "sqlite", Recommended: true}},
			}, nil
		},
	}

	out, err := execute(t, mock, "deps")
	require.NoError(t, err)

	assert.Contains(t, out, "✔ bash /bin/bash")
	assert.Contains(t, out, "✘ sqlite (recommended) not found")
}

func TestCommands_History(t *testing.T) {
	var gotLimit int
	mock := &mockApp{
		historyFunc: func(_ context.Context, limit int) ([]domain.InstallRecord, error) {
			gotLimit = limit
			return []domain.InstallRecord{
				{
					Formula:   "json2sqlite3",
					Mode:      domain.ModeHead,
					Prefix:    "/opt/x",
					Outcome:   domain.OutcomeSucceeded,
					StartedAt: time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC),
					Duration:  1500 * time.Millisecond,
				},
				{
					Formula:  "json2sqlite3",
					Mode:     domain.ModeRelease,
					Version:  "0.20240220.1",
					Prefix:   "/opt/x",
					Outcome:  domain.OutcomeFailed,
					ExitCode: 2,
				},
			}, nil
		},
	}

	out, err := execute(t, mock, "history", "-n", "5")
	require.NoError(t, err)

	assert.Equal(t, 5, gotLimit)
	assert.Contains(t, out, "STARTED")
	assert.Contains(t, out, "HEAD")
	assert.Contains(t, out, "succeeded")
	assert.Contains(t, out, "1.5s")
	assert.Contains(t, out, "0.20240220.1")
	assert.Contains(t, out, "failed (exit 2)")
}

func TestCommands_History_ColumnsAlignWithColor(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	mock := &mockApp{
		historyFunc: func(_ context.Context, _ int) ([]domain.InstallRecord, error) {
			return []domain.InstallRecord{
				{Formula: "json2sqlite3", Mode: domain.ModeHead, Prefix: "/opt/x", Outcome: domain.OutcomeSucceeded, Duration: 1500 * time.Millisecond},
				{Formula: "json2sqlite3", Mode: domain.ModeRelease, Version: "0.20240220.1", Prefix: "/opt/x", Outcome: domain.OutcomeFailed, ExitCode: 2},
			}, nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"history"})
	require.NoError(t, cli.Execute(context.Background()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	header := strings.Index(lines[0], "OUTCOME")
	require.Positive(t, header)
	assert.Equal(t, header, strings.Index(lines[1], "\x1b["))
	assert.Equal(t, header, strings.Index(lines[2], "\x1b["))
	assert.Equal(t, strings.Index(lines[0], "DURATION"), strings.Index(lines[1], "1.5s"))
	assert.Equal(t, strings.Index(lines[0], "DURATION"), strings.Index(lines[2], "0s"))
}

func TestCommands_History_Empty(t *testing.T) {
	out, err := execute(t, &mockApp{}, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "no installs recorded")
}

func TestCommands_History_Error(t *testing.T) {
	mock := &mockApp{
		historyFunc: func(_ context.Context, _ int) ([]domain.InstallRecord, error) {
			return nil, errors.New("database is locked")
		},
	}

	_, err := execute(t, mock, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)

	assert.Contains(t, out, build.Version)
}
