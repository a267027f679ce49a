package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/formula/internal/adapters/history"
	"go.trai.ch/formula/internal/core/domain"
)

func newStore(t *testing.T) *history.Store {
	t.Helper()
	store := history.NewStore(filepath.Join(t.TempDir(), "state", "history.db"))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func record(startedAt time.Time, outcome domain.InstallOutcome) domain.InstallRecord {
	rec := domain.NewInstallRecord("json2sqlite3", domain.InstallRequest{
		Mode:   domain.ModeHead,
		Prefix: "/usr/local",
	}, startedAt)
	rec.Command = "make PREFIX=/usr/local VERSION=HEAD install"
	rec.Digest = "0123456789abcdef"
	rec.Outcome = outcome
	rec.Duration = 1500 * time.Millisecond
	return rec
}

func TestStore_AppendAndRecent(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	base := time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)
	first := record(base, domain.OutcomeSucceeded)
	second := record(base.Add(time.Minute), domain.OutcomeFailed)
	second.ExitCode = 2
	second.Error = "make exited with status 2: build failed"

	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	records, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, domain.OutcomeFailed, records[0].Outcome)
	assert.Equal(t, domain.ExitStatus(2), records[0].ExitCode)
	assert.Equal(t, second.Error, records[0].Error)

	got := records[1]
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "json2sqlite3", got.Formula)
	assert.Equal(t, domain.ModeHead, got.Mode)
	assert.Equal(t, "/usr/local", got.Prefix)
	assert.Equal(t, first.Command, got.Command)
	assert.Equal(t, first.Digest, got.Digest)
	assert.Equal(t, 1500*time.Millisecond, got.Duration)
	assert.True(t, base.Equal(got.StartedAt))
}

func TestStore_RecentLimit(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	base := time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)
	for i := range 5 {
		require.NoError(t, store.Append(ctx, record(base.Add(time.Duration(i)*time.Second), domain.OutcomeSucceeded)))
	}

	records, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.True(t, base.Add(4*time.Second).Equal(records[0].StartedAt))

	all, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestStore_EmptyHistory(t *testing.T) {
	store := newStore(t)

	records, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_IdenticalRequestsAreSeparateEntries(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, store.Append(ctx, record(now, domain.OutcomeSucceeded)))
	require.NoError(t, store.Append(ctx, record(now, domain.OutcomeSucceeded)))

	records, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestStore_DuplicateIDFails(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	rec := record(time.Now(), domain.OutcomeSucceeded)
	require.NoError(t, store.Append(ctx, rec))

	err := store.Append(ctx, rec)
	require.ErrorIs(t, err, domain.ErrHistoryWriteFailed)
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	first := history.NewStore(path)
	require.NoError(t, first.Append(ctx, record(time.Now(), domain.OutcomeRejected)))
	require.NoError(t, first.Close())

	second := history.NewStore(path)
	defer func() { _ = second.Close() }()

	records, err := second.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.OutcomeRejected, records[0].Outcome)
	assert.Equal(t, path, second.Path())
}

func TestStore_OpenFailure(t *testing.T) {
	dir := t.TempDir()
	// The database path is a directory, so it cannot be opened as a file.
	store := history.NewStore(dir)

	err := store.Append(context.Background(), record(time.Now(), domain.OutcomeSucceeded))
	require.ErrorIs(t, err, domain.ErrHistoryOpenFailed)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	assert.Equal(t, filepath.Join("/tmp/state", "formula", "history.db"), history.DefaultPath())
}
