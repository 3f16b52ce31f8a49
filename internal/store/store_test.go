package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/declgen-tools/cli/internal/testutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewWithDB(testutil.NewTestDB(t))
}

func TestBeginAndFinishRun(t *testing.T) {
	s := newTestStore(t)

	id, err := s.BeginRun()
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.NoError(t, s.FinishRun(id, 3, 2))

	var generated, skipped int
	err = s.DB().QueryRow(
		"SELECT generated, skipped FROM runs WHERE id = ?", id,
	).Scan(&generated, &skipped)
	require.NoError(t, err)
	require.Equal(t, 3, generated)
	require.Equal(t, 2, skipped)
}

func TestRecordAndLookupHash(t *testing.T) {
	s := newTestStore(t)

	runID, err := s.BeginRun()
	require.NoError(t, err)

	_, found, err := s.LookupHash("internal/actions/user.go")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, s.RecordHash(runID, "internal/actions/user.go", "abc123"))

	hash, found, err := s.LookupHash("internal/actions/user.go")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "abc123", hash)
}

func TestRecordHashUpserts(t *testing.T) {
	s := newTestStore(t)

	runID, err := s.BeginRun()
	require.NoError(t, err)

	require.NoError(t, s.RecordHash(runID, "a.go", "old"))
	require.NoError(t, s.RecordHash(runID, "a.go", "new"))

	hash, found, err := s.LookupHash("a.go")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "new", hash)

	stats, err := s.GetStats()
	require.NoError(t, err)
	require.Equal(t, 1, stats.Files)
}

func TestGetStats(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.GetStats()
	require.NoError(t, err)
	require.Zero(t, stats.Files)
	require.Zero(t, stats.Runs)
	require.True(t, stats.LastRun.IsZero())

	runID, err := s.BeginRun()
	require.NoError(t, err)
	require.NoError(t, s.RecordHash(runID, "a.go", "h1"))
	require.NoError(t, s.RecordHash(runID, "b.go", "h2"))

	stats, err = s.GetStats()
	require.NoError(t, err)
	require.Equal(t, 2, stats.Files)
	require.Equal(t, 1, stats.Runs)
	require.WithinDuration(t, time.Now().UTC(), stats.LastRun, time.Minute)
}

func TestClear(t *testing.T) {
	s := newTestStore(t)

	runID, err := s.BeginRun()
	require.NoError(t, err)
	require.NoError(t, s.RecordHash(runID, "a.go", "h1"))

	require.NoError(t, s.Clear())

	stats, err := s.GetStats()
	require.NoError(t, err)
	require.Zero(t, stats.Files)
	require.Zero(t, stats.Runs)
}
