package progress

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), ".ventiq", FileName))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.Record(ctx, "venta", "Cómo realizar una venta", base))
	require.NoError(t, s.Record(ctx, "egresos", "Manejo de Egresos", base.Add(time.Hour)))
	require.NoError(t, s.Record(ctx, "venta", "Cómo realizar una venta", base.Add(2*time.Hour)))

	completions, err := s.Completions(ctx)
	require.NoError(t, err)
	require.Len(t, completions, 3)
	assert.Equal(t, "venta", completions[0].Key)
	assert.True(t, completions[0].CompletedAt.Equal(base.Add(2*time.Hour)))
	assert.Equal(t, "egresos", completions[1].Key)

	summaries, err := s.Summaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "venta", summaries[0].Key)
	assert.Equal(t, 2, summaries[0].Count)
	assert.Equal(t, "Cómo realizar una venta", summaries[0].Title)
	assert.Equal(t, 1, summaries[1].Count)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Record(ctx, "turnos", "Gestión de turnos", time.Now()))
	require.NoError(t, s.Record(ctx, "turnos", "Gestión de turnos", time.Now()))

	n, err := s.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	completions, err := s.Completions(ctx)
	require.NoError(t, err)
	assert.Empty(t, completions)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), FileName)

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, "almacenes", "Gestionar almacenes", time.Now()))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	completions, err := s.Completions(ctx)
	require.NoError(t, err)
	require.Len(t, completions, 1)
	assert.Equal(t, path, s.Path())
}
