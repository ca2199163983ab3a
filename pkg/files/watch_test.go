package files

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchProjectDetectsCatalogChange(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, VentiqDir)
	require.NoError(t, os.MkdirAll(dir, 0755))

	changed := make(chan struct{}, 4)
	w, err := WatchProject(root, func() { changed <- struct{}{} }, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, CatalogFile), []byte("tutorials: []\n"), 0644))

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change notification")
	}
}

func TestWatchProjectIgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, VentiqDir)
	require.NoError(t, os.MkdirAll(dir, 0755))

	var calls atomic.Int32
	w, err := WatchProject(root, func() { calls.Add(1) }, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	time.Sleep(150 * time.Millisecond)

	if n := calls.Load(); n != 0 {
		t.Errorf("expected no notifications, got %d", n)
	}
}

func TestWatchProjectMissingDirectory(t *testing.T) {
	_, err := WatchProject(t.TempDir(), func() {})
	require.Error(t, err)
}
