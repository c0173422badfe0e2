package watch

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runWatcher starts w and returns a channel of delivered batches.
func runWatcher(t *testing.T, w *Watcher) <-chan []string {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	batches := make(chan []string, 10)
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = w.Run(ctx, func(_ context.Context, paths []string) {
			batches <- paths
		})
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})
	return batches
}

func waitBatch(t *testing.T, batches <-chan []string) []string {
	t.Helper()
	select {
	case batch := <-batches:
		return batch
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
		return nil
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{dir}, Options{Debounce: 50 * time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, w.Paths())

	batches := runWatcher(t, w)

	path := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0644))

	assert.Equal(t, []string{path}, waitBatch(t, batches))
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{dir}, Options{Debounce: 300 * time.Millisecond})
	require.NoError(t, err)

	batches := runWatcher(t, w)

	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("1"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("2"), 0644))
	require.NoError(t, os.WriteFile(a, []byte("3"), 0644))

	assert.Equal(t, []string{a, b}, waitBatch(t, batches))

	select {
	case extra := <-batches:
		t.Fatalf("unexpected second batch: %v", extra)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_IgnoresHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{dir}, Options{Debounce: 100 * time.Millisecond})
	require.NoError(t, err)

	batches := runWatcher(t, w)

	visible := filepath.Join(dir, "visible.txt")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "backup~"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(visible, []byte("x"), 0644))

	assert.Equal(t, []string{visible}, waitBatch(t, batches))
}

func TestWatcher_Recursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "pkg", "inner")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))

	w, err := New([]string{dir}, Options{Debounce: 50 * time.Millisecond, Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{dir, filepath.Join(dir, "pkg"), sub}, w.Paths())

	batches := runWatcher(t, w)

	path := filepath.Join(sub, "file.go")
	require.NoError(t, os.WriteFile(path, []byte("package inner\n"), 0644))

	assert.Equal(t, []string{path}, waitBatch(t, batches))
}

func TestWatcher_RunStopsOnCancel(t *testing.T) {
	w, err := New([]string{t.TempDir()}, Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = w.Run(ctx, func(context.Context, []string) {})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := New([]string{filepath.Join(t.TempDir(), "missing")}, Options{})
		assert.Error(t, err)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := New([]string{path}, Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func TestIgnoreHidden(t *testing.T) {
	assert.True(t, IgnoreHidden("/src/.git"))
	assert.True(t, IgnoreHidden("main.go~"))
	assert.False(t, IgnoreHidden("/src/main.go"))
}

func TestRunCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		assert.NoError(t, RunCommand(ctx, []string{"sh", "-c", "exit 0"}, 0))
	})

	t.Run("failure", func(t *testing.T) {
		assert.Error(t, RunCommand(ctx, []string{"sh", "-c", "exit 3"}, 0))
	})

	t.Run("timeout", func(t *testing.T) {
		start := time.Now()
		err := RunCommand(ctx, []string{"sh", "-c", "exec sleep 5"}, 100*time.Millisecond)
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 4*time.Second)
	})

	t.Run("empty", func(t *testing.T) {
		assert.ErrorIs(t, RunCommand(ctx, nil, 0), ErrEmptyCommand)
	})
}
