package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, debounce time.Duration) (*Watcher, string, chan string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mesh.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\n"), 0o644))

	w, err := New(debounce)
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	events := make(chan string, 16)
	require.NoError(t, w.Watch([]string{path}, func(p string) { events <- p }))
	w.Start()

	return w, path, events
}

func waitFor(t *testing.T, events chan string, timeout time.Duration) string {
	t.Helper()
	select {
	case p := <-events:
		return p
	case <-time.After(timeout):
		t.Fatal("timed out waiting for change callback")
		return ""
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	_, path, events := newTestWatcher(t, 100*time.Millisecond)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("v 1 0 0\n"), 0o644))
	}

	got := waitFor(t, events, 3*time.Second)
	assert.Equal(t, path, got)

	select {
	case <-events:
		t.Fatal("burst produced more than one callback")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherSurvivesRenameReplace(t *testing.T) {
	_, path, events := newTestWatcher(t, 50*time.Millisecond)

	// Replace the file the way editors save: temp file renamed over it.
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte("v 2 0 0\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	waitFor(t, events, 3*time.Second)

	// The re-armed watch still reports plain writes.
	require.NoError(t, os.WriteFile(path, []byte("v 3 0 0\n"), 0o644))
	waitFor(t, events, 3*time.Second)
}

func TestWatchMissingFile(t *testing.T) {
	w, err := New(time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	err = w.Watch([]string{filepath.Join(t.TempDir(), "absent.obj")}, func(string) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

func TestCloseCancelsPendingCallback(t *testing.T) {
	w, path, events := newTestWatcher(t, 500*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("v 4 0 0\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, w.Close())

	select {
	case <-events:
		t.Fatal("callback fired after Close")
	case <-time.After(700 * time.Millisecond):
	}
}
