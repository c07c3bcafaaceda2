package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestWatcherSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo one\n"), 0o644))

	w, err := New(Config{Path: path, Debounce: 20 * time.Millisecond})
	require.NoError(t, err)
	changes, err := w.Start()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	require.NoError(t, os.WriteFile(path, []byte("echo two\n"), 0o644))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change signalled")
	}
}

func TestWatcherDebounces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.sh")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := New(Config{Path: path, Debounce: 200 * time.Millisecond})
	require.NoError(t, err)
	changes, err := w.Start()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o644))
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change signalled")
	}

	select {
	case <-changes:
		t.Fatal("burst of writes signalled twice")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestIsRelevant(t *testing.T) {
	w := &Watcher{path: filepath.Clean("/tmp/x/a.sh")}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: "/tmp/x/a.sh", Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: "/tmp/x/a.sh", Op: fsnotify.Create}, true},
		{"chmod", fsnotify.Event{Name: "/tmp/x/a.sh", Op: fsnotify.Chmod}, false},
		{"sibling", fsnotify.Event{Name: "/tmp/x/b.sh", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, w.isRelevant(tt.event))
		})
	}
}
