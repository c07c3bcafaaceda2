package log

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestL_DefaultsToNop(t *testing.T) {
	l := L(context.Background())
	require.NotNil(t, l)
	require.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewContext(t *testing.T) {
	l := zap.NewExample()
	ctx := NewContext(context.Background(), l)
	require.Same(t, l, L(ctx))
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nxhl.log")

	l, sync, err := New(Options{Debug: true, File: path})
	require.NoError(t, err)
	l.Debug("compiled pattern", zap.String("key", "dquote"))
	sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "compiled pattern")
	require.Contains(t, string(data), "dquote")
}

func TestNew_QuietByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nxhl.log")

	l, sync, err := New(Options{File: path})
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Core().Enabled(zapcore.WarnLevel))
	l.Info("dropped")
	sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "dropped")
}
