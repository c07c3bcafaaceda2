package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nxhl/highlight"
)

func TestNames(t *testing.T) {
	require.Equal(t, []string{"cpp", "csharp", "generic", "python", "shell"}, Names())
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"shell", "bash", " SH ", "c++", "c#", "py", "generic"} {
		f, err := Lookup(name)
		require.NoError(t, err, name)
		require.NotNil(t, f)
	}

	f, err := Lookup("bash")
	require.NoError(t, err)
	require.True(t, f().Has("varblock"))

	_, err = Lookup("cobol")
	require.ErrorIs(t, err, ErrUnknownGrammar)
	require.ErrorIs(t, err, highlight.Err)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"build.sh", "shell"},
		{"/etc/profile.d/x.BASH", "shell"},
		{"main.cpp", "cpp"},
		{"stdio.h", "cpp"},
		{"setup.py", "python"},
		{"Program.cs", "csharp"},
		{"notes.txt", "generic"},
		{"Makefile", "generic"},
		{"-", "generic"},
		{"", "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			require.Equal(t, tt.want, Detect(tt.filename))
		})
	}
}
