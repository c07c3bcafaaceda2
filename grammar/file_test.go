package grammar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"nxhl/highlight"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_YAMLExtendsBase(t *testing.T) {
	path := writeFile(t, "make.yaml", `
name: make
base: shell
rules:
  - key: target
    pattern: '^(?<target>[\w.-]+)(?=:)'
    foreground: darkblue
    font: {style: bold}
  - key: comment
    pattern: '(?<comment>#.*)'
    foreground: gray
remove: [backtick]
`)

	rs, name, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "make", name)

	require.False(t, rs.Has("backtick"))
	require.NotContains(t, rs.Dependencies("dquote"), "backtick")
	require.Equal(t, "target", rs.Keys()[rs.Len()-1], "new rules are appended")

	comment, _ := rs.Rule("comment")
	fg, _ := comment.Style().Foreground()
	require.Equal(t, tcell.ColorGray, fg, "existing rule is replaced")
	_, hasFont := comment.Style().Font()
	require.False(t, hasFont)

	got := scan(t, rs, "all: build # default\n\techo done")
	require.Equal(t, []found{
		{"target", "all", 0},
		{"comment", "# default", 0},
		{"command", "echo", 0},
		{"keyword", "done", 0},
	}, got)
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeFile(t, "ini.toml", `
[font]
family = "Courier"
size = 9.0

[[rules]]
key = "section"
pattern = '^\s*(?<section>\[[^\]]+\])'
foreground = "darkblue"
font = { style = "bold" }

[[rules]]
key = "comment"
pattern = '(?<comment>;.*)'
foreground = "gray"
`)

	rs, name, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "ini", name, "name defaults to the file name")
	require.Equal(t, highlight.FontSpec{Family: "Courier", Size: 9}, rs.DefaultFont())

	section, _ := rs.Rule("section")
	font, ok := section.Style().Font()
	require.True(t, ok)
	require.Equal(t, highlight.FontSpec{Family: "Courier", Size: 9, Style: highlight.FontBold}, font)

	got := scan(t, rs, "[core]\n; note\nkey = v")
	require.Equal(t, []found{
		{"section", "[core]", 0},
		{"comment", "; note", 0},
	}, got)
}

func TestLoadFile_FontReachesBaseRules(t *testing.T) {
	path := writeFile(t, "sh.yaml", `
base: shell
font: {family: Courier, size: 14}
`)

	rs, _, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, highlight.FontSpec{Family: "Courier", Size: 14}, rs.DefaultFont())

	keyword, _ := rs.Rule("keyword")
	font, ok := keyword.Style().Font()
	require.True(t, ok)
	require.Equal(t, highlight.FontSpec{Family: "Courier", Size: 14, Style: highlight.FontBold}, font)

	comment, _ := rs.Rule("comment")
	font, _ = comment.Style().Font()
	require.Equal(t, "Courier", font.Family)
}

func TestLoadFile_FontOption(t *testing.T) {
	consolas := highlight.FontSpec{Family: "Consolas", Size: 12}

	path := writeFile(t, "sh.yaml", "base: shell\n")
	rs, _, err := LoadFile(path, WithFont(consolas))
	require.NoError(t, err)
	keyword, _ := rs.Rule("keyword")
	font, _ := keyword.Style().Font()
	require.Equal(t, consolas.WithStyle(highlight.FontBold), font)

	// The file's own font block wins over the option, field by field.
	path = writeFile(t, "sh.yaml", "base: shell\nfont: {size: 8}\n")
	rs, _, err = LoadFile(path, WithFont(consolas))
	require.NoError(t, err)
	keyword, _ = rs.Rule("keyword")
	font, _ = keyword.Style().Font()
	require.Equal(t, highlight.FontSpec{Family: "Consolas", Size: 8, Style: highlight.FontBold}, font)

	// Without a base, the option is the default for the file's rules.
	path = writeFile(t, "todo.yaml", "rules: [{key: todo, pattern: '(?<todo>TODO)', font: {style: italic}}]\n")
	rs, _, err = LoadFile(path, WithFont(consolas))
	require.NoError(t, err)
	require.Equal(t, consolas, rs.DefaultFont())
	todo, _ := rs.Rule("todo")
	font, _ = todo.Style().Font()
	require.Equal(t, consolas.WithStyle(highlight.FontItalic), font)
}

func TestFile_RuleSetKeepsBaseFont(t *testing.T) {
	rs, err := (&File{Base: "csharp"}).RuleSet()
	require.NoError(t, err)
	require.Equal(t, CSharpFont, rs.DefaultFont())
}

func TestParse_JSON(t *testing.T) {
	f, err := Parse([]byte(`{"name": "j", "rules": [{"key": "n", "pattern": "(?<n>\\d+)", "dependencies": ["m"]}]}`), "json")
	require.NoError(t, err)
	require.Equal(t, "j", f.Name)
	require.Len(t, f.Rules, 1)
	require.Equal(t, []string{"m"}, f.Rules[0].Dependencies)
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := Parse([]byte("x"), ".ini")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("rules: [unclosed"), "yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "decoding grammar")
}

func TestFile_RuleSetErrors(t *testing.T) {
	tests := []struct {
		name string
		file File
		is   error
	}{
		{"dangling", File{Rules: []highlight.RuleConfig{{Key: "a", Pattern: "(?<a>a)", Dependencies: []string{"ghost"}}}}, highlight.ErrDanglingDependency},
		{"self", File{Rules: []highlight.RuleConfig{{Key: "a", Dependencies: []string{"a"}}}}, highlight.ErrSelfDependency},
		{"base", File{Base: "cobol"}, ErrBaseGrammar},
		{"remove", File{Remove: []string{"nope"}}, highlight.ErrKeyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.RuleSet()
			require.ErrorIs(t, err, tt.is)
		})
	}
}

func TestFile_RuleSetMissingKey(t *testing.T) {
	_, err := (&File{Rules: []highlight.RuleConfig{{Pattern: "x"}}}).RuleSet()
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing key")
}
