package highlight

import (
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/require"
)

// firstGroup returns the first capture of group in text, or "" for no match.
func firstGroup(t *testing.T, pattern, group, text string) string {
	t.Helper()
	re, err := regexp2.Compile(pattern, regexp2.Multiline)
	require.NoError(t, err, pattern)

	m, err := re.FindStringMatch(text)
	require.NoError(t, err)
	for m != nil {
		if g := m.GroupByName(group); g != nil && len(g.Captures) > 0 {
			return g.String()
		}
		m, err = re.FindNextMatch(m)
		require.NoError(t, err)
	}
	return ""
}

func TestBuilders(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		group   string
		text    string
		want    string
	}{
		{"word", LanguageWords("kw", []string{"echo", "if"}), "kw", "echoes if", "if"},
		{"word with regex chars", LanguageWords("kw", []string{"a.b"}), "kw", "axb a.b", "a.b"},
		{"string", QuotedString("s", `"`, "", ""), "s", `x = "a \" b" + y`, `"a \" b"`},
		{"string not across lines", QuotedString("s", `"`, "", ""), "s", "\"a\nb\"", ""},
		{"escaped opening quote", QuotedString("s", `"`, "", ""), "s", `\"a" "b"`, `" "`},
		{"char", QuotedChar("c", "'"), "c", `x = '\n'`, `'\n'`},
		{"multiline string", MultiLineQuotedString("t", `"""`, `"`, `|"(?!"")`), "t", "x = \"\"\"a\n\"b\"\"\"", "\"\"\"a\n\"b\"\"\""},
		{"line comment", SingleLineComment("c", "#"), "c", "echo x # note\nnext", "# note"},
		{"not a comment after $", SingleLineComment("c", "#"), "c", "echo $#", ""},
		{"block comment", MultiLineComment("m", "/*", "*/"), "m", "a /* b\n c */ d */", "/* b\n c */"},
		{"variable", ReferencedVariable("v", "$"), "v", "echo $HOME/bin", "$HOME"},
		{"escaped variable", ReferencedVariable("v", "$"), "v", `echo \$HOME`, ""},
		{"escaped backslash", ReferencedVariable("v", "$"), "v", `echo \\$HOME`, "$HOME"},
		{"preprocessor", Preprocessor("p", "#", "/", "|/[^/*]"), "p", "  #include <a/b.h> // x", "  #include <a/b.h> "},
		{"block", ReferencedBlock("b", "r", "e", "(", ")", "#"), "b", "x=$(ls -l) y", "$(ls -l)"},
		{"block ref", ReferencedBlock("b", "r", "e", "{", "}", "#"), "r", "${ name}", "${ name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, firstGroup(t, tt.pattern, tt.group, tt.text))
		})
	}
}

func TestUnescaped(t *testing.T) {
	p := Unescaped(`(?<a>\$a)`, `(?<b>\$b)`)

	require.Equal(t, "$b", firstGroup(t, p, "b", `\$a $b`))
	require.Equal(t, "", firstGroup(t, p, "a", `\$a $b`))
}

func TestEscapeDelim(t *testing.T) {
	require.Equal(t, `\$\(`, EscapeDelim("$("))
}
