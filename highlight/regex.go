package highlight

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Builders for the patterns grammars are made of. Every builder names its
// outermost capture after group so the result can be registered under that
// key. Patterns use .NET syntax: `(?<name>...)`, lookbehind, and the same group
// name may appear in several alternation branches.

// notEscaped matches a position not preceded by an odd number of backslashes.
const notEscaped = `(?<=(?<!\\)(?:\\{2})+|[^\\]|^)`

// EscapeDelim quotes delim for literal use in a pattern.
func EscapeDelim(delim string) string {
	return regexp2.Escape(delim)
}

// classEscape escapes s for use inside a character class.
func classEscape(s string) string {
	var b strings.Builder
	for _, r := range uniqueRunes(s) {
		if strings.ContainsRune(`\]^-[`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func uniqueRunes(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !strings.ContainsRune(b.String(), r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LanguageWords matches any of words as a whole word (keywords, commands).
func LanguageWords(group string, words []string) string {
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = EscapeDelim(w)
	}
	return `(?<` + group + `>\b(?:` + strings.Join(escaped, "|") + `)\b)`
}

// QuotedChar matches a single, possibly escaped, character between delim,
// e.g. 'c' or '\n'.
func QuotedChar(group, delim string) string {
	d := EscapeDelim(delim)
	return `(?<!\\)(?<` + group + `>` + d + `(?:\\.|[^\\` + classEscape(delim) + `])` + d + `)`
}

// QuotedString matches a single-line string between delim. special lists extra
// characters that end the string; extra is an additional alternative inside.
func QuotedString(group, delim, special, extra string) string {
	d := EscapeDelim(delim)
	return `(?<!\\)(?<` + group + `>` + d + `(?:[^\\` + classEscape(delim) + special + `\r\n]|\\.` + extra + `)*` + d + `)`
}

// MultiLineQuotedString is QuotedString allowing line breaks.
func MultiLineQuotedString(group, delim, special, extra string) string {
	d := EscapeDelim(delim)
	return `(?<!\\)(?<` + group + `>` + d + `(?:[^\\` + classEscape(delim) + special + `]|\\[\w\W]|\r\n` + extra + `)*` + d + `)`
}

// SingleLineComment matches from delim to the end of the line.
func SingleLineComment(group, delim string) string {
	return `(?<` + group + `>(?<!\$)` + EscapeDelim(delim) + `.*)`
}

// MultiLineComment matches from open to the nearest close across lines.
func MultiLineComment(group, open, close string) string {
	if close == "" {
		close = open
	}
	return `(?<` + group + `>` + EscapeDelim(open) + `(?:.|[\r\n])*?` + EscapeDelim(close) + `)`
}

// ReferencedVariable matches an unescaped variable reference such as $var.
func ReferencedVariable(group, delim string) string {
	return notEscaped + `(?<` + group + `>` + EscapeDelim(delim) + `[A-Za-z0-9_@#$*?][\w]*)`
}

// Preprocessor matches a directive line such as #include <x.h>. special lists
// characters that end the match; extra is an additional alternative.
func Preprocessor(group, delim, special, extra string) string {
	return `(?<` + group + `>^\s*` + EscapeDelim(delim) + `(?:[^\r\n` + special + `]|\\` + extra + `)*)`
}

// ReferencedBlock matches a single-line block such as ${name...} or
// $(cmd ...). The whole block is captured as group, the opening reference as
// ref and the closing delimiter as end. special lists characters that may not
// occur inside the block.
func ReferencedBlock(group, ref, end, open, close, special string) string {
	return `(?<` + group + `>(?<` + ref + `>\$` + EscapeDelim(open) + `\s*[A-Za-z0-9_]+)(?:[^` + classEscape(close) + special + `])*(?<` + end + `>` + EscapeDelim(close) + `))`
}

// Unescaped prefixes alternatives with the not-escaped lookbehind.
func Unescaped(alternatives ...string) string {
	return notEscaped + `(?:` + strings.Join(alternatives, "|") + `)`
}
