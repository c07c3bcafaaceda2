package grammar

import (
	"github.com/gdamore/tcell/v2"

	"nxhl/highlight"
)

// Generic is a small C-like grammar: strings, character literals, line
// comments, a few keywords and commands.
func Generic(opts ...Option) *highlight.RuleSet {
	o := newOptions(GenericKeywords, GenericCommands, highlight.DefaultFont, opts)
	b := newBuilder(o.Font)

	b.add("dquote", highlight.QuotedString("dquote", `"`, "", ""), b.fg(stringRed))
	b.add("char", highlight.QuotedChar("char", "'"), b.fg(tcell.ColorFuchsia))
	b.add("comment", highlight.SingleLineComment("comment", "//"), b.fgFont(tcell.ColorGreen, highlight.FontItalic))
	b.add("keyword", highlight.LanguageWords("keyword", o.Keywords), b.fgFont(tcell.ColorBlue, highlight.FontBold))
	b.add("command", highlight.LanguageWords("command", o.Commands), b.fgFont(tcell.ColorChocolate, highlight.FontRegular))

	return b.build()
}
