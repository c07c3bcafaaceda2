package grammar

import (
	"github.com/gdamore/tcell/v2"

	"nxhl/highlight"
)

// Cpp highlights C and C++. The command rule matches C library functions.
func Cpp(opts ...Option) *highlight.RuleSet {
	o := newOptions(CppKeywords, CppFunctions, highlight.DefaultFont, opts)
	b := newBuilder(o.Font)

	b.add("dquote", highlight.QuotedString("dquote", `"`, "", ""), b.fg(stringRed))
	b.add("char", highlight.QuotedChar("char", "'"), b.fg(tcell.ColorFuchsia))
	b.add("comment", highlight.SingleLineComment("comment", "//"), b.fgFont(tcell.ColorGreen, highlight.FontRegular))
	b.add("mcomment", highlight.MultiLineComment("mcomment", "/*", "*/"), b.fg(tcell.ColorGreen))
	// Stops at a slash unless it does not start a comment.
	b.add("preprocess", highlight.Preprocessor("preprocess", "#", "/", "|/[^/*]"), b.fg(tcell.ColorCornflowerBlue))
	b.add("keyword", highlight.LanguageWords("keyword", o.Keywords), b.fgFont(tcell.ColorPurple, highlight.FontBold))
	b.add("command", highlight.LanguageWords("command", o.Commands), b.fgFont(tcell.ColorChocolate, highlight.FontRegular))
	b.add("datatype", highlight.LanguageWords("datatype", CppDatatypes), b.fg(tcell.ColorRoyalBlue))

	return b.build()
}
