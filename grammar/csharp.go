package grammar

import (
	"github.com/gdamore/tcell/v2"

	"nxhl/highlight"
)

// CSharpFont is the default font of the C# grammar.
var CSharpFont = highlight.FontSpec{Family: "Consolas", Size: 12}

// CSharp highlights C# source. The command rule matches framework classes
// and is registered under "class".
func CSharp(opts ...Option) *highlight.RuleSet {
	o := newOptions(CSharpKeywords, CSharpClasses, CSharpFont, opts)
	b := newBuilder(o.Font)

	b.add("dquote", highlight.QuotedString("dquote", `"`, "", ""), b.fg(tcell.ColorDarkRed))
	b.add("char", highlight.QuotedChar("char", "'"), b.fg(stringRed))
	b.add("comment", highlight.SingleLineComment("comment", "//"), b.fgFont(tcell.ColorGreen, highlight.FontRegular))
	b.add("mcomment", highlight.MultiLineComment("mcomment", "/*", "*/"), b.fg(tcell.ColorGreen))
	// #region, #endregion and friends.
	b.add("preprocess", highlight.Preprocessor("preprocess", "#", ` \W/`, "|/[^/*]"), b.fg(tcell.ColorDarkBlue))
	b.add("keyword", highlight.LanguageWords("keyword", o.Keywords), b.fg(tcell.ColorBlue))
	b.add("class", highlight.LanguageWords("class", o.Commands), b.fg(tcell.ColorDarkCyan))

	return b.build()
}
