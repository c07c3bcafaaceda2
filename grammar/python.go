package grammar

import (
	"github.com/gdamore/tcell/v2"

	"nxhl/highlight"
)

// Python highlights Python source. Triple-quoted strings come first so they
// win over the single-line forms.
func Python(opts ...Option) *highlight.RuleSet {
	o := newOptions(PythonKeywords, PythonBuiltins, highlight.DefaultFont, opts)
	b := newBuilder(o.Font)

	b.add("tripledquote", highlight.MultiLineQuotedString("tripledquote", `"""`, `"`, `|"(?!"")`), b.fg(tcell.ColorGreen))
	b.add("triplesquote", highlight.MultiLineQuotedString("triplesquote", `'''`, `'`, `|'(?!'')`), b.fg(tcell.ColorGreen))
	b.add("dquote", highlight.QuotedString("dquote", `"`, "", ""), b.fg(tcell.ColorGreen))
	b.add("squote", highlight.QuotedString("squote", "'", "", ""), b.fg(tcell.ColorGreen))
	b.add("value", `\b(?<value>\d+\.?\w*)`, b.fg(tcell.ColorFuchsia))
	b.add("comment", highlight.SingleLineComment("comment", "#"), b.fgFont(tcell.ColorGray, highlight.FontRegular))
	b.add("decorator", highlight.Preprocessor("decorator", "@", "#'", "|'[^'][^']"), b.fg(tcell.ColorCornflowerBlue))
	b.add("keyword", highlight.LanguageWords("keyword", o.Keywords), b.fgFont(tcell.ColorPurple, highlight.FontBold))
	b.add("command", highlight.LanguageWords("command", o.Commands), b.fgFont(tcell.ColorChocolate, highlight.FontRegular))
	b.add("values", highlight.LanguageWords("values", PythonValues), b.fg(tcell.ColorRoyalBlue))

	return b.build()
}
