package grammar

import (
	"github.com/gdamore/tcell/v2"

	"nxhl/highlight"
)

// Shell highlights sh and bash scripts. Double-quoted strings are rescanned
// for substitutions and variable references; test expressions and backticks
// are rescanned for nearly everything.
func Shell(opts ...Option) *highlight.RuleSet {
	o := newOptions(ShellKeywords, ShellCommands, highlight.DefaultFont, opts)
	b := newBuilder(o.Font)

	nested := []string{"keyword", "command", "dquote", "squote", "refvar", "varblock", "option"}

	b.add("dquote", highlight.QuotedString("dquote", `"`, "", ""), b.fg(stringRed),
		"backtick", "refvar", "varblock")
	b.add("squote", highlight.QuotedString("squote", "'", "", ""), b.fg(stringRed))
	b.add("comment", highlight.SingleLineComment("comment", "#"), b.fgFont(tcell.ColorCornflowerBlue, highlight.FontRegular))
	b.add("var", `(?:^\s*)(?<var>[A-Za-z_][\w]*?(?==))`, b.fg(tcell.ColorDarkCyan))

	// ${name...} and $(cmd ...) share group names so one rule covers both.
	b.add("varblock", highlight.Unescaped(
		highlight.ReferencedBlock("varblock", "refvar", "varblock_end", "{", "}", "#"),
		highlight.ReferencedBlock("varblock", "refvar", "varblock_end", "(", ")", "#"),
	), b.bg(tcell.ColorLavender), "refvar")

	b.add("refvar", highlight.ReferencedVariable("refvar", "$"), b.fg(tcell.ColorBlueViolet))
	b.add("keyword", highlight.LanguageWords("keyword", o.Keywords), b.fgFont(tcell.ColorBrown, highlight.FontBold))
	b.add("command", highlight.LanguageWords("command", o.Commands), b.fgFont(tcell.ColorChocolate, highlight.FontBold))
	b.add("option", `(?<=^|\s)(?<option>--?[\w][\w-]*)`, b.fg(tcell.ColorDarkGoldenrod))
	b.add("test", `(?<=^|\s)(?<test>\[(?:"(?:\\"|[^"])*"|[^\]])*\])`, b.bg(tcell.ColorPapayaWhip), nested...)
	b.add("backtick", "(?<!\\\\)(?<backtick>`[^`]*`)", b.bg(tcell.ColorPapayaWhip), nested...)

	// Only ever captured inside varblock.
	b.add("varblock_end", "", b.fg(tcell.ColorBlueViolet))

	return b.build()
}
