package render

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"

	"nxhl/highlight"
)

type HTMLOptions struct {
	// Document wraps the fragment in a complete page.
	Document bool
	Title    string
	// Generator is written as a trailing comment in documents.
	Generator string
}

// WriteHTML writes text as an HTML fragment: one span carrying base, with a
// nested span for every run that differs from it. Whitespace is preserved
// with &nbsp; and <br />, so no <pre> is needed.
func WriteHTML(w io.Writer, text string, spans []highlight.Span, base highlight.Appearance, opts HTMLOptions) error {
	bw := bufio.NewWriter(w)

	if opts.Document {
		title := opts.Title
		if title == "" {
			title = "Output"
		}
		fmt.Fprintf(bw, "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>%s</title></head>", html.EscapeString(title))
		if bg, ok := hexColor(base.Background); ok {
			fmt.Fprintf(bw, "<body style=\"background-color:%s\">\n", bg)
		} else {
			bw.WriteString("<body>\n")
		}
	}

	fmt.Fprintf(bw, `<span style="%s">`, css(base, highlight.Appearance{}, true))
	for _, run := range Runs(text, spans, base) {
		segment := translate(text[run.Start:run.End])
		if run.Appearance == base {
			bw.WriteString(segment)
			continue
		}
		fmt.Fprintf(bw, `<span style="%s">%s</span>`, css(run.Appearance, base, false), segment)
	}
	bw.WriteString("</span>")

	if opts.Document {
		bw.WriteString("\n")
		if opts.Generator != "" {
			fmt.Fprintf(bw, "<!--%s-->\n", strings.ReplaceAll(opts.Generator, "--", "- -"))
		}
		bw.WriteString("</body></html>\n")
	}
	return bw.Flush()
}

// css lists the properties of a that differ from base, or all of them.
func css(a, base highlight.Appearance, all bool) string {
	var props []string
	add := func(name, value string) {
		props = append(props, name+":"+value)
	}

	if all || a.Foreground != base.Foreground {
		if hex, ok := hexColor(a.Foreground); ok {
			add("color", hex)
		}
	}
	if all || a.Background != base.Background {
		if hex, ok := hexColor(a.Background); ok {
			add("background-color", hex)
		}
	}
	if (all || a.Font.Family != base.Font.Family) && a.Font.Family != "" {
		add("font-family", "'"+html.EscapeString(a.Font.Family)+"'")
	}
	if (all || a.Font.Size != base.Font.Size) && a.Font.Size > 0 {
		add("font-size", fmt.Sprintf("%gpx", a.Font.Size))
	}

	flags, baseFlags := a.Font.Style, base.Font.Style
	if all || flags.Has(highlight.FontBold) != baseFlags.Has(highlight.FontBold) {
		add("font-weight", pick(flags.Has(highlight.FontBold), "bold", "normal"))
	}
	if all || flags.Has(highlight.FontItalic) != baseFlags.Has(highlight.FontItalic) {
		add("font-style", pick(flags.Has(highlight.FontItalic), "italic", "normal"))
	}
	decoration := flags & (highlight.FontUnderline | highlight.FontStrikeout)
	if all || decoration != baseFlags&(highlight.FontUnderline|highlight.FontStrikeout) {
		var d []string
		if flags.Has(highlight.FontUnderline) {
			d = append(d, "underline")
		}
		if flags.Has(highlight.FontStrikeout) {
			d = append(d, "line-through")
		}
		if len(d) == 0 {
			d = append(d, "none")
		}
		add("text-decoration", strings.Join(d, " "))
	}

	return strings.Join(props, ";")
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

var htmlReplacer = strings.NewReplacer(
	"\r", "",
	"\n", "<br />\n",
	"\t", "&nbsp;&nbsp;&nbsp;&nbsp;",
	" ", "&nbsp;",
)

func translate(s string) string {
	return htmlReplacer.Replace(html.EscapeString(s))
}
