package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nxhl/highlight"
)

type ANSIOptions struct {
	// Renderer decides the colour profile; nil detects it from the writer.
	Renderer *lipgloss.Renderer
	// NoBackground drops background colours, for terminals with their own
	// theme.
	NoBackground bool
}

// WriteANSI writes text to w with terminal escape sequences. Channels equal
// to base are left to the terminal. Font family and size have no terminal
// equivalent and are ignored.
func WriteANSI(w io.Writer, text string, spans []highlight.Span, base highlight.Appearance, opts ANSIOptions) error {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.NewRenderer(w)
	}

	for _, run := range Runs(text, spans, base) {
		style := ansiStyle(r, run.Appearance, base, opts.NoBackground)
		segment := text[run.Start:run.End]

		// Render pads multi-line input to a block, so lines go one at a time.
		for i, line := range strings.Split(segment, "\n") {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if line == "" {
				continue
			}
			if _, err := io.WriteString(w, style.Render(line)); err != nil {
				return err
			}
		}
	}
	return nil
}

func ansiStyle(r *lipgloss.Renderer, a, base highlight.Appearance, noBackground bool) lipgloss.Style {
	style := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	if a.Foreground != base.Foreground {
		if hex, ok := hexColor(a.Foreground); ok {
			style = style.Foreground(lipgloss.Color(hex))
		}
	}
	if !noBackground && a.Background != base.Background {
		if hex, ok := hexColor(a.Background); ok {
			style = style.Background(lipgloss.Color(hex))
		}
	}

	flags := a.Font.Style
	return style.
		Bold(flags.Has(highlight.FontBold)).
		Italic(flags.Has(highlight.FontItalic)).
		Underline(flags.Has(highlight.FontUnderline)).
		Strikethrough(flags.Has(highlight.FontStrikeout))
}
