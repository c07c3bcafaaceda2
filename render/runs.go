// Package render applies highlight spans to text for display.
package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"nxhl/highlight"
)

// Run is a maximal byte range of text drawn with one appearance.
type Run struct {
	Start      int
	End        int
	Appearance highlight.Appearance
}

// Runs applies spans in emission order on top of base and returns the
// resulting runs, which cover text exactly. A span only changes the channels
// its style enables, so a nested span overrides its parent where they
// overlap and inherits the rest.
func Runs(text string, spans []highlight.Span, base highlight.Appearance) []Run {
	if text == "" {
		return nil
	}

	cells := make([]highlight.Appearance, len(text))
	for i := range cells {
		cells[i] = base
	}
	for _, s := range spans {
		start, end := max(s.Start, 0), min(s.End(), len(text))
		for i := start; i < end; i++ {
			cells[i] = s.Style.Resolve(cells[i])
		}
	}

	runs := []Run{{Start: 0, End: 1, Appearance: cells[0]}}
	for i := 1; i < len(cells); i++ {
		last := &runs[len(runs)-1]
		if cells[i] == last.Appearance {
			last.End = i + 1
			continue
		}
		runs = append(runs, Run{Start: i, End: i + 1, Appearance: cells[i]})
	}
	return runs
}

// hexColor formats c as #rrggbb. ok is false for the terminal default and
// other colours without an RGB value.
func hexColor(c highlight.Color) (string, bool) {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return "", false
	}
	col := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	return col.Hex(), true
}
