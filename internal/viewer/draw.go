package viewer

import (
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"nxhl/highlight"
)

// ----------------- RENDER -----------------

// The top bar takes three rows, the command line and its separator two.
const chromeRows = 5

func (v *Viewer) pageSize() int {
	_, h := v.screen.Size()
	return max(h-chromeRows, 1)
}

func (v *Viewer) adjustScroll() {
	height := v.pageSize()
	if v.cursorLine < v.scrollOffset {
		v.scrollOffset = v.cursorLine
	}
	if v.cursorLine >= v.scrollOffset+height {
		v.scrollOffset = v.cursorLine - height + 1
	}
}

func (v *Viewer) Render() {
	v.screen.Clear()
	w, h := v.screen.Size()
	height := v.pageSize()
	base := cellStyle(v.hl.Defaults())

	// Top bar
	drawLine(v.screen, 0, 0, w, '-')
	header := "nxhl | " + filepath.Base(v.path)
	if v.grammar != "" {
		header += " | Grammar: " + v.grammar
	}
	header += fmt.Sprintf(" | %d spans", v.spanCount)
	drawString(v.screen, 0, 1, header, tcell.StyleDefault)
	drawLine(v.screen, 0, 2, w, '-')

	lineNumWidth := v.getLineNumberWidth()
	for i := 0; i < height; i++ {
		idx := v.scrollOffset + i
		if idx >= len(v.lines) {
			break
		}
		prefix := " "
		if idx == v.cursorLine {
			prefix = ">"
		}
		lineNumStr := fmt.Sprintf("%*d%s ", lineNumWidth-2, idx+1, prefix)
		x := drawString(v.screen, 0, 3+i, lineNumStr, tcell.StyleDefault)
		for col := x; col < w-1; col++ {
			v.screen.SetContent(col, 3+i, ' ', nil, base)
		}
		v.drawHighlightedLine(x, 3+i, w-1, idx)
	}

	// Scroll bar
	if len(v.lines) > 1 && height > 1 {
		topY := 3
		bottomY := 3 + height - 1
		drawString(v.screen, w-1, topY, "▲", tcell.StyleDefault)
		drawString(v.screen, w-1, bottomY, "▼", tcell.StyleDefault)
		ratio := float64(v.cursorLine) / float64(len(v.lines)-1)
		pos := int(ratio * float64(height-1))
		drawString(v.screen, w-1, topY+pos, "█", tcell.StyleDefault)
	}

	drawLine(v.screen, 0, h-2, w, '-')

	// Command line
	switch {
	case v.mode == Find:
		prompt := "> " + v.findBuf
		if v.findBuf != "" {
			prompt += fmt.Sprintf("  [%d/%d]", min(v.findIndex+1, len(v.findResults)), len(v.findResults))
		}
		drawString(v.screen, 0, h-1, prompt, tcell.StyleDefault)
	case v.status != "":
		drawString(v.screen, 0, h-1, "=> "+v.status, tcell.StyleDefault.Foreground(tcell.ColorRed))
	default:
		drawString(v.screen, 0, h-1, "q quit  / find  n/N next/prev  r reload", tcell.StyleDefault.Dim(true))
	}

	v.screen.HideCursor()
	v.screen.Show()
}

// drawHighlightedLine draws line idx from x up to, not including, column
// limit. Tabs are expanded and the first leftCol columns skipped.
func (v *Viewer) drawHighlightedLine(x, y, limit, idx int) {
	ln := v.lines[idx]
	col := 0
	run := 0
	for i, r := range ln.text {
		for run < len(ln.runs)-1 && ln.runs[run].End <= i {
			run++
		}
		style := tcell.StyleDefault
		if run < len(ln.runs) {
			style = cellStyle(ln.runs[run].Appearance)
		}

		if r == '\t' {
			n := tabWidth - col%tabWidth
			for k := 0; k < n; k++ {
				v.putCell(x, y, limit, col+k, ' ', style)
			}
			col += n
			continue
		}

		width := runewidth.RuneWidth(r)
		if width == 0 {
			continue
		}
		v.putCell(x, y, limit, col, r, style)
		col += width
	}
}

func (v *Viewer) putCell(x, y, limit, col int, r rune, style tcell.Style) {
	if col < v.leftCol {
		return
	}
	sx := x + col - v.leftCol
	if sx+runewidth.RuneWidth(r) > limit {
		return
	}
	v.screen.SetContent(sx, y, r, nil, style)
}

func cellStyle(a highlight.Appearance) tcell.Style {
	flags := a.Font.Style
	return tcell.StyleDefault.
		Foreground(a.Foreground).
		Background(a.Background).
		Bold(flags.Has(highlight.FontBold)).
		Italic(flags.Has(highlight.FontItalic)).
		Underline(flags.Has(highlight.FontUnderline)).
		StrikeThrough(flags.Has(highlight.FontStrikeout))
}

// ----------------- HELPERS -----------------

func drawLine(s tcell.Screen, x, y, width int, ch rune) {
	for i := 0; i < width; i++ {
		s.SetContent(x+i, y, ch, nil, tcell.StyleDefault)
	}
}

// drawString returns the column after the last cell drawn.
func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

func (v *Viewer) getLineNumberWidth() int {
	digits := len(fmt.Sprint(max(len(v.lines), 1)))

	// Add 2 for prefix ("> " or " ") and 1 for space after
	return digits + 3
}
