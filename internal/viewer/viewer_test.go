package viewer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"nxhl/grammar"
	"nxhl/highlight"
	"nxhl/render"
)

func newTestViewer(t *testing.T, rs *highlight.RuleSet, text string) (*Viewer, tcell.SimulationScreen) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(60, 12)
	t.Cleanup(screen.Fini)

	v := New(path, highlight.New(rs), Options{Grammar: "shell", Screen: screen})
	require.NoError(t, v.reload(context.Background()))
	return v, screen
}

func row(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func cell(s tcell.SimulationScreen, x, y int) (rune, tcell.Style) {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' ', c.Style
	}
	return c.Runes[0], c.Style
}

func numbered(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("echo line %d", i+1)
	}
	return strings.Join(lines, "\n")
}

func TestSplitLines(t *testing.T) {
	a := highlight.DefaultAppearance
	b := a
	b.Foreground = tcell.ColorRed

	lines := splitLines("a\nbc\n", []render.Run{{Start: 0, End: 2, Appearance: a}, {Start: 2, End: 5, Appearance: b}})
	require.Len(t, lines, 3)

	require.Equal(t, "a", lines[0].text)
	require.Equal(t, []render.Run{{Start: 0, End: 1, Appearance: a}}, lines[0].runs)

	require.Equal(t, "bc", lines[1].text)
	require.Equal(t, []render.Run{{Start: 0, End: 2, Appearance: b}}, lines[1].runs)

	require.Equal(t, "", lines[2].text)
	require.Empty(t, lines[2].runs)
}

func TestRenderHighlightsLine(t *testing.T) {
	v, screen := newTestViewer(t, grammar.Shell(), "echo \"$HOME\"\n")
	v.Render()

	require.Contains(t, row(screen, 1), "nxhl | script.sh | Grammar: shell")
	require.True(t, strings.HasPrefix(row(screen, 3), " 1> echo \"$HOME\""), row(screen, 3))
	require.True(t, strings.HasPrefix(row(screen, 4), " 2>"), row(screen, 4))

	r, style := cell(screen, 4, 3)
	require.Equal(t, 'e', r)
	fg, bg, attr := style.Decompose()
	require.Equal(t, tcell.ColorChocolate, fg)
	require.Equal(t, tcell.ColorWhite, bg)
	require.NotZero(t, attr&tcell.AttrBold)

	r, style = cell(screen, 9, 3)
	require.Equal(t, '"', r)
	fg, _, _ = style.Decompose()
	require.Equal(t, tcell.NewHexColor(0xE60000), fg)

	r, style = cell(screen, 10, 3)
	require.Equal(t, '$', r)
	fg, _, _ = style.Decompose()
	require.Equal(t, tcell.ColorBlueViolet, fg)
}

func TestRenderExpandsTabs(t *testing.T) {
	v, screen := newTestViewer(t, grammar.Generic(), "\tx")
	v.Render()
	require.Equal(t, " 1>     x", row(screen, 3))
}

func TestRenderWideRunes(t *testing.T) {
	v, screen := newTestViewer(t, grammar.Generic(), "世界x")
	v.Render()

	r, _ := cell(screen, 4, 3)
	require.Equal(t, '世', r)
	r, _ = cell(screen, 6, 3)
	require.Equal(t, '界', r)
	r, _ = cell(screen, 8, 3)
	require.Equal(t, 'x', r)
}

func TestHighlightFailureKeepsText(t *testing.T) {
	rs := highlight.NewRuleSet()
	require.NoError(t, rs.Add("bad", highlight.NewRule(`(?<bad>[`, highlight.Style{})))

	v, screen := newTestViewer(t, rs, "plain text")
	require.NotEmpty(t, v.status)
	require.Zero(t, v.spanCount)

	v.Render()
	require.Contains(t, row(screen, 3), "plain text")
	require.Contains(t, row(screen, 11), "=> ")
}

func TestNavigation(t *testing.T) {
	v, _ := newTestViewer(t, grammar.Shell(), numbered(30))
	require.Len(t, v.lines, 30)
	require.Equal(t, 7, v.pageSize())

	key := func(k tcell.Key, r rune) bool {
		return v.handleKey(tcell.NewEventKey(k, r, tcell.ModNone))
	}

	key(tcell.KeyUp, 0)
	require.Equal(t, 0, v.cursorLine)

	key(tcell.KeyPgDn, 0)
	require.Equal(t, 6, v.cursorLine)
	require.Equal(t, 0, v.scrollOffset)

	key(tcell.KeyDown, 0)
	require.Equal(t, 7, v.cursorLine)
	require.Equal(t, 1, v.scrollOffset)

	key(tcell.KeyRune, 'G')
	require.Equal(t, 29, v.cursorLine)
	require.Equal(t, 23, v.scrollOffset)

	key(tcell.KeyHome, 0)
	require.Equal(t, 0, v.cursorLine)
	require.Equal(t, 0, v.scrollOffset)

	key(tcell.KeyRight, 0)
	require.Equal(t, tabWidth, v.leftCol)
	key(tcell.KeyLeft, 0)
	key(tcell.KeyLeft, 0)
	require.Zero(t, v.leftCol)

	require.False(t, key(tcell.KeyRune, 'j'))
	require.True(t, key(tcell.KeyRune, 'q'))
	require.True(t, key(tcell.KeyEsc, 0))
	require.True(t, key(tcell.KeyCtrlC, 0))
}

func TestFind(t *testing.T) {
	v, screen := newTestViewer(t, grammar.Shell(), numbered(30))

	key := func(k tcell.Key, r rune) {
		v.handleKey(tcell.NewEventKey(k, r, tcell.ModNone))
	}
	typeText := func(s string) {
		for _, r := range s {
			key(tcell.KeyRune, r)
		}
	}

	key(tcell.KeyRune, '/')
	require.Equal(t, Find, v.mode)

	typeText("line 2")
	// line 2, line 20 .. line 29
	require.Len(t, v.findResults, 11)
	require.Equal(t, 1, v.cursorLine)

	typeText("0")
	require.Equal(t, []int{19}, v.findResults)
	require.Equal(t, 19, v.cursorLine)
	require.Equal(t, 13, v.scrollOffset)

	v.Render()
	require.Equal(t, "> line 20  [1/1]", row(screen, 11))

	key(tcell.KeyBackspace2, 0)
	require.Len(t, v.findResults, 11)

	key(tcell.KeyEnter, 0)
	require.Equal(t, Browse, v.mode)

	key(tcell.KeyRune, 'n')
	require.Equal(t, 19, v.cursorLine)
	key(tcell.KeyRune, 'N')
	require.Equal(t, 1, v.cursorLine)
	key(tcell.KeyRune, 'N')
	require.Equal(t, 28, v.cursorLine)

	key(tcell.KeyCtrlF, 0)
	key(tcell.KeyEsc, 0)
	require.Equal(t, Browse, v.mode)
	require.Empty(t, v.findResults)
}

func TestReloadKeepsCursorInRange(t *testing.T) {
	v, _ := newTestViewer(t, grammar.Shell(), numbered(30))
	v.moveCursor(25)

	require.NoError(t, os.WriteFile(v.path, []byte(numbered(5)), 0o644))
	require.NoError(t, v.reload(context.Background()))
	require.Equal(t, 4, v.cursorLine)
}

func TestRunStopsWithContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo hi"), 0o644))

	screen := tcell.NewSimulationScreen("UTF-8")
	v := New(path, highlight.New(grammar.Shell()), Options{Screen: screen, Watch: true})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, v.Run(ctx), context.DeadlineExceeded)
}

func TestRunMissingFile(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	v := New(filepath.Join(t.TempDir(), "missing.sh"), highlight.New(grammar.Shell()), Options{Screen: screen})
	require.ErrorIs(t, v.Run(context.Background()), os.ErrNotExist)
}
