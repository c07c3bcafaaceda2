// Package viewer is a full-screen, read-only pager for highlighted files.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"nxhl/highlight"
	"nxhl/internal/watcher"
	"nxhl/render"
)

type Mode int

const (
	Browse Mode = iota
	Find
)

const tabWidth = 4

type Options struct {
	// Grammar is the name shown in the header.
	Grammar string
	// Screen defaults to the terminal.
	Screen tcell.Screen
	// Watch re-reads the file whenever it is written.
	Watch  bool
	Logger *zap.Logger
}

type line struct {
	text string
	runs []render.Run
}

type Viewer struct {
	path    string
	grammar string
	hl      *highlight.Highlighter
	screen  tcell.Screen
	watch   bool
	logger  *zap.Logger

	lines        []line
	spanCount    int
	cursorLine   int
	scrollOffset int
	leftCol      int
	mode         Mode
	findBuf      string
	findResults  []int
	findIndex    int
	status       string
}

type reloadEvent struct{}

type stopEvent struct{}

func New(path string, hl *highlight.Highlighter, opts Options) *Viewer {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Viewer{
		path:    path,
		grammar: opts.Grammar,
		hl:      hl,
		screen:  opts.Screen,
		watch:   opts.Watch,
		logger:  opts.Logger,
	}
}

// Run shows the file until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	if v.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		v.screen = s
	}
	if err := v.screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer v.screen.Fini()

	if err := v.reload(ctx); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)

	if v.watch {
		w, err := watcher.New(watcher.Config{Path: v.path, Logger: v.logger})
		if err != nil {
			return err
		}
		changes, err := w.Start()
		if err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()

		go func() {
			for {
				select {
				case <-changes:
					_ = v.screen.PostEvent(tcell.NewEventInterrupt(reloadEvent{}))
				case <-done:
					return
				}
			}
		}()
	}

	go func() {
		select {
		case <-ctx.Done():
			_ = v.screen.PostEvent(tcell.NewEventInterrupt(stopEvent{}))
		case <-done:
		}
	}()

	for {
		v.Render()
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.adjustScroll()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		case *tcell.EventInterrupt:
			switch ev.Data().(type) {
			case reloadEvent:
				if err := v.reload(ctx); err != nil {
					v.status = err.Error()
				}
			case stopEvent:
				return ctx.Err()
			}
		}
	}
}

// reload reads and highlights the file. A failed highlight still shows the
// text, unstyled, with the error on the command line.
func (v *Viewer) reload(ctx context.Context) error {
	data, err := os.ReadFile(v.path)
	if err != nil {
		return err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	spans, err := v.hl.Highlight(ctx, text)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		v.logger.Warn("highlight failed", zap.String("path", v.path), zap.Error(err))
		v.status = err.Error()
		spans = nil
	} else {
		v.status = ""
	}

	v.spanCount = len(spans)
	v.lines = splitLines(text, render.Runs(text, spans, v.hl.Defaults()))
	v.cursorLine = min(v.cursorLine, len(v.lines)-1)
	if v.findBuf != "" {
		v.updateFindResults()
	}
	v.logger.Debug("file highlighted",
		zap.String("path", v.path), zap.Int("lines", len(v.lines)), zap.Int("spans", len(spans)))
	return nil
}

// splitLines cuts text and its runs at newlines. Run offsets in the result
// are relative to their line.
func splitLines(text string, runs []render.Run) []line {
	var lines []line
	start, r := 0, 0
	for start <= len(text) {
		end := strings.IndexByte(text[start:], '\n')
		if end < 0 {
			end = len(text)
		} else {
			end += start
		}

		ln := line{text: text[start:end]}
		for r < len(runs) && runs[r].End <= start {
			r++
		}
		for i := r; i < len(runs) && runs[i].Start < end; i++ {
			run := runs[i]
			run.Start = max(run.Start, start) - start
			run.End = min(run.End, end) - start
			ln.runs = append(ln.runs, run)
		}
		lines = append(lines, ln)
		start = end + 1
	}
	return lines
}

// ----------------- BROWSE MODE -----------------

// handleKey reports whether the viewer should quit.
func (v *Viewer) handleKey(key *tcell.EventKey) bool {
	if key.Key() == tcell.KeyCtrlC {
		return true
	}
	if v.mode == Find {
		v.handleFind(key)
		return false
	}

	switch key.Key() {
	case tcell.KeyEsc:
		return true
	case tcell.KeyUp:
		v.moveCursor(-1)
	case tcell.KeyDown:
		v.moveCursor(1)
	case tcell.KeyLeft:
		v.leftCol = max(v.leftCol-tabWidth, 0)
	case tcell.KeyRight:
		v.leftCol += tabWidth
	case tcell.KeyPgUp:
		v.moveCursor(-(v.pageSize() - 1))
	case tcell.KeyPgDn:
		v.moveCursor(v.pageSize() - 1)
	case tcell.KeyHome:
		v.moveCursor(-len(v.lines))
		v.leftCol = 0
	case tcell.KeyEnd:
		v.moveCursor(len(v.lines))
	case tcell.KeyCtrlF:
		v.startFind()
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return true
		case 'k':
			v.moveCursor(-1)
		case 'j':
			v.moveCursor(1)
		case 'g':
			v.moveCursor(-len(v.lines))
		case 'G':
			v.moveCursor(len(v.lines))
		case '/':
			v.startFind()
		case 'n':
			v.stepFind(1)
		case 'N':
			v.stepFind(-1)
		case 'r':
			_ = v.screen.PostEvent(tcell.NewEventInterrupt(reloadEvent{}))
		}
	}
	return false
}

func (v *Viewer) moveCursor(delta int) {
	v.cursorLine = max(min(v.cursorLine+delta, len(v.lines)-1), 0)
	v.adjustScroll()
}

// ----------------- FIND MODE -----------------

func (v *Viewer) startFind() {
	v.mode = Find
	v.findBuf = ""
	v.findResults = nil
}

func (v *Viewer) handleFind(key *tcell.EventKey) {
	switch key.Key() {
	case tcell.KeyEsc:
		v.mode = Browse
		v.findBuf = ""
		v.findResults = nil
	case tcell.KeyEnter:
		v.mode = Browse
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(v.findBuf) > 0 {
			_, size := utf8.DecodeLastRuneInString(v.findBuf)
			v.findBuf = v.findBuf[:len(v.findBuf)-size]
			v.updateFindResults()
		}
	case tcell.KeyRune:
		v.findBuf += string(key.Rune())
		v.updateFindResults()
	case tcell.KeyDown:
		v.stepFind(1)
	case tcell.KeyUp:
		v.stepFind(-1)
	}
}

// Build the find results only when the search term changes
func (v *Viewer) updateFindResults() {
	v.findResults = nil
	v.findIndex = 0
	if v.findBuf == "" {
		return
	}
	for i, ln := range v.lines {
		if strings.Contains(ln.text, v.findBuf) {
			v.findResults = append(v.findResults, i)
		}
	}
	v.gotoFindResult()
}

func (v *Viewer) stepFind(delta int) {
	n := len(v.findResults)
	if n == 0 {
		return
	}
	v.findIndex = ((v.findIndex+delta)%n + n) % n
	v.gotoFindResult()
}

func (v *Viewer) gotoFindResult() {
	if len(v.findResults) == 0 {
		return
	}
	v.cursorLine = v.findResults[v.findIndex]
	v.adjustScroll()
}
