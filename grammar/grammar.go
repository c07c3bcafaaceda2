// Package grammar holds the built-in rule sets. Every grammar is a factory
// returning a fresh *highlight.RuleSet, so callers are free to edit the result.
package grammar

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"

	"nxhl/highlight"
)

// Options tune a built-in grammar. Empty word lists keep the grammar's own.
type Options struct {
	Keywords []string
	Commands []string
	Font     highlight.FontSpec
}

type Option func(*Options)

// WithKeywords replaces the words matched by the "keyword" rule.
func WithKeywords(words ...string) Option {
	return func(o *Options) { o.Keywords = slices.Clone(words) }
}

// WithCommands replaces the words matched by the "command" rule.
func WithCommands(words ...string) Option {
	return func(o *Options) { o.Commands = slices.Clone(words) }
}

// WithFont sets the font that rule fonts derive their family and size from.
func WithFont(f highlight.FontSpec) Option {
	return func(o *Options) { o.Font = f }
}

func newOptions(keywords, commands []string, font highlight.FontSpec, opts []Option) Options {
	o := Options{Font: font}
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.Keywords) == 0 {
		o.Keywords = keywords
	}
	if len(o.Commands) == 0 {
		o.Commands = commands
	}
	return o
}

// stringRed is the #E60000 most grammars use for string literals.
var stringRed = tcell.NewHexColor(0xE60000)

type builder struct {
	rs   *highlight.RuleSet
	font highlight.FontSpec
	err  error
}

func newBuilder(font highlight.FontSpec) *builder {
	rs := highlight.NewRuleSet()
	rs.SetDefaultFont(font)
	return &builder{rs: rs, font: font}
}

func (b *builder) add(key, pattern string, style highlight.Style, deps ...string) {
	if b.err != nil {
		return
	}
	if err := b.rs.Add(key, highlight.NewRule(pattern, style), deps...); err != nil {
		b.err = fmt.Errorf("grammar rule %s: %w", key, err)
	}
}

func (b *builder) fg(c highlight.Color) highlight.Style {
	return highlight.Style{}.WithForeground(c)
}

func (b *builder) bg(c highlight.Color) highlight.Style {
	return highlight.Style{}.WithBackground(c)
}

// fgFont is a foreground plus the grammar font with flags.
func (b *builder) fgFont(c highlight.Color, flags highlight.FontStyle) highlight.Style {
	return b.fg(c).WithFont(b.font.WithStyle(flags))
}

// build returns the finished set. The rules of built-in grammars are fixed,
// so a failure here is a bug in this package.
func (b *builder) build() *highlight.RuleSet {
	if b.err != nil {
		panic(b.err)
	}
	return b.rs
}
