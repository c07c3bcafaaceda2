package highlight

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const DefaultMaxDepth = 64

// Highlighter runs a RuleSet over text. The RuleSet is read, never written,
// so any number of goroutines may call Highlight at once as long as nobody
// edits the RuleSet meanwhile.
type Highlighter struct {
	rules        *RuleSet
	defaults     Appearance
	options      regexp2.RegexOptions
	maxDepth     int
	matchTimeout time.Duration
	patterns     *cache.Cache
	logger       *zap.Logger

	mu          sync.Mutex
	compiledFor string
}

type Option func(*Highlighter)

// WithDefaults sets the appearance top-level spans are composed onto.
func WithDefaults(a Appearance) Option {
	return func(h *Highlighter) { h.defaults = a }
}

func WithCaseInsensitive(enabled bool) Option {
	return func(h *Highlighter) {
		if enabled {
			h.options |= regexp2.IgnoreCase
		} else {
			h.options &^= regexp2.IgnoreCase
		}
	}
}

// WithMaxDepth bounds recursion through the dependency graph.
func WithMaxDepth(n int) Option {
	return func(h *Highlighter) { h.maxDepth = n }
}

// WithMatchTimeout bounds the time spent in a single regex search.
func WithMatchTimeout(d time.Duration) Option {
	return func(h *Highlighter) { h.matchTimeout = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(h *Highlighter) { h.logger = l }
}

func New(rules *RuleSet, opts ...Option) *Highlighter {
	h := &Highlighter{
		rules:    rules,
		defaults: DefaultAppearance,
		options:  regexp2.Multiline,
		maxDepth: DefaultMaxDepth,
		patterns: cache.New(cache.NoExpiration, 0),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Highlighter) Rules() *RuleSet       { return h.rules }
func (h *Highlighter) Defaults() Appearance { return h.defaults }

// Highlight is a convenience for New(rules).Highlight without cancellation.
func Highlight(text string, rules *RuleSet) ([]Span, error) {
	return New(rules).Highlight(context.Background(), text)
}

// Highlight returns the spans for text in emission order: match order, with
// the spans found inside a match following it depth first. Applying them in
// that order lets nested spans override their parents. On error no spans are
// returned.
func (h *Highlighter) Highlight(ctx context.Context, text string) ([]Span, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := h.compileRules(); err != nil {
		return nil, err
	}

	s := &scan{h: h, ctx: ctx}
	if err := s.run(text, "", 0, 0, h.defaults); err != nil {
		return nil, err
	}

	h.logger.Debug("highlighted",
		zap.Int("bytes", len(text)),
		zap.Int("spans", len(s.spans)))
	return s.spans, nil
}

// compileRules compiles each rule on its own so a bad pattern is reported
// against its key rather than against the combined alternation. The pattern
// cache is flushed whenever the rule set's patterns or dependencies have
// changed since the last call.
func (h *Highlighter) compileRules() error {
	fp := h.fingerprint()
	h.mu.Lock()
	if fp != h.compiledFor {
		if h.compiledFor != "" {
			h.logger.Debug("rule set changed, flushing compiled patterns",
				zap.Int("patterns", h.patterns.ItemCount()))
		}
		h.patterns.Flush()
		h.compiledFor = fp
	}
	h.mu.Unlock()

	for _, key := range h.rules.keys {
		rule := h.rules.rules[key]
		if !rule.HasPattern() {
			continue
		}
		if _, err := h.compile(key, rule.pattern); err != nil {
			return err
		}
	}
	return nil
}

func (h *Highlighter) fingerprint() string {
	var b strings.Builder
	for _, key := range h.rules.keys {
		b.WriteString(key)
		b.WriteByte(0)
		b.WriteString(h.rules.rules[key].pattern)
		b.WriteByte(0)
		b.WriteString(strings.Join(h.rules.deps[key], ","))
		b.WriteByte(0)
	}
	return b.String()
}

func (h *Highlighter) compile(key, pattern string) (*regexp2.Regexp, error) {
	if v, ok := h.patterns.Get(pattern); ok {
		return v.(*regexp2.Regexp), nil
	}

	re, err := regexp2.Compile(pattern, h.options)
	if err != nil {
		return nil, &PatternError{Key: key, Pattern: pattern, Err: err}
	}
	if h.matchTimeout > 0 {
		re.MatchTimeout = h.matchTimeout
	}

	h.patterns.SetDefault(pattern, re)
	h.logger.Debug("compiled pattern", zap.String("key", key), zap.Int("length", len(pattern)))
	return re, nil
}

type scan struct {
	h     *Highlighter
	ctx   context.Context
	spans []Span
}

type emitted struct {
	start, end int
	appearance Appearance
}

// run scans text for the dependencies of group (every rule when group is
// empty). base is the absolute offset of text in the original input and
// parent the appearance active over all of text.
func (s *scan) run(text, group string, base, depth int, parent Appearance) error {
	if depth > s.h.maxDepth {
		return fmt.Errorf("%q at offset %d: %w", group, base, ErrRecursionLimit)
	}

	var keys []string
	if group != "" {
		keys = s.known(group)
		if len(keys) == 0 {
			return nil
		}
	}

	pattern := s.h.rules.CombinedPattern(keys...)
	if pattern == "" {
		return nil
	}
	re, err := s.h.compile("", pattern)
	if err != nil {
		return err
	}

	runes := []rune(text)
	offsets := byteOffsets(text)

	m, err := re.FindRunesMatch(runes)
	for {
		if err != nil {
			return fmt.Errorf("matching %q: %w", group, err)
		}
		if m == nil {
			return nil
		}
		if cerr := s.ctx.Err(); cerr != nil {
			return cerr
		}
		if merr := s.match(m, text, offsets, base, depth, parent); merr != nil {
			return merr
		}
		m, err = re.FindNextMatch(m)
	}
}

// known returns the dependencies of group that name existing rules.
func (s *scan) known(group string) []string {
	deps := s.h.rules.deps[group]
	keys := make([]string, 0, len(deps))
	for _, dep := range deps {
		if !s.h.rules.Has(dep) {
			s.h.logger.Debug("skipping unknown dependency", zap.String("group", group), zap.String("dependency", dep))
			continue
		}
		keys = append(keys, dep)
	}
	return keys
}

// match emits a span for every rule whose group took part in m. Nested
// groups of one alternation branch (a ${VAR} block and the VAR reference in
// it) each get their own span.
func (s *scan) match(m *regexp2.Match, text string, offsets []int, base, depth int, parent Appearance) error {
	var done []emitted

	for _, key := range s.h.rules.keys {
		g := m.GroupByName(key)
		if g == nil || len(g.Captures) == 0 {
			continue
		}

		start, end := offsets[g.Index], offsets[g.Index+g.Length]

		current := parent
		for i := len(done) - 1; i >= 0; i-- {
			if done[i].start <= start && end <= done[i].end {
				current = done[i].appearance
				break
			}
		}

		rule := s.h.rules.rules[key]
		resolved := rule.Resolve(current)
		s.spans = append(s.spans, Span{
			Key:      key,
			Start:    base + start,
			Length:   end - start,
			Depth:    depth,
			Style:    rule.style,
			Resolved: resolved,
		})
		done = append(done, emitted{start: start, end: end, appearance: resolved})

		if len(s.h.rules.deps[key]) == 0 {
			continue
		}
		if err := s.run(text[start:end], key, base+start, depth+1, resolved); err != nil {
			return err
		}
	}
	return nil
}

// byteOffsets maps rune indexes of text to byte offsets, with one extra entry
// for the end of text.
func byteOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	return append(offsets, len(text))
}
