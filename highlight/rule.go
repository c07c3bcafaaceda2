package highlight

// Rule pairs a pattern with a Style. A rule with an empty pattern never
// matches on its own; it only styles a named group captured by another rule's
// pattern (or acts as a pure recursion target).
type Rule struct {
	pattern string
	style   Style
}

// NewRule is the only construction path. The pattern must name a group after
// the key the rule is registered under, e.g. `(?<comment>#.*)`.
func NewRule(pattern string, style Style) Rule {
	return Rule{pattern: pattern, style: style}
}

func (r Rule) Pattern() string { return r.pattern }
func (r Rule) Style() Style    { return r.style }

func (r Rule) HasPattern() bool {
	return r.pattern != ""
}

// Resolve composes the rule's style onto the current appearance.
func (r Rule) Resolve(current Appearance) Appearance {
	return r.style.Resolve(current)
}

// WithEdit returns a copy of r with one attribute changed. DependenciesEdit
// concerns the owning RuleSet and leaves the rule as is.
func (r Rule) WithEdit(e Edit) Rule {
	return e.applyRule(r, DefaultFont)
}

// Edit is one of PatternEdit, ForegroundEdit, BackgroundEdit, FontEdit,
// FontStyleEdit or DependenciesEdit.
type Edit interface {
	applyRule(r Rule, fallbackFont FontSpec) Rule
}

type PatternEdit struct {
	Pattern string
}

type ForegroundEdit struct {
	Color Color
}

type BackgroundEdit struct {
	Color Color
}

type FontEdit struct {
	Font FontSpec
}

// FontStyleEdit replaces the font flags of a rule, keeping its family and
// size. A rule without a font gets the fallback font of whoever applies it.
type FontStyleEdit struct {
	Style FontStyle
}

// DependenciesEdit replaces a key's dependency list; an empty list removes it.
type DependenciesEdit struct {
	Keys []string
}

func (e PatternEdit) applyRule(r Rule, _ FontSpec) Rule {
	r.pattern = e.Pattern
	return r
}

func (e ForegroundEdit) applyRule(r Rule, _ FontSpec) Rule {
	r.style = r.style.WithForeground(e.Color)
	return r
}

func (e BackgroundEdit) applyRule(r Rule, _ FontSpec) Rule {
	r.style = r.style.WithBackground(e.Color)
	return r
}

func (e FontEdit) applyRule(r Rule, _ FontSpec) Rule {
	r.style = r.style.WithFont(e.Font)
	return r
}

func (e FontStyleEdit) applyRule(r Rule, fallback FontSpec) Rule {
	r.style = r.style.withFontStyle(e.Style, fallback)
	return r
}

func (e DependenciesEdit) applyRule(r Rule, _ FontSpec) Rule {
	return r
}
