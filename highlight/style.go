package highlight

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Color is a highlight colour. Named W3C colours and "#rrggbb" strings can be
// turned into one with tcell.GetColor.
type Color = tcell.Color

type FontStyle uint8

const (
	FontBold FontStyle = 1 << iota
	FontItalic
	FontUnderline
	FontStrikeout

	FontRegular FontStyle = 0
)

func (f FontStyle) Has(flag FontStyle) bool {
	return f&flag != 0
}

func (f FontStyle) String() string {
	if f == FontRegular {
		return "regular"
	}
	var parts []string
	if f.Has(FontBold) {
		parts = append(parts, "bold")
	}
	if f.Has(FontItalic) {
		parts = append(parts, "italic")
	}
	if f.Has(FontUnderline) {
		parts = append(parts, "underline")
	}
	if f.Has(FontStrikeout) {
		parts = append(parts, "strikeout")
	}
	return strings.Join(parts, "|")
}

// ParseFontStyle accepts the names produced by FontStyle.String, joined by
// '|' or ','.
func ParseFontStyle(s string) (FontStyle, error) {
	var f FontStyle
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "regular", "":
		case "bold":
			f |= FontBold
		case "italic":
			f |= FontItalic
		case "underline":
			f |= FontUnderline
		case "strikeout", "strikethrough":
			f |= FontStrikeout
		default:
			return 0, fmt.Errorf("unknown font style %q", part)
		}
	}
	return f, nil
}

type FontSpec struct {
	Family string
	Size   float64
	Style  FontStyle
}

func (f FontSpec) WithStyle(style FontStyle) FontSpec {
	f.Style = style
	return f
}

// DefaultFont is the font a FontStyleEdit derives from when the edited rule
// has no font of its own.
var DefaultFont = FontSpec{Family: "Lucida Console", Size: 10}

// Appearance is a fully resolved visual treatment: every channel has a value.
type Appearance struct {
	Foreground Color
	Background Color
	Font       FontSpec
}

var DefaultAppearance = Appearance{
	Foreground: tcell.ColorBlack,
	Background: tcell.ColorWhite,
	Font:       DefaultFont,
}

// Style is an immutable set of optional channels. A disabled channel leaves
// whatever is already applied untouched; the zero Style is the identity.
type Style struct {
	fg      Color
	bg      Color
	font    FontSpec
	hasFg   bool
	hasBg   bool
	hasFont bool
}

func (s Style) WithForeground(c Color) Style {
	s.fg, s.hasFg = c, true
	return s
}

func (s Style) WithBackground(c Color) Style {
	s.bg, s.hasBg = c, true
	return s
}

func (s Style) WithFont(f FontSpec) Style {
	s.font, s.hasFont = f, true
	return s
}

// WithFontStyle keeps the family and size of the current font and replaces
// its flags. Without a font the family and size come from DefaultFont.
func (s Style) WithFontStyle(flags FontStyle) Style {
	return s.withFontStyle(flags, DefaultFont)
}

func (s Style) withFontStyle(flags FontStyle, fallback FontSpec) Style {
	base := fallback
	if s.hasFont {
		base = s.font
	}
	return s.WithFont(base.WithStyle(flags))
}

func (s Style) Foreground() (Color, bool) { return s.fg, s.hasFg }
func (s Style) Background() (Color, bool) { return s.bg, s.hasBg }
func (s Style) Font() (FontSpec, bool)    { return s.font, s.hasFont }

func (s Style) IsIdentity() bool {
	return !s.hasFg && !s.hasBg && !s.hasFont
}

// Resolve composes s onto the current appearance.
func (s Style) Resolve(current Appearance) Appearance {
	if s.hasFg {
		current.Foreground = s.fg
	}
	if s.hasBg {
		current.Background = s.bg
	}
	if s.hasFont {
		current.Font = s.font
	}
	return current
}

func (s Style) String() string {
	var parts []string
	if s.hasFg {
		parts = append(parts, "fg="+colorName(s.fg))
	}
	if s.hasBg {
		parts = append(parts, "bg="+colorName(s.bg))
	}
	if s.hasFont {
		parts = append(parts, fmt.Sprintf("font=%s/%g/%s", s.font.Family, s.font.Size, s.font.Style))
	}
	if len(parts) == 0 {
		return "inherit"
	}
	return strings.Join(parts, " ")
}

func colorName(c Color) string {
	if c == tcell.ColorDefault {
		return "default"
	}
	return fmt.Sprintf("#%06x", c.Hex())
}
