// Package theme recolours rule sets with chroma styles.
package theme

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"nxhl/highlight"
)

var ErrUnknownTheme = fmt.Errorf("unknown theme (%w)", highlight.Err)

// tokenTypes maps the rule keys of the built-in grammars to the chroma token
// whose style they take.
var tokenTypes = map[string]chroma.TokenType{
	"dquote":       chroma.LiteralStringDouble,
	"squote":       chroma.LiteralStringSingle,
	"char":         chroma.LiteralStringChar,
	"tripledquote": chroma.LiteralStringDoc,
	"triplesquote": chroma.LiteralStringDoc,
	"backtick":     chroma.LiteralStringBacktick,
	"comment":      chroma.CommentSingle,
	"mcomment":     chroma.CommentMultiline,
	"preprocess":   chroma.CommentPreproc,
	"decorator":    chroma.NameDecorator,
	"keyword":      chroma.Keyword,
	"command":      chroma.NameBuiltin,
	"datatype":     chroma.KeywordType,
	"class":        chroma.NameClass,
	"value":        chroma.LiteralNumber,
	"values":       chroma.KeywordConstant,
	"var":          chroma.NameVariable,
	"refvar":       chroma.NameVariable,
	"varblock":     chroma.LiteralStringInterpol,
	"varblock_end": chroma.NameVariable,
	"option":       chroma.NameAttribute,
	"test":         chroma.Operator,
}

// TokenType returns the chroma token a rule key is styled as. Keys of user
// grammars are guessed from their name.
func TokenType(key string) (chroma.TokenType, bool) {
	if tt, ok := tokenTypes[key]; ok {
		return tt, true
	}

	k := strings.ToLower(key)
	switch {
	case strings.Contains(k, "comment"):
		return chroma.Comment, true
	case strings.Contains(k, "string"), strings.Contains(k, "quote"):
		return chroma.LiteralString, true
	case strings.Contains(k, "keyword"):
		return chroma.Keyword, true
	case strings.Contains(k, "number"):
		return chroma.LiteralNumber, true
	case strings.Contains(k, "var"):
		return chroma.NameVariable, true
	}
	return chroma.Text, false
}

func Names() []string {
	return styles.Names()
}

func Get(name string) (*chroma.Style, error) {
	s, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownTheme)
	}
	return s, nil
}

// Apply returns a recoloured copy of rs together with the appearance the
// theme gives unstyled text; rs itself is not touched. Rules that carry a
// background to mark a region, and get none from the theme, are given a tint
// of the theme background instead.
func Apply(rs *highlight.RuleSet, name string, base highlight.Appearance) (*highlight.RuleSet, highlight.Appearance, error) {
	style, err := Get(name)
	if err != nil {
		return nil, base, err
	}

	bg := style.Get(chroma.Background)
	if bg.Colour.IsSet() {
		base.Foreground = color(bg.Colour)
	}
	if bg.Background.IsSet() {
		base.Background = color(bg.Background)
	}

	out := rs.Clone()
	for _, key := range out.Keys() {
		tt, ok := TokenType(key)
		if !ok {
			continue
		}
		rule, _ := out.Rule(key)
		entry := style.Get(tt)

		var edits []highlight.Edit
		if entry.Colour.IsSet() {
			edits = append(edits, highlight.ForegroundEdit{Color: color(entry.Colour)})
		}

		_, hasBg := rule.Style().Background()
		switch {
		case entry.Background.IsSet() && entry.Background != bg.Background:
			edits = append(edits, highlight.BackgroundEdit{Color: color(entry.Background)})
		case hasBg:
			if c, ok := tint(base.Background, base.Foreground); ok {
				edits = append(edits, highlight.BackgroundEdit{Color: c})
			}
		}

		flags := fontStyle(entry)
		if _, hasFont := rule.Style().Font(); hasFont || flags != highlight.FontRegular {
			edits = append(edits, highlight.FontStyleEdit{Style: flags})
		}

		if err := out.Edit(key, edits...); err != nil {
			return nil, base, err
		}
	}
	return out, base, nil
}

func color(c chroma.Colour) highlight.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}

func fontStyle(e chroma.StyleEntry) highlight.FontStyle {
	var f highlight.FontStyle
	if e.Bold == chroma.Yes {
		f |= highlight.FontBold
	}
	if e.Italic == chroma.Yes {
		f |= highlight.FontItalic
	}
	if e.Underline == chroma.Yes {
		f |= highlight.FontUnderline
	}
	return f
}

// tint moves bg a little towards fg.
func tint(bg, fg highlight.Color) (highlight.Color, bool) {
	b, ok := toColorful(bg)
	if !ok {
		return bg, false
	}
	f, ok := toColorful(fg)
	if !ok {
		return bg, false
	}
	r, g, bl := b.BlendLab(f, 0.12).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl)), true
}

func toColorful(c highlight.Color) (colorful.Color, bool) {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}
