package highlight

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// RuleConfig is the declarative form of a rule, as read from grammar files.
// Unset fields leave the corresponding style channel disabled.
type RuleConfig struct {
	Key          string      `json:"key" yaml:"key" toml:"key" mapstructure:"key"`
	Pattern      string      `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty" mapstructure:"pattern"`
	Foreground   string      `json:"foreground,omitempty" yaml:"foreground,omitempty" toml:"foreground,omitempty" mapstructure:"foreground"`
	Background   string      `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty" mapstructure:"background"`
	Font         *FontConfig `json:"font,omitempty" yaml:"font,omitempty" toml:"font,omitempty" mapstructure:"font"`
	Dependencies []string    `json:"dependencies,omitempty" yaml:"dependencies,omitempty" toml:"dependencies,omitempty" mapstructure:"dependencies"`
}

// FontConfig describes a font; an empty family or zero size is taken from the
// fallback font when the config is turned into a rule.
type FontConfig struct {
	Family string  `json:"family,omitempty" yaml:"family,omitempty" toml:"family,omitempty" mapstructure:"family"`
	Size   float64 `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty" mapstructure:"size"`
	Style  string  `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty" mapstructure:"style"`
}

// ParseColor accepts W3C colour names and "#rrggbb".
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault && name != "default" {
		return c, fmt.Errorf("unknown colour %q", s)
	}
	return c, nil
}

// Rule builds the rule described by c.
func (c RuleConfig) Rule(fallbackFont FontSpec) (Rule, error) {
	var style Style

	if c.Foreground != "" {
		fg, err := ParseColor(c.Foreground)
		if err != nil {
			return Rule{}, fmt.Errorf("%s: foreground: %w", c.Key, err)
		}
		style = style.WithForeground(fg)
	}

	if c.Background != "" {
		bg, err := ParseColor(c.Background)
		if err != nil {
			return Rule{}, fmt.Errorf("%s: background: %w", c.Key, err)
		}
		style = style.WithBackground(bg)
	}

	if c.Font != nil {
		font := fallbackFont
		if c.Font.Family != "" {
			font.Family = c.Font.Family
		}
		if c.Font.Size > 0 {
			font.Size = c.Font.Size
		}
		fs, err := ParseFontStyle(c.Font.Style)
		if err != nil {
			return Rule{}, fmt.Errorf("%s: font: %w", c.Key, err)
		}
		style = style.WithFont(font.WithStyle(fs))
	}

	return NewRule(c.Pattern, style), nil
}

// AddConfig adds the rule described by c under c.Key.
func (rs *RuleSet) AddConfig(c RuleConfig) error {
	rule, err := c.Rule(rs.defaultFont)
	if err != nil {
		return err
	}
	return rs.Add(c.Key, rule, c.Dependencies...)
}
