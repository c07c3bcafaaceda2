// Package config holds nxhl's user configuration as read through viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"nxhl/highlight"
)

type FontConfig struct {
	Family string  `mapstructure:"family"`
	Size   float64 `mapstructure:"size"`
}

// ColorsConfig is the appearance unstyled text gets. "default" leaves the
// terminal's own colours alone.
type ColorsConfig struct {
	Foreground string `mapstructure:"foreground"`
	Background string `mapstructure:"background"`
}

type Config struct {
	Grammar         string        `mapstructure:"grammar"`      // built-in grammar name; empty detects by file name
	GrammarFile     string        `mapstructure:"grammar_file"` // grammar definition file, wins over Grammar
	Theme           string        `mapstructure:"theme"`        // chroma style name; empty keeps grammar colours
	CaseInsensitive bool          `mapstructure:"case_insensitive"`
	MaxDepth        int           `mapstructure:"max_depth"`
	MatchTimeout    time.Duration `mapstructure:"match_timeout"`
	Debug           bool          `mapstructure:"debug"`
	LogFile         string        `mapstructure:"log_file"`
	Font            FontConfig    `mapstructure:"font"`
	Colors          ColorsConfig  `mapstructure:"colors"`
	GrammarDirs     []string      `mapstructure:"grammar_dirs"` // searched for <name>.yaml, .yml, .toml, .json
}

func Defaults() Config {
	return Config{
		MaxDepth:     highlight.DefaultMaxDepth,
		MatchTimeout: 2 * time.Second,
		Font: FontConfig{
			Family: highlight.DefaultFont.Family,
			Size:   highlight.DefaultFont.Size,
		},
		Colors: ColorsConfig{
			Foreground: "default",
			Background: "default",
		},
	}
}

// SetDefaults registers Defaults with v so unset keys unmarshal to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("grammar", d.Grammar)
	v.SetDefault("grammar_file", d.GrammarFile)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("case_insensitive", d.CaseInsensitive)
	v.SetDefault("max_depth", d.MaxDepth)
	v.SetDefault("match_timeout", d.MatchTimeout)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("font.family", d.Font.Family)
	v.SetDefault("font.size", d.Font.Size)
	v.SetDefault("colors.foreground", d.Colors.Foreground)
	v.SetDefault("colors.background", d.Colors.Background)
	v.SetDefault("grammar_dirs", d.GrammarDirs)
}

// Load unmarshals v and checks the result.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.MatchTimeout < 0 {
		return fmt.Errorf("match_timeout must not be negative, got %s", c.MatchTimeout)
	}
	if c.Font.Size < 0 {
		return fmt.Errorf("font.size must not be negative, got %g", c.Font.Size)
	}
	if _, err := c.Appearance(); err != nil {
		return err
	}
	return nil
}

// DefaultFont is the configured font with regular style.
func (c Config) DefaultFont() highlight.FontSpec {
	f := highlight.DefaultFont
	if c.Font.Family != "" {
		f.Family = c.Font.Family
	}
	if c.Font.Size > 0 {
		f.Size = c.Font.Size
	}
	return f
}

// Appearance is what unstyled text is drawn with.
func (c Config) Appearance() (highlight.Appearance, error) {
	fg, err := parseColor(c.Colors.Foreground)
	if err != nil {
		return highlight.Appearance{}, fmt.Errorf("colors.foreground: %w", err)
	}
	bg, err := parseColor(c.Colors.Background)
	if err != nil {
		return highlight.Appearance{}, fmt.Errorf("colors.background: %w", err)
	}
	return highlight.Appearance{Foreground: fg, Background: bg, Font: c.DefaultFont()}, nil
}

func parseColor(s string) (highlight.Color, error) {
	if s == "" {
		s = "default"
	}
	return highlight.ParseColor(s)
}

// HighlighterOptions turns the engine settings into highlight options.
func (c Config) HighlighterOptions(logger *zap.Logger) ([]highlight.Option, error) {
	base, err := c.Appearance()
	if err != nil {
		return nil, err
	}
	return []highlight.Option{
		highlight.WithDefaults(base),
		highlight.WithCaseInsensitive(c.CaseInsensitive),
		highlight.WithMaxDepth(c.MaxDepth),
		highlight.WithMatchTimeout(c.MatchTimeout),
		highlight.WithLogger(logger),
	}, nil
}
