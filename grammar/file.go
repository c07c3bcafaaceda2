package grammar

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"nxhl/highlight"
)

// File is a grammar definition on disk. Rules are applied in order on top
// of Base (an empty set when Base is empty): a rule whose key already exists
// replaces it, any other is appended. Remove is applied after the rules.
//
//	name: make
//	base: shell
//	rules:
//	  - key: target
//	    pattern: '^(?<target>[\w.-]+)(?=:)'
//	    foreground: darkblue
//	    font: {style: bold}
//	remove: [backtick]
type File struct {
	Name   string                 `json:"name" yaml:"name" toml:"name"`
	Base   string                 `json:"base,omitempty" yaml:"base,omitempty" toml:"base,omitempty"`
	Font   *highlight.FontConfig  `json:"font,omitempty" yaml:"font,omitempty" toml:"font,omitempty"`
	Rules  []highlight.RuleConfig `json:"rules" yaml:"rules" toml:"rules"`
	Remove []string               `json:"remove,omitempty" yaml:"remove,omitempty" toml:"remove,omitempty"`
}

type format struct {
	unmarshal func([]byte, any) error
}

var formatByExtension = map[string]format{
	"json": {unmarshal: json.Unmarshal},
	"toml": {unmarshal: toml.Unmarshal},
	"yaml": {unmarshal: yaml.Unmarshal},
	"yml":  {unmarshal: yaml.Unmarshal},
}

func getFormat(name string) (*format, error) {
	f, found := formatByExtension[strings.TrimPrefix(strings.ToLower(name), ".")]
	if !found {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}
	return &f, nil
}

// Parse decodes a grammar definition. ext is a file extension or format
// name: json, toml, yaml or yml.
func Parse(data []byte, ext string) (*File, error) {
	f, err := getFormat(ext)
	if err != nil {
		return nil, err
	}

	var file File
	if err := f.unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding grammar: %w", err)
	}
	return &file, nil
}

// LoadFile reads, builds and validates the grammar at path. A file without
// a name is named after its base name. opts reach the base grammar, and a
// WithFont option is overridden by the file's own font block.
func LoadFile(path string, opts ...Option) (*highlight.RuleSet, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	file, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	rs, err := file.RuleSet(opts...)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return rs, file.Name, nil
}

// RuleSet builds the rule set the file describes and validates it. The
// file's font is fixed before the base is built so that base rules derive
// their fonts from it.
func (f *File) RuleSet(opts ...Option) (*highlight.RuleSet, error) {
	var factory Factory
	font := newOptions(nil, nil, highlight.DefaultFont, opts).Font
	if f.Base != "" {
		var err error
		if factory, err = Lookup(f.Base); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBaseGrammar, err)
		}
		if f.Font != nil {
			font = factory(opts...).DefaultFont()
		}
	}

	if f.Font != nil {
		if f.Font.Family != "" {
			font.Family = f.Font.Family
		}
		if f.Font.Size > 0 {
			font.Size = f.Font.Size
		}
		style, err := highlight.ParseFontStyle(f.Font.Style)
		if err != nil {
			return nil, fmt.Errorf("font: %w", err)
		}
		font = font.WithStyle(style)
		opts = append(slices.Clip(opts), WithFont(font))
	}

	var rs *highlight.RuleSet
	if factory != nil {
		rs = factory(opts...)
	} else {
		rs = highlight.NewRuleSet()
		rs.SetDefaultFont(font)
	}

	for i, rc := range f.Rules {
		if rc.Key == "" {
			return nil, fmt.Errorf("rule %d: missing key", i)
		}
		if !rs.Has(rc.Key) {
			if err := rs.AddConfig(rc); err != nil {
				return nil, err
			}
			continue
		}
		rule, err := rc.Rule(rs.DefaultFont())
		if err != nil {
			return nil, err
		}
		if err := rs.Set(rc.Key, rule, rc.Dependencies...); err != nil {
			return nil, err
		}
	}

	for _, key := range f.Remove {
		if err := rs.Remove(key); err != nil {
			return nil, fmt.Errorf("remove: %w", err)
		}
	}

	if err := rs.Validate(); err != nil {
		return nil, errors.Join(fmt.Errorf("grammar %q is invalid", f.Name), err)
	}
	return rs, nil
}
