package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nxhl/grammar"
	"nxhl/highlight"
	"nxhl/theme"
)

var grammarExtensions = []string{".yaml", ".yml", ".toml", ".json"}

// ruleSet picks the rules for filename: --grammar-file first, then the
// grammar named by --grammar (built in, or a file in grammar_dirs), then the
// grammar detected from filename.
func (a *app) ruleSet(filename string) (*highlight.RuleSet, string, error) {
	var opts []grammar.Option
	if font := a.cfg.DefaultFont(); font != highlight.DefaultFont {
		opts = append(opts, grammar.WithFont(font))
	}

	if a.cfg.GrammarFile != "" {
		return grammar.LoadFile(a.cfg.GrammarFile, opts...)
	}

	name := a.cfg.Grammar
	if name == "" {
		name = grammar.Detect(filename)
	}

	factory, err := grammar.Lookup(name)
	if err == nil {
		return factory(opts...), name, nil
	}
	if !errors.Is(err, grammar.ErrUnknownGrammar) {
		return nil, "", err
	}

	for _, dir := range a.cfg.GrammarDirs {
		for _, ext := range grammarExtensions {
			path := filepath.Join(dir, name+ext)
			if _, statErr := os.Stat(path); statErr != nil {
				continue
			}
			a.logger.Debug("loading grammar file", zap.String("path", path))
			return grammar.LoadFile(path, opts...)
		}
	}
	return nil, "", err
}

// highlighter builds the highlighter for filename and returns it with the
// grammar's name. A theme replaces the configured base appearance.
func (a *app) highlighter(filename string) (*highlight.Highlighter, string, error) {
	rs, name, err := a.ruleSet(filename)
	if err != nil {
		return nil, "", err
	}

	opts, err := a.cfg.HighlighterOptions(a.logger)
	if err != nil {
		return nil, "", err
	}

	if a.cfg.Theme != "" {
		base, err := a.cfg.Appearance()
		if err != nil {
			return nil, "", err
		}
		rs, base, err = theme.Apply(rs, a.cfg.Theme, base)
		if err != nil {
			return nil, "", err
		}
		opts = append(opts, highlight.WithDefaults(base))
	}

	a.logger.Debug("highlighter ready",
		zap.String("grammar", name), zap.Int("rules", rs.Len()), zap.String("theme", a.cfg.Theme))
	return highlight.New(rs, opts...), name, nil
}

// readInput reads the file named by args, or stdin when there is none or it
// is "-". The returned name is "-" for stdin.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "-", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return string(data), args[0], nil
}

// output returns where a command writes: the -o file when given, otherwise
// the command's stdout. close must be called when done.
func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
