package grammar

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"nxhl/highlight"
)

var (
	ErrUnknownGrammar = fmt.Errorf("unknown grammar (%w)", highlight.Err)
	ErrUnknownFormat  = fmt.Errorf("unknown grammar file format (%w)", highlight.Err)
	ErrBaseGrammar    = fmt.Errorf("grammar file base (%w)", highlight.Err)
)

// Factory builds a fresh rule set for one grammar.
type Factory func(opts ...Option) *highlight.RuleSet

type entry struct {
	factory    Factory
	aliases    []string
	extensions []string
}

var builtin = map[string]entry{
	"generic": {Generic, []string{"basic", "text"}, nil},
	"shell":   {Shell, []string{"sh", "bash"}, []string{".sh", ".bash", ".ksh", ".zsh"}},
	"cpp":     {Cpp, []string{"c", "c++"}, []string{".c", ".h", ".cpp", ".cc", ".cxx", ".hpp", ".hh"}},
	"python":  {Python, []string{"py"}, []string{".py", ".pyw"}},
	"csharp":  {CSharp, []string{"cs", "c#"}, []string{".cs"}},
}

// Names lists the built-in grammars, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the factory registered under name or one of its aliases.
func Lookup(name string) (Factory, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if e, ok := builtin[name]; ok {
		return e.factory, nil
	}
	for _, e := range builtin {
		if slices.Contains(e.aliases, name) {
			return e.factory, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownGrammar)
}

// Detect picks a grammar by file extension, falling back to "generic". A
// shebang is not looked at.
func Detect(filename string) string {
	if filename == "" || filename == "-" {
		return "generic"
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, name := range Names() {
		if slices.Contains(builtin[name].extensions, ext) {
			return name
		}
	}
	return "generic"
}
