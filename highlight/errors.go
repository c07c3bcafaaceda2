package highlight

import "fmt"

var (
	// Base error; every error in this package wraps it
	Err = fmt.Errorf("highlight error")

	// Rule set errors
	ErrDuplicateKey       = fmt.Errorf("duplicate rule key (%w)", Err)
	ErrKeyNotFound        = fmt.Errorf("rule key not found (%w)", Err)
	ErrSelfDependency     = fmt.Errorf("rule depends on itself (%w)", Err)
	ErrDanglingDependency = fmt.Errorf("dependency references unknown rule (%w)", Err)

	// Matching errors
	ErrPattern        = fmt.Errorf("invalid pattern (%w)", Err)
	ErrRecursionLimit = fmt.Errorf("recursion depth exceeded (%w)", Err)
)

// PatternError reports a pattern that the regex engine refused. Key is empty
// when every rule compiles on its own and only the combined alternation fails.
type PatternError struct {
	Key     string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("combined pattern: %v (%v)", e.Err, ErrPattern)
	}
	return fmt.Sprintf("rule %q: %v (%v)", e.Key, e.Err, ErrPattern)
}

func (e *PatternError) Unwrap() []error {
	return []error{ErrPattern, e.Err}
}
