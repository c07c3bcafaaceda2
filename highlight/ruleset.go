package highlight

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// RuleSet is an ordered collection of rules plus the recursion dependency
// graph between them. It is not safe for concurrent mutation; a RuleSet that
// is being highlighted must not be edited (Clone it first).
type RuleSet struct {
	keys        []string
	rules       map[string]Rule
	deps        map[string][]string
	defaultFont FontSpec
}

func NewRuleSet() *RuleSet {
	return &RuleSet{
		rules:       make(map[string]Rule),
		deps:        make(map[string][]string),
		defaultFont: DefaultFont,
	}
}

// SetDefaultFont sets the font FontStyleEdit derives from for rules that have
// no font of their own.
func (rs *RuleSet) SetDefaultFont(f FontSpec) {
	rs.defaultFont = f
}

func (rs *RuleSet) DefaultFont() FontSpec {
	return rs.defaultFont
}

func (rs *RuleSet) Len() int {
	return len(rs.keys)
}

// Keys returns the rule keys in insertion order.
func (rs *RuleSet) Keys() []string {
	return slices.Clone(rs.keys)
}

func (rs *RuleSet) Has(key string) bool {
	_, ok := rs.rules[key]
	return ok
}

func (rs *RuleSet) Rule(key string) (Rule, bool) {
	r, ok := rs.rules[key]
	return r, ok
}

// Dependencies returns the keys a match of key is re-scanned for, or nil for
// a leaf rule.
func (rs *RuleSet) Dependencies(key string) []string {
	return slices.Clone(rs.deps[key])
}

// Add registers a new rule. Dependencies may name rules that are added later;
// Validate checks the finished set.
func (rs *RuleSet) Add(key string, rule Rule, deps ...string) error {
	if _, ok := rs.rules[key]; ok {
		return fmt.Errorf("%q: %w", key, ErrDuplicateKey)
	}
	if slices.Contains(deps, key) {
		return fmt.Errorf("%q: %w", key, ErrSelfDependency)
	}

	rs.keys = append(rs.keys, key)
	rs.rules[key] = rule
	if len(deps) > 0 {
		rs.deps[key] = slices.Clone(deps)
	}
	return nil
}

// Set replaces an existing rule together with its dependency list.
func (rs *RuleSet) Set(key string, rule Rule, deps ...string) error {
	if _, ok := rs.rules[key]; !ok {
		return fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	if slices.Contains(deps, key) {
		return fmt.Errorf("%q: %w", key, ErrSelfDependency)
	}

	rs.rules[key] = rule
	if len(deps) > 0 {
		rs.deps[key] = slices.Clone(deps)
	} else {
		delete(rs.deps, key)
	}
	return nil
}

// Remove deletes a rule and its dependency list, and strips key from every
// other rule's dependency list so no dangling reference survives.
func (rs *RuleSet) Remove(key string) error {
	if _, ok := rs.rules[key]; !ok {
		return fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}

	delete(rs.rules, key)
	delete(rs.deps, key)
	rs.keys = slices.DeleteFunc(rs.keys, func(k string) bool { return k == key })

	for k, list := range rs.deps {
		if !slices.Contains(list, key) {
			continue
		}
		pruned := slices.DeleteFunc(slices.Clone(list), func(d string) bool { return d == key })
		if len(pruned) == 0 {
			delete(rs.deps, k)
		} else {
			rs.deps[k] = pruned
		}
	}
	return nil
}

// Edit applies edits, in order, to a single rule.
func (rs *RuleSet) Edit(key string, edits ...Edit) error {
	return rs.EditAll([]string{key}, edits...)
}

// EditAll applies every edit to every key. Either all edits succeed or the
// RuleSet is left untouched.
func (rs *RuleSet) EditAll(keys []string, edits ...Edit) error {
	for _, key := range keys {
		if _, ok := rs.rules[key]; !ok {
			return fmt.Errorf("%q: %w", key, ErrKeyNotFound)
		}
		for _, e := range edits {
			if de, ok := e.(DependenciesEdit); ok && slices.Contains(de.Keys, key) {
				return fmt.Errorf("%q: %w", key, ErrSelfDependency)
			}
		}
	}

	rules := make(map[string]Rule, len(keys))
	deps := make(map[string][]string, len(keys))
	for _, key := range keys {
		rule, ok := rules[key]
		if !ok {
			rule = rs.rules[key]
		}
		list, ok := deps[key]
		if !ok {
			list = rs.deps[key]
		}

		for _, e := range edits {
			if de, ok := e.(DependenciesEdit); ok {
				list = slices.Clone(de.Keys)
				continue
			}
			rule = e.applyRule(rule, rs.defaultFont)
		}

		rules[key] = rule
		deps[key] = list
	}

	for key, rule := range rules {
		rs.rules[key] = rule
		if len(deps[key]) > 0 {
			rs.deps[key] = deps[key]
		} else {
			delete(rs.deps, key)
		}
	}
	return nil
}

// CombinedPattern joins the patterns of the given rules (all rules when keys
// is empty) into one alternation. Rules without a pattern and unknown keys
// contribute nothing.
func (rs *RuleSet) CombinedPattern(keys ...string) string {
	if len(keys) == 0 {
		keys = rs.keys
	}

	var parts []string
	for _, key := range keys {
		rule, ok := rs.rules[key]
		if !ok || !rule.HasPattern() {
			continue
		}
		parts = append(parts, rule.pattern)
	}
	return strings.Join(parts, "|")
}

// Validate reports every dependency that names an unknown rule and every rule
// that lists itself.
func (rs *RuleSet) Validate() error {
	var errs []error
	for _, key := range rs.keys {
		for _, dep := range rs.deps[key] {
			switch {
			case dep == key:
				errs = append(errs, fmt.Errorf("%q: %w", key, ErrSelfDependency))
			case !rs.Has(dep):
				errs = append(errs, fmt.Errorf("%q -> %q: %w", key, dep, ErrDanglingDependency))
			}
		}
	}
	return errors.Join(errs...)
}

func (rs *RuleSet) Clone() *RuleSet {
	c := &RuleSet{
		keys:        slices.Clone(rs.keys),
		rules:       make(map[string]Rule, len(rs.rules)),
		deps:        make(map[string][]string, len(rs.deps)),
		defaultFont: rs.defaultFont,
	}
	for k, r := range rs.rules {
		c.rules[k] = r
	}
	for k, d := range rs.deps {
		c.deps[k] = slices.Clone(d)
	}
	return c
}

func (rs *RuleSet) String() string {
	var b strings.Builder
	for _, key := range rs.keys {
		rule := rs.rules[key]
		fmt.Fprintf(&b, "%-14s %s", key, rule.style)
		if deps := rs.deps[key]; len(deps) > 0 {
			fmt.Fprintf(&b, " -> [%s]", strings.Join(deps, ", "))
		}
		if !rule.HasPattern() {
			b.WriteString(" (no pattern)")
		}
		b.WriteString("\n")
	}
	return b.String()
}
