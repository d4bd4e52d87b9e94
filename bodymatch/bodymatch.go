// Package bodymatch selects which chart placements take part in aspect
// detection via name glob rules.
package bodymatch

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Rules holds the body selection configuration. An empty include list
// means every body is included.
type Rules struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// Matcher matches body names against selection rules.
type Matcher struct {
	rules Rules
}

// DefaultRules includes every body and drops house-cusp rows, which
// carry longitudes but are not aspect-forming bodies.
func DefaultRules() Rules {
	return Rules{
		Include: []string{"*"},
		Exclude: []string{"*cusp*"},
	}
}

// LoadRules loads body rules from a YAML file.
func LoadRules(path string) (*Matcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bodies file: %w", err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing bodies file: %w", err)
	}

	return NewMatcher(rules), nil
}

// NewMatcher creates a matcher from a rule set.
func NewMatcher(rules Rules) *Matcher {
	return &Matcher{rules: rules}
}

// Rules returns the matcher's rule set.
func (m *Matcher) Rules() Rules {
	return m.rules
}

// Match reports whether a body participates in detection: the name must
// match an include pattern (if any are set) and no exclude pattern.
// Matching is case-insensitive.
func (m *Matcher) Match(name string) bool {
	lower := strings.ToLower(name)

	if len(m.rules.Include) > 0 && !matchAny(m.rules.Include, lower) {
		return false
	}
	return !matchAny(m.rules.Exclude, lower)
}

// MatchNames returns the names that participate, preserving order.
func (m *Matcher) MatchNames(names []string) []string {
	var matched []string
	for _, name := range names {
		if m.Match(name) {
			matched = append(matched, name)
		}
	}
	return matched
}

func matchAny(patterns []string, lower string) bool {
	for _, pattern := range patterns {
		match, err := doublestar.Match(strings.ToLower(pattern), lower)
		if err != nil {
			continue
		}
		if match {
			return true
		}
	}
	return false
}
