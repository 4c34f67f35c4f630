// Package blocklist rejects prompts that reference unlicensed names.
// Matching is substring-based over the lowercased prompt, so a blocked
// term inside a longer word is still rejected.
package blocklist

import (
	"errors"
	"strings"
)

var ErrPromptBlocked = errors.New("prompt_blocked")

// Filter holds an immutable set of lowercase blocked terms.
type Filter struct {
	terms []string
}

// NewFilter builds a filter from raw terms. Terms are trimmed and
// lowercased; empty entries are dropped.
func NewFilter(terms []string) *Filter {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		out = append(out, term)
	}
	return &Filter{terms: out}
}

// Check returns ErrPromptBlocked if any blocked term appears as a
// substring of the lowercased prompt.
func (f *Filter) Check(prompt string) error {
	if f == nil || len(f.terms) == 0 {
		return nil
	}
	lowered := strings.ToLower(prompt)
	for _, term := range f.terms {
		if strings.Contains(lowered, term) {
			return ErrPromptBlocked
		}
	}
	return nil
}

// Terms returns a copy of the active term set.
func (f *Filter) Terms() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.terms))
	copy(out, f.terms)
	return out
}
