// Package rules is a small rule engine shared by all entity services: an
// ordered list of predicate+message pairs evaluated against a candidate
// record, plus a required-field check that names the whole field set.
package rules

import (
	"strings"

	"github.com/innovate-hub/registry/internal/shared"
)

// Rule pairs a failure predicate with the user-facing message raised when
// the predicate holds for the candidate.
type Rule[T any] struct {
	Fails   func(T) bool
	Message string
}

// Evaluate runs the rules in order and returns a ValidationError for the
// first one that fails. All-or-nothing: callers only mutate state after a
// nil result.
func Evaluate[T any](candidate T, ruleSet []Rule[T]) error {
	for _, r := range ruleSet {
		if r.Fails(candidate) {
			return shared.NewValidationError("%s", r.Message)
		}
	}
	return nil
}

// Field is one member of an entity's required-field set.
type Field struct {
	Name    string
	Missing bool
}

// Str builds a required Field from a string attribute. Whitespace-only
// values count as missing.
func Str(name, value string) Field {
	return Field{Name: name, Missing: strings.TrimSpace(value) == ""}
}

// ID builds a required Field from a foreign-key attribute.
func ID(name string, id uint) Field {
	return Field{Name: name, Missing: id == 0}
}

// Required fails when any field of the set is missing. The error names the
// complete required set, not just the missing members, matching the
// registry's established message format.
func Required(fields ...Field) error {
	missing := false
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
		if f.Missing {
			missing = true
		}
	}
	if !missing {
		return nil
	}
	if len(names) == 1 {
		return shared.NewValidationError("%s is required.", names[0])
	}
	return shared.NewValidationError("%s are required.", joinNames(names))
}

func joinNames(names []string) string {
	if len(names) == 2 {
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
}
