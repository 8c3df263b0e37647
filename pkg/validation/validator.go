// Package validation runs the structural checks a declaration tree can opt
// into before compilation: duplicate field names within a scope (warnings)
// and conditional predicates referencing fields absent from their scope
// (errors). Validation is side-effect-free and skippable; the compilers do
// not depend on it.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mike-north/formspec/pkg/formspec"
)

// Severity classifies an issue. Warnings never invalidate a result.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is a single finding with a scope-qualified path for diagnostics.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Path     string   `json:"path,omitempty"`
}

// Result captures a validation pass. Valid is false iff at least one
// error-severity issue was found.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Err collapses the error-severity issues into a single error, or returns
// nil when the result is valid. Callers wanting throw-on-error semantics
// check this; report-only callers read Issues directly.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	messages := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			messages = append(messages, issue.Message)
		}
	}
	if len(messages) == 0 {
		return nil
	}
	return errors.New(strings.Join(messages, "; "))
}

// Validate runs both structural checks over the tree. Name resolution is
// computed per scope in one pass, so a conditional placed before the field it
// tests still resolves.
func Validate(spec formspec.FormSpec) Result {
	resolution := formspec.Resolve(spec)
	result := Result{Valid: true}

	counts := resolution.NameCounts()
	reported := make(map[string]struct{})
	for _, site := range resolution.Fields {
		count := counts[site.Scope][site.Field.Name]
		if count < 2 {
			continue
		}
		key := site.Scope + "\x00" + site.Field.Name
		if _, done := reported[key]; done {
			continue
		}
		reported[key] = struct{}{}
		result.Issues = append(result.Issues, Issue{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("validation: field %q declared %d times in scope %s", site.Field.Name, count, site.Scope),
			Path:     site.Path,
		})
	}

	for _, site := range resolution.Predicates {
		if _, ok := counts[site.Scope][site.Predicate.Field]; ok {
			continue
		}
		result.Valid = false
		result.Issues = append(result.Issues, Issue{
			Severity: SeverityError,
			Message:  fmt.Sprintf("validation: conditional references unknown field %q in scope %s", site.Predicate.Field, site.Scope),
			Path:     site.Path,
		})
	}

	return result
}
