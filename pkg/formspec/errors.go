package formspec

import "fmt"

// ConfigurationError reports a malformed element declaration detected while
// the tree is being constructed. Callers distinguish it from other failures
// with errors.As.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "formspec: " + e.Reason
	}
	return fmt.Sprintf("formspec: field %q: %s", e.Field, e.Reason)
}

func configErr(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
