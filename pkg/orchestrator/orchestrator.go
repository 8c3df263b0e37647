package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/mike-north/formspec/internal/labels"
	"github.com/mike-north/formspec/pkg/formspec"
	"github.com/mike-north/formspec/pkg/jsonschema"
	"github.com/mike-north/formspec/pkg/uischema"
	"github.com/mike-north/formspec/pkg/validation"
)

// ValidationMode selects how Generate treats structural issues.
type ValidationMode int

const (
	// ModeReport runs the validator and returns its issues without failing
	// generation. This is the default.
	ModeReport ValidationMode = iota
	// ModeStrict aborts generation when any error-severity issue is found.
	ModeStrict
	// ModeSkip bypasses the validator entirely.
	ModeSkip
)

// ErrValidationFailed marks a strict-mode abort. Unwrap with errors.Is.
var ErrValidationFailed = errors.New("orchestrator: validation failed")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithValidationMode overrides the default report-only validation mode.
func WithValidationMode(mode ValidationMode) Option {
	return func(o *Orchestrator) {
		o.mode = mode
	}
}

// WithLabeler installs a custom fallback for controls whose declaration
// carries no label.
func WithLabeler(labeler func(string) string) Option {
	return func(o *Orchestrator) {
		o.labeler = labeler
	}
}

// WithGeneratedLabels fills missing control labels by humanizing the field
// name (snake_case and camelCase become title-cased words).
func WithGeneratedLabels() Option {
	return WithLabeler(labels.Humanize)
}

// WithSanitizedLabels strips markup from every emitted label. Enable it when
// declaration documents come from untrusted sources.
func WithSanitizedLabels() Option {
	return func(o *Orchestrator) {
		o.sanitize = true
	}
}

// WithSchemaURI overrides the draft-07 $schema identifier stamped on the
// root schema node.
func WithSchemaURI(uri string) Option {
	return func(o *Orchestrator) {
		o.schemaURI = uri
	}
}

// Orchestrator runs validate → compile-schema → compile-layout with a fixed
// configuration. The zero value is usable; New applies options on top of it.
type Orchestrator struct {
	mode      ValidationMode
	labeler   func(string) string
	sanitize  bool
	schemaURI string
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	return o
}

// Result bundles the three pipeline artifacts. In ModeSkip, Validation is a
// trivially valid empty result.
type Result struct {
	Validation validation.Result
	Schema     *jsonschema.Schema
	Layout     uischema.Layout
}

// Generate compiles the tree into both schemas, honouring the configured
// validation mode. The input is read-only; repeated calls on the same tree
// yield structurally equal results.
func (o *Orchestrator) Generate(ctx context.Context, spec formspec.FormSpec) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var result Result
	switch o.mode {
	case ModeSkip:
		result.Validation = validation.Result{Valid: true}
	default:
		result.Validation = validation.Validate(spec)
		if o.mode == ModeStrict {
			if err := result.Validation.Err(); err != nil {
				return Result{}, fmt.Errorf("%w: %s", ErrValidationFailed, err)
			}
		}
	}

	result.Schema = jsonschema.Compile(spec)
	if o.schemaURI != "" {
		result.Schema.SchemaURI = o.schemaURI
	}

	var opts []uischema.Option
	if o.labeler != nil {
		opts = append(opts, uischema.WithLabeler(o.labeler))
	}
	if o.sanitize {
		opts = append(opts, uischema.WithSanitizedLabels())
	}
	result.Layout = uischema.Compile(spec, opts...)

	return result, nil
}
