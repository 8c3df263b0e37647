// Package declaration parses JSON or YAML declaration documents into
// formspec trees. Documents go through the same fluent builders hand-written
// declarations use, so a malformed enum option list fails identically in
// both paths.
package declaration

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/mike-north/formspec/pkg/formspec"
)

type documentFile struct {
	Form []elementFile `json:"form" yaml:"form"`
}

// elementFile is the on-disk shape of one declaration element. Exactly one
// of Field, Group, or When discriminates the variant.
type elementFile struct {
	Field        string        `json:"field" yaml:"field"`
	Kind         string        `json:"kind" yaml:"kind"`
	Label        string        `json:"label" yaml:"label"`
	Required     bool          `json:"required" yaml:"required"`
	Min          *float64      `json:"min" yaml:"min"`
	Max          *float64      `json:"max" yaml:"max"`
	Options      []any         `json:"options" yaml:"options"`
	Source       string        `json:"source" yaml:"source"`
	Params       []string      `json:"params" yaml:"params"`
	SchemaSource string        `json:"schemaSource" yaml:"schemaSource"`
	Items        []elementFile `json:"items" yaml:"items"`
	Properties   []elementFile `json:"properties" yaml:"properties"`
	MinItems     *int          `json:"minItems" yaml:"minItems"`
	MaxItems     *int          `json:"maxItems" yaml:"maxItems"`

	Group string `json:"group" yaml:"group"`

	When     *predicateFile `json:"when" yaml:"when"`
	Elements []elementFile  `json:"elements" yaml:"elements"`
}

type predicateFile struct {
	Field string `json:"field" yaml:"field"`
	Value any    `json:"value" yaml:"value"`
}

// Parse decodes a declaration document. JSON is tried first, then YAML.
func Parse(data []byte) (formspec.FormSpec, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return formspec.FormSpec{}, err
	}
	elements, err := convertElements(doc.Form)
	if err != nil {
		return formspec.FormSpec{}, err
	}
	return formspec.New(elements...), nil
}

// Load reads and parses a declaration document from the provided filesystem.
func Load(fsys fs.FS, path string) (formspec.FormSpec, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return formspec.FormSpec{}, fmt.Errorf("declaration: read %s: %w", path, err)
	}
	spec, err := Parse(data)
	if err != nil {
		return formspec.FormSpec{}, fmt.Errorf("declaration: parse %s: %w", path, err)
	}
	return spec, nil
}

func parseDocument(data []byte) (documentFile, error) {
	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("declaration: document is neither valid JSON nor valid YAML")
}

func convertElements(raw []elementFile) ([]formspec.Element, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	elements := make([]formspec.Element, 0, len(raw))
	for _, entry := range raw {
		element, err := convertElement(entry)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
	return elements, nil
}

func convertElement(entry elementFile) (formspec.Element, error) {
	switch {
	case entry.Field != "":
		return convertField(entry)
	case entry.Group != "":
		children, err := convertElements(entry.Elements)
		if err != nil {
			return nil, err
		}
		return formspec.GroupOf(entry.Group, children...), nil
	case entry.When != nil:
		if entry.When.Field == "" {
			return nil, fmt.Errorf("declaration: conditional requires a predicate field")
		}
		children, err := convertElements(entry.Elements)
		if err != nil {
			return nil, err
		}
		return formspec.When(entry.When.Field, entry.When.Value, children...), nil
	default:
		return nil, fmt.Errorf("declaration: element must declare one of field, group, or when")
	}
}

func convertField(entry elementFile) (formspec.Element, error) {
	opts := fieldOptions(entry)

	switch entry.Kind {
	case "text":
		return formspec.Text(entry.Field, opts...), nil
	case "number":
		if entry.Min != nil {
			opts = append(opts, formspec.WithMin(*entry.Min))
		}
		if entry.Max != nil {
			opts = append(opts, formspec.WithMax(*entry.Max))
		}
		return formspec.Number(entry.Field, opts...), nil
	case "boolean":
		return formspec.Bool(entry.Field, opts...), nil
	case "static_enum", "enum":
		options, err := convertEnumOptions(entry.Field, entry.Options)
		if err != nil {
			return nil, err
		}
		return formspec.Enum(entry.Field, options, opts...)
	case "dynamic_enum":
		if entry.Source == "" {
			return nil, fmt.Errorf("declaration: field %q: dynamic enum requires a source", entry.Field)
		}
		if len(entry.Params) > 0 {
			opts = append(opts, formspec.WithParams(entry.Params...))
		}
		return formspec.DynamicEnum(entry.Field, entry.Source, opts...), nil
	case "dynamic_schema":
		if entry.SchemaSource == "" {
			return nil, fmt.Errorf("declaration: field %q: dynamic schema requires a schemaSource", entry.Field)
		}
		return formspec.DynamicSchema(entry.Field, entry.SchemaSource, opts...), nil
	case "array":
		items, err := convertElements(entry.Items)
		if err != nil {
			return nil, err
		}
		if entry.MinItems != nil {
			opts = append(opts, formspec.WithMinItems(*entry.MinItems))
		}
		if entry.MaxItems != nil {
			opts = append(opts, formspec.WithMaxItems(*entry.MaxItems))
		}
		return formspec.Array(entry.Field, items, opts...), nil
	case "object":
		properties, err := convertElements(entry.Properties)
		if err != nil {
			return nil, err
		}
		return formspec.Object(entry.Field, properties, opts...), nil
	case "":
		return nil, fmt.Errorf("declaration: field %q is missing a kind", entry.Field)
	default:
		return nil, fmt.Errorf("declaration: field %q has unknown kind %q", entry.Field, entry.Kind)
	}
}

func fieldOptions(entry elementFile) []formspec.FieldOption {
	var opts []formspec.FieldOption
	if entry.Label != "" {
		opts = append(opts, formspec.WithLabel(entry.Label))
	}
	if entry.Required {
		opts = append(opts, formspec.Required())
	}
	return opts
}

// convertEnumOptions lifts decoded map options into Option records while
// leaving strings (and anything unexpected) for the builder's homogeneity
// check to judge.
func convertEnumOptions(field string, raw []any) ([]any, error) {
	options := make([]any, 0, len(raw))
	for _, value := range raw {
		switch typed := value.(type) {
		case map[string]any:
			id, _ := typed["id"].(string)
			label, _ := typed["label"].(string)
			options = append(options, formspec.Option{ID: id, Label: label})
		case map[any]any:
			// Older YAML decoders produce interface-keyed maps.
			id, _ := typed["id"].(string)
			label, _ := typed["label"].(string)
			options = append(options, formspec.Option{ID: id, Label: label})
		default:
			options = append(options, value)
		}
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("declaration: field %q: static enum requires options", field)
	}
	return options, nil
}
