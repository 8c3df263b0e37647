package formspec

// FieldOption customises a field constructed by the fluent builders.
type FieldOption func(*Field)

// WithLabel sets the human-readable label used for schema titles and UI
// controls.
func WithLabel(label string) FieldOption {
	return func(f *Field) {
		f.Label = label
	}
}

// Required marks the field as required within its scope.
func Required() FieldOption {
	return func(f *Field) {
		f.Required = true
	}
}

// WithMin sets the inclusive lower bound of a number field.
func WithMin(value float64) FieldOption {
	return func(f *Field) {
		f.Min = &value
	}
}

// WithMax sets the inclusive upper bound of a number field.
func WithMax(value float64) FieldOption {
	return func(f *Field) {
		f.Max = &value
	}
}

// WithMinItems sets the minimum element count of an array field.
func WithMinItems(count int) FieldOption {
	return func(f *Field) {
		f.MinItems = &count
	}
}

// WithMaxItems sets the maximum element count of an array field.
func WithMaxItems(count int) FieldOption {
	return func(f *Field) {
		f.MaxItems = &count
	}
}

// WithParams names the sibling fields whose current values a dynamic enum
// source needs in order to resolve its options.
func WithParams(names ...string) FieldOption {
	return func(f *Field) {
		f.Params = append([]string(nil), names...)
	}
}

// New assembles a FormSpec root from the supplied top-level elements.
func New(elements ...Element) FormSpec {
	return FormSpec{Elements: elements}
}

// Text declares a free-form string field.
func Text(name string, opts ...FieldOption) Field {
	return newField(name, KindText, opts)
}

// Number declares a numeric field. Bounds are attached with WithMin/WithMax.
func Number(name string, opts ...FieldOption) Field {
	return newField(name, KindNumber, opts)
}

// Bool declares a boolean field.
func Bool(name string, opts ...FieldOption) Field {
	return newField(name, KindBoolean, opts)
}

// Enum declares a static enum field. Options must be a non-empty homogeneous
// list of either plain strings or Option records; mixing the two forms, or
// supplying an Option with an empty ID or Label, fails with a
// *ConfigurationError.
func Enum(name string, options []any, opts ...FieldOption) (Field, error) {
	values, records, err := splitEnumOptions(name, options)
	if err != nil {
		return Field{}, err
	}
	field := newField(name, KindStaticEnum, opts)
	field.Values = values
	field.Options = records
	return field, nil
}

// MustEnum is Enum for statically known option lists; it panics on a
// malformed list.
func MustEnum(name string, options []any, opts ...FieldOption) Field {
	field, err := Enum(name, options, opts...)
	if err != nil {
		panic(err)
	}
	return field
}

// DynamicEnum declares an enum whose options a runtime layer resolves from
// the named source. Use WithParams to forward sibling field values.
func DynamicEnum(name, source string, opts ...FieldOption) Field {
	field := newField(name, KindDynamicEnum, opts)
	field.Source = source
	return field
}

// DynamicSchema declares an object field whose shape a runtime layer resolves
// from the named schema source.
func DynamicSchema(name, schemaSource string, opts ...FieldOption) Field {
	field := newField(name, KindDynamicSchema, opts)
	field.SchemaSource = schemaSource
	return field
}

// Array declares a repeated field. Items describe the shape of one repeated
// entry and own a fresh name scope.
func Array(name string, items []Element, opts ...FieldOption) Field {
	field := newField(name, KindArray, opts)
	field.Items = items
	return field
}

// Object declares a nested object field. Properties own a fresh name scope.
func Object(name string, properties []Element, opts ...FieldOption) Field {
	field := newField(name, KindObject, opts)
	field.Properties = properties
	return field
}

// GroupOf wraps the children in a labelled UI grouping.
func GroupOf(label string, children ...Element) Group {
	return Group{Label: label, Elements: children}
}

// When wraps the children in a conditional shown while the named field equals
// value. The field must exist somewhere in the conditional's enclosing scope;
// forward references are legal.
func When(field string, value any, children ...Element) Conditional {
	return Conditional{
		Predicate: Predicate{Field: field, Value: value},
		Elements:  children,
	}
}

func newField(name string, kind Kind, opts []FieldOption) Field {
	field := Field{Name: name, Kind: kind}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&field)
	}
	return field
}

func splitEnumOptions(name string, options []any) ([]string, []Option, error) {
	if len(options) == 0 {
		return nil, nil, configErr(name, "static enum requires at least one option")
	}

	switch options[0].(type) {
	case string:
		values := make([]string, 0, len(options))
		for _, raw := range options {
			value, ok := raw.(string)
			if !ok {
				return nil, nil, configErr(name, "static enum options mix plain strings with %T values", raw)
			}
			values = append(values, value)
		}
		return values, nil, nil
	case Option:
		records := make([]Option, 0, len(options))
		for _, raw := range options {
			record, ok := raw.(Option)
			if !ok {
				return nil, nil, configErr(name, "static enum options mix id/label records with %T values", raw)
			}
			if record.ID == "" || record.Label == "" {
				return nil, nil, configErr(name, "static enum option records require a non-empty id and label")
			}
			records = append(records, record)
		}
		return nil, records, nil
	default:
		return nil, nil, configErr(name, "static enum options must be strings or Option records, got %T", options[0])
	}
}
