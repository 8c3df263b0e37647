// Package jsonschema compiles a declaration tree into a draft-07 style
// validation schema. Groups and conditionals are structurally transparent:
// their children land in the enclosing scope's node, so a field stays part of
// the schema whether or not it is currently visible. Array items and object
// properties open fresh scopes compiled into nested object nodes.
package jsonschema

import "github.com/mike-north/formspec/pkg/formspec"

// Compile produces the validation schema for the whole tree. The returned
// value is independent of the input; the tree is never mutated.
func Compile(spec formspec.FormSpec) *Schema {
	root := compileScope(spec.Elements)
	root.SchemaURI = DraftURI
	return root
}

// compileScope builds the single object node owned by one name scope.
// Required names are collected across all transparent wrappers and
// deduplicated in first-occurrence order; the key is omitted when no field in
// the scope is required.
func compileScope(elements []formspec.Element) *Schema {
	node := &Schema{Type: "object", Properties: NewProperties()}
	var required []string
	collect(elements, node.Properties, &required)
	node.Required = dedupe(required)
	return node
}

func collect(elements []formspec.Element, properties *Properties, required *[]string) {
	for _, element := range elements {
		switch typed := element.(type) {
		case formspec.Field:
			properties.Set(typed.Name, compileField(typed))
			if typed.Required {
				*required = append(*required, typed.Name)
			}
		case formspec.Group:
			collect(typed.Elements, properties, required)
		case formspec.Conditional:
			collect(typed.Elements, properties, required)
		}
	}
}

func compileField(field formspec.Field) *Schema {
	var node *Schema
	switch field.Kind {
	case formspec.KindNumber:
		node = &Schema{
			Type:    "number",
			Minimum: cloneFloat(field.Min),
			Maximum: cloneFloat(field.Max),
		}
	case formspec.KindBoolean:
		node = &Schema{Type: "boolean"}
	case formspec.KindStaticEnum:
		node = &Schema{Type: "string"}
		if len(field.Options) > 0 {
			node.OneOf = make([]EnumConst, 0, len(field.Options))
			for _, option := range field.Options {
				node.OneOf = append(node.OneOf, EnumConst{Const: option.ID, Title: option.Label})
			}
		} else {
			node.Enum = append([]string(nil), field.Values...)
		}
	case formspec.KindDynamicEnum:
		node = &Schema{
			Type:   "string",
			Source: field.Source,
			Params: append([]string(nil), field.Params...),
		}
	case formspec.KindDynamicSchema:
		open := true
		node = &Schema{
			Type:                 "object",
			AdditionalProperties: &open,
			SchemaSource:         field.SchemaSource,
		}
	case formspec.KindArray:
		node = &Schema{
			Type:     "array",
			Items:    compileScope(field.Items),
			MinItems: cloneInt(field.MinItems),
			MaxItems: cloneInt(field.MaxItems),
		}
	case formspec.KindObject:
		// An object field is a nested scope schema, not a wrapper around
		// one.
		node = compileScope(field.Properties)
	default:
		node = &Schema{Type: "string"}
	}
	if field.Label != "" {
		node.Title = field.Label
	}
	return node
}

func dedupe(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func cloneFloat(value *float64) *float64 {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
