// Package openapi derives declaration trees from OpenAPI 3 documents,
// serving as one of the external declaration layers feeding the compiler.
// Only the JSON request body of a single operation is considered; response
// schemas and parameters are ignored.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/mike-north/formspec/pkg/formspec"
)

const (
	sourceExtensionKey       = "x-formspec-source"
	paramsExtensionKey       = "x-formspec-params"
	schemaSourceExtensionKey = "x-formspec-schemaSource"
)

// FromDocument loads an OpenAPI 3 payload and derives a FormSpec from the
// request body of the operation identified by operationID. Schema extensions
// under x-formspec-source / x-formspec-params / x-formspec-schemaSource map
// back to dynamic enum and dynamic schema fields.
func FromDocument(ctx context.Context, raw []byte, operationID string) (formspec.FormSpec, error) {
	if err := ctx.Err(); err != nil {
		return formspec.FormSpec{}, err
	}
	if len(raw) == 0 {
		return formspec.FormSpec{}, errors.New("openapi adapter: document payload is empty")
	}
	if operationID == "" {
		return formspec.FormSpec{}, errors.New("openapi adapter: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return formspec.FormSpec{}, fmt.Errorf("openapi adapter: load document: %w", err)
	}

	operation := findOperation(doc, operationID)
	if operation == nil {
		return formspec.FormSpec{}, fmt.Errorf("openapi adapter: operation %q not found", operationID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil {
		return formspec.FormSpec{}, fmt.Errorf("openapi adapter: operation %q has no request body schema", operationID)
	}

	elements, err := elementsFromSchema(schema)
	if err != nil {
		return formspec.FormSpec{}, err
	}
	return formspec.New(elements...), nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete,
			item.Patch, item.Head, item.Options, item.Trace,
		} {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(requestBody *openapi3.RequestBodyRef) *openapi3.Schema {
	if requestBody == nil || requestBody.Value == nil {
		return nil
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// elementsFromSchema converts an object schema's properties into fields.
// Property names are visited in sorted order since the source map carries no
// declaration order.
func elementsFromSchema(src *openapi3.Schema) ([]formspec.Element, error) {
	if src == nil || len(src.Properties) == 0 {
		return nil, nil
	}

	requiredSet := make(map[string]struct{}, len(src.Required))
	for _, name := range src.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(src.Properties))
	for name := range src.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	elements := make([]formspec.Element, 0, len(names))
	for _, name := range names {
		ref := src.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, required := requiredSet[name]
		field, err := fieldFromSchema(name, ref.Value, required)
		if err != nil {
			return nil, err
		}
		elements = append(elements, field)
	}
	return elements, nil
}

func fieldFromSchema(name string, src *openapi3.Schema, required bool) (formspec.Element, error) {
	var opts []formspec.FieldOption
	if required {
		opts = append(opts, formspec.Required())
	}
	if src.Title != "" {
		opts = append(opts, formspec.WithLabel(src.Title))
	}

	if source, ok := stringExtension(src.Extensions, sourceExtensionKey); ok {
		if params := stringSliceExtension(src.Extensions, paramsExtensionKey); len(params) > 0 {
			opts = append(opts, formspec.WithParams(params...))
		}
		return formspec.DynamicEnum(name, source, opts...), nil
	}
	if schemaSource, ok := stringExtension(src.Extensions, schemaSourceExtensionKey); ok {
		return formspec.DynamicSchema(name, schemaSource, opts...), nil
	}

	switch firstSchemaType(src.Type) {
	case "number", "integer":
		if src.Min != nil {
			opts = append(opts, formspec.WithMin(*src.Min))
		}
		if src.Max != nil {
			opts = append(opts, formspec.WithMax(*src.Max))
		}
		return formspec.Number(name, opts...), nil
	case "boolean":
		return formspec.Bool(name, opts...), nil
	case "array":
		return arrayFromSchema(name, src, opts)
	case "object", "":
		children, err := elementsFromSchema(src)
		if err != nil {
			return nil, err
		}
		return formspec.Object(name, children, opts...), nil
	default:
		if len(src.Enum) > 0 {
			return formspec.Enum(name, append([]any(nil), src.Enum...), opts...)
		}
		return formspec.Text(name, opts...), nil
	}
}

func arrayFromSchema(name string, src *openapi3.Schema, opts []formspec.FieldOption) (formspec.Element, error) {
	if src.Items == nil || src.Items.Value == nil {
		return nil, fmt.Errorf("openapi adapter: array property %q missing items", name)
	}
	itemSchema := src.Items.Value

	var items []formspec.Element
	if firstSchemaType(itemSchema.Type) == "object" || len(itemSchema.Properties) > 0 {
		converted, err := elementsFromSchema(itemSchema)
		if err != nil {
			return nil, err
		}
		items = converted
	} else {
		// Scalar items become a single-field item shape named "value".
		item, err := fieldFromSchema("value", itemSchema, false)
		if err != nil {
			return nil, err
		}
		items = []formspec.Element{item}
	}

	if src.MinItems != 0 {
		opts = append(opts, formspec.WithMinItems(int(src.MinItems)))
	}
	if src.MaxItems != nil {
		opts = append(opts, formspec.WithMaxItems(int(*src.MaxItems)))
	}
	return formspec.Array(name, items, opts...), nil
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}

func stringExtension(ext map[string]any, key string) (string, bool) {
	if len(ext) == 0 {
		return "", false
	}
	value, ok := ext[key].(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

func stringSliceExtension(ext map[string]any, key string) []string {
	if len(ext) == 0 {
		return nil
	}
	raw, ok := ext[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if value, ok := entry.(string); ok && value != "" {
			out = append(out, value)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
