package jsonschema

import (
	"bytes"
	"encoding/json"
)

// DraftURI is the $schema identifier stamped on every compiled root node.
const DraftURI = "http://json-schema.org/draft-07/schema#"

// EnumConst is one oneOf entry generated from an id/label enum option.
type EnumConst struct {
	Const string `json:"const"`
	Title string `json:"title"`
}

// Schema is one generated JSON Schema node. Scope nodes always carry a
// non-nil Properties map, even when empty; leaf nodes leave it nil so the key
// is omitted. The x-formspec-* keys are the extension markers a runtime
// data-resolution layer consumes.
type Schema struct {
	SchemaURI            string      `json:"$schema,omitempty"`
	Type                 string      `json:"type,omitempty"`
	Title                string      `json:"title,omitempty"`
	Enum                 []string    `json:"enum,omitempty"`
	OneOf                []EnumConst `json:"oneOf,omitempty"`
	Minimum              *float64    `json:"minimum,omitempty"`
	Maximum              *float64    `json:"maximum,omitempty"`
	Properties           *Properties `json:"properties,omitempty"`
	Required             []string    `json:"required,omitempty"`
	Items                *Schema     `json:"items,omitempty"`
	MinItems             *int        `json:"minItems,omitempty"`
	MaxItems             *int        `json:"maxItems,omitempty"`
	AdditionalProperties *bool       `json:"additionalProperties,omitempty"`
	Source               string      `json:"x-formspec-source,omitempty"`
	Params               []string    `json:"x-formspec-params,omitempty"`
	SchemaSource         string      `json:"x-formspec-schemaSource,omitempty"`
}

// Properties is an insertion-ordered property map. Setting a name that
// already exists replaces its node but keeps the original position, matching
// the assignment semantics duplicate declarations rely on.
type Properties struct {
	names []string
	nodes map[string]*Schema
}

// NewProperties returns an empty, ready-to-use property map.
func NewProperties() *Properties {
	return &Properties{nodes: make(map[string]*Schema)}
}

// Set stores the node under name, preserving first-insertion order.
func (p *Properties) Set(name string, node *Schema) {
	if _, exists := p.nodes[name]; !exists {
		p.names = append(p.names, name)
	}
	p.nodes[name] = node
}

// Get returns the node stored under name.
func (p *Properties) Get(name string) (*Schema, bool) {
	if p == nil {
		return nil, false
	}
	node, ok := p.nodes[name]
	return node, ok
}

// Len reports the number of stored properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Names returns the property names in insertion order.
func (p *Properties) Names() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.names...)
}

// MarshalJSON emits the properties as a JSON object in insertion order. An
// empty map marshals to {} rather than being dropped.
func (p *Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(p.nodes[name])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
