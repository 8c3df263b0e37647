package uischema

import "github.com/mike-north/formspec/pkg/formspec"

// Option customises a Compile run.
type Option func(*compiler)

// WithLabeler supplies a fallback that derives a control label from the field
// name when the declaration carries none.
func WithLabeler(labeler func(string) string) Option {
	return func(c *compiler) {
		c.labeler = labeler
	}
}

// WithSanitizedLabels strips markup from labels before they are emitted. Use
// it when declaration documents come from untrusted sources.
func WithSanitizedLabels() Option {
	return func(c *compiler) {
		c.sanitize = true
	}
}

type compiler struct {
	labeler  func(string) string
	sanitize bool
}

// Compile produces the layout for the whole tree, starting with an empty
// predicate stack. Sibling order is preserved everywhere; conditional
// children are spliced in at the position the conditional occupied.
func Compile(spec formspec.FormSpec, opts ...Option) Layout {
	var c compiler
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&c)
	}
	return Layout{
		Type:     TypeVerticalLayout,
		Elements: c.compile(spec.Elements, nil),
	}
}

func (c *compiler) compile(elements []formspec.Element, predicates []formspec.Predicate) []Node {
	nodes := make([]Node, 0, len(elements))
	for _, element := range elements {
		switch typed := element.(type) {
		case formspec.Field:
			nodes = append(nodes, c.control(typed, predicates))
		case formspec.Group:
			// The same predicate stack threads through, so controls inside
			// a group nested in a conditional still carry the rule.
			nodes = append(nodes, Group{
				Type:     TypeGroup,
				Label:    c.label(typed.Label, ""),
				Elements: c.compile(typed.Elements, predicates),
			})
		case formspec.Conditional:
			// Full slice expression so sibling conditionals never share a
			// backing array.
			stack := append(predicates[:len(predicates):len(predicates)], typed.Predicate)
			nodes = append(nodes, c.compile(typed.Elements, stack)...)
		}
	}
	return nodes
}

func (c *compiler) control(field formspec.Field, predicates []formspec.Predicate) Control {
	control := Control{
		Type:  TypeControl,
		Scope: "#/properties/" + field.Name,
		Label: c.label(field.Label, field.Name),
	}
	if len(predicates) > 0 {
		control.Rule = combineRule(predicates)
	}
	return control
}

func (c *compiler) label(raw, fallbackName string) string {
	label := raw
	if label == "" && fallbackName != "" && c.labeler != nil {
		label = c.labeler(fallbackName)
	}
	if c.sanitize {
		label = sanitizeLabel(label)
	}
	return label
}

// combineRule turns the enclosing predicate stack into a SHOW rule. One
// predicate anchors at its field's scope with a direct const; nested
// predicates conjoin via allOf and omit the scope.
func combineRule(predicates []formspec.Predicate) *Rule {
	if len(predicates) == 1 {
		predicate := predicates[0]
		return &Rule{
			Effect: EffectShow,
			Condition: Condition{
				Scope:  "#/properties/" + predicate.Field,
				Schema: ConditionSchema{Const: predicate.Value},
			},
		}
	}

	clauses := make([]ConditionClause, 0, len(predicates))
	for _, predicate := range predicates {
		clauses = append(clauses, ConditionClause{
			Properties: map[string]ConstSchema{
				predicate.Field: {Const: predicate.Value},
			},
		})
	}
	return &Rule{
		Effect:    EffectShow,
		Condition: Condition{Schema: ConditionSchema{AllOf: clauses}},
	}
}
