package uischema

// Node type and rule effect constants used in emitted layouts.
const (
	TypeVerticalLayout = "VerticalLayout"
	TypeControl        = "Control"
	TypeGroup          = "Group"
	EffectShow         = "SHOW"
)

// Layout is the root UI schema. Elements is always present, possibly empty.
type Layout struct {
	Type     string `json:"type"`
	Elements []Node `json:"elements"`
}

// Node is a UI schema node: a Control or a Group. The union is closed.
type Node interface {
	node()
}

// Control binds one schema property to a rendered input.
type Control struct {
	Type  string `json:"type"`
	Scope string `json:"scope"`
	Label string `json:"label,omitempty"`
	Rule  *Rule  `json:"rule,omitempty"`
}

// Group nests child nodes under a labelled section. Groups never carry a
// rule; enclosing predicates land on the descendant controls instead.
type Group struct {
	Type     string `json:"type"`
	Label    string `json:"label,omitempty"`
	Elements []Node `json:"elements"`
}

func (Control) node() {}
func (Group) node()   {}

// Rule toggles a control's visibility while its condition holds.
type Rule struct {
	Effect    string    `json:"effect"`
	Condition Condition `json:"condition"`
}

// Condition is the predicate a rule evaluates. A single-predicate condition
// anchors at Scope with a const schema; the combined form leaves Scope empty
// because each allOf conjunct re-anchors its own field via properties and is
// evaluated against the whole data object.
type Condition struct {
	Scope  string          `json:"scope,omitempty"`
	Schema ConditionSchema `json:"schema"`
}

// ConditionSchema holds either a direct const or an allOf conjunction, never
// both.
type ConditionSchema struct {
	Const any               `json:"const,omitempty"`
	AllOf []ConditionClause `json:"allOf,omitempty"`
}

// ConditionClause is one conjunct of a combined condition.
type ConditionClause struct {
	Properties map[string]ConstSchema `json:"properties"`
}

// ConstSchema matches one expected field value.
type ConstSchema struct {
	Const any `json:"const"`
}
