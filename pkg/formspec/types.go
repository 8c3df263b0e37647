package formspec

// Kind identifies the data shape of a Field.
type Kind string

const (
	KindText          Kind = "text"
	KindNumber        Kind = "number"
	KindBoolean       Kind = "boolean"
	KindStaticEnum    Kind = "static_enum"
	KindDynamicEnum   Kind = "dynamic_enum"
	KindDynamicSchema Kind = "dynamic_schema"
	KindArray         Kind = "array"
	KindObject        Kind = "object"
)

// Element is a single node of a declaration tree: a Field, a Group, or a
// Conditional. The union is closed; consumers dispatch with a type switch.
type Element interface {
	element()
}

// Option is a static enum entry pairing a stored value with a display label.
type Option struct {
	ID    string
	Label string
}

// Predicate is an equality test against the current value of a field in the
// conditional's enclosing scope. Equality is the only supported comparison.
type Predicate struct {
	Field string
	Value any
}

// Field is a leaf declaration. Name must be unique within its scope; the
// remaining attributes depend on Kind: Min/Max apply to number fields,
// Values/Options to static enums (exactly one of the two is populated),
// Source/Params to dynamic enums, SchemaSource to dynamic schemas, and
// Items/Properties with the optional item bounds to arrays and objects.
type Field struct {
	Name     string
	Kind     Kind
	Label    string
	Required bool

	Min *float64
	Max *float64

	Values  []string
	Options []Option

	Source       string
	Params       []string
	SchemaSource string

	Items      []Element
	Properties []Element
	MinItems   *int
	MaxItems   *int
}

// Group is a labelled UI-only wrapper. It nests in the UI schema, is
// invisible to the JSON Schema compiler, and never opens a name scope.
type Group struct {
	Label    string
	Elements []Element
}

// Conditional shows its children only while its predicate holds. It is
// structurally transparent to both compilers; the predicate is pushed onto
// every descendant control's visibility rule.
type Conditional struct {
	Predicate Predicate
	Elements  []Element
}

func (Field) element()       {}
func (Group) element()       {}
func (Conditional) element() {}

// FormSpec is the root declaration tree: an ordered list of top-level
// elements owning the root name scope.
type FormSpec struct {
	Elements []Element
}
