package formspec

// RootScope identifies the name scope owned by the FormSpec root. Scopes
// opened by array and object fields are identified by the owning field's
// path, with array item scopes suffixed "[]".
const RootScope = "$"

// FieldSite locates one Field occurrence in a declaration tree: the scope it
// belongs to, a scope-qualified diagnostic path, and the conditional
// predicates strictly enclosing it, outermost first.
type FieldSite struct {
	Field      Field
	Scope      string
	Path       string
	Predicates []Predicate
}

// PredicateSite locates one Conditional occurrence. Scope is the name scope
// the predicate's field reference must resolve against.
type PredicateSite struct {
	Predicate Predicate
	Scope     string
	Path      string
}

// Resolution is the scope resolver's output, listing every field and
// conditional site in declaration order.
type Resolution struct {
	Fields     []FieldSite
	Predicates []PredicateSite
}

// Resolve walks the declaration tree once, carrying the current scope
// identifier and the enclosing predicate stack. Entering an array's items or
// an object's properties opens a fresh scope; Group and Conditional leave the
// scope untouched.
func Resolve(spec FormSpec) Resolution {
	var resolution Resolution
	resolution.walk(spec.Elements, RootScope, nil)
	return resolution
}

// NameCounts tallies field name occurrences per scope. Scopes that declare no
// fields are absent from the result.
func (r Resolution) NameCounts() map[string]map[string]int {
	counts := make(map[string]map[string]int)
	for _, site := range r.Fields {
		scoped := counts[site.Scope]
		if scoped == nil {
			scoped = make(map[string]int)
			counts[site.Scope] = scoped
		}
		scoped[site.Field.Name]++
	}
	return counts
}

func (r *Resolution) walk(elements []Element, scope string, predicates []Predicate) {
	for _, element := range elements {
		switch node := element.(type) {
		case Field:
			path := scope + "." + node.Name
			r.Fields = append(r.Fields, FieldSite{
				Field:      node,
				Scope:      scope,
				Path:       path,
				Predicates: clonePredicates(predicates),
			})
			switch node.Kind {
			case KindArray:
				r.walk(node.Items, path+"[]", predicates)
			case KindObject:
				r.walk(node.Properties, path, predicates)
			}
		case Group:
			r.walk(node.Elements, scope, predicates)
		case Conditional:
			r.Predicates = append(r.Predicates, PredicateSite{
				Predicate: node.Predicate,
				Scope:     scope,
				Path:      scope + ".when(" + node.Predicate.Field + ")",
			})
			// Full slice expression so sibling conditionals never share a
			// backing array.
			stack := append(predicates[:len(predicates):len(predicates)], node.Predicate)
			r.walk(node.Elements, scope, stack)
		}
	}
}

func clonePredicates(predicates []Predicate) []Predicate {
	if len(predicates) == 0 {
		return nil
	}
	return append([]Predicate(nil), predicates...)
}
