package uischema_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mike-north/formspec/pkg/formspec"
	"github.com/mike-north/formspec/pkg/uischema"
)

func assertJSON(t *testing.T, got any, want string) {
	t.Helper()

	gotRaw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var gotTree, wantTree any
	if err := json.Unmarshal(gotRaw, &gotTree); err != nil {
		t.Fatalf("unmarshal generated document: %v", err)
	}
	if err := json.Unmarshal([]byte(want), &wantTree); err != nil {
		t.Fatalf("unmarshal expected document: %v", err)
	}
	if diff := cmp.Diff(wantTree, gotTree); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s\nraw: %s", diff, gotRaw)
	}
}

func TestCompileBasicLayout(t *testing.T) {
	spec := formspec.New(
		formspec.Text("title", formspec.WithLabel("Title")),
		formspec.MustEnum("status", []any{"draft", "published"}),
		formspec.When("status", "published",
			formspec.Text("publishedUrl", formspec.WithLabel("Published URL")),
		),
	)

	assertJSON(t, uischema.Compile(spec), `{
		"type": "VerticalLayout",
		"elements": [
			{"type": "Control", "scope": "#/properties/title", "label": "Title"},
			{"type": "Control", "scope": "#/properties/status"},
			{
				"type": "Control",
				"scope": "#/properties/publishedUrl",
				"label": "Published URL",
				"rule": {
					"effect": "SHOW",
					"condition": {
						"scope": "#/properties/status",
						"schema": {"const": "published"}
					}
				}
			}
		]
	}`)
}

func TestCompileEmptySpecKeepsElementsKey(t *testing.T) {
	assertJSON(t, uischema.Compile(formspec.New()), `{
		"type": "VerticalLayout",
		"elements": []
	}`)
}

func TestCompileGroupNode(t *testing.T) {
	spec := formspec.New(
		formspec.GroupOf("Details",
			formspec.Number("rating"),
			formspec.Bool("featured"),
		),
	)

	assertJSON(t, uischema.Compile(spec), `{
		"type": "VerticalLayout",
		"elements": [
			{
				"type": "Group",
				"label": "Details",
				"elements": [
					{"type": "Control", "scope": "#/properties/rating"},
					{"type": "Control", "scope": "#/properties/featured"}
				]
			}
		]
	}`)
}

func TestCompileConditionalSplicedInPlace(t *testing.T) {
	spec := formspec.New(
		formspec.Text("a"),
		formspec.When("a", "x",
			formspec.Text("b"),
			formspec.Text("c"),
		),
		formspec.Text("d"),
	)

	layout := uischema.Compile(spec)
	if len(layout.Elements) != 4 {
		t.Fatalf("conditional children splice into the parent: %d nodes", len(layout.Elements))
	}
	order := make([]string, 0, 4)
	for _, node := range layout.Elements {
		control, ok := node.(uischema.Control)
		if !ok {
			t.Fatalf("expected only controls, got %T", node)
		}
		order = append(order, strings.TrimPrefix(control.Scope, "#/properties/"))
	}
	want := []string{"a", "b", "c", "d"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Fatalf("sibling order not preserved (-want +got):\n%s", diff)
	}
}

func TestCompileRuleCardinality(t *testing.T) {
	spec := formspec.New(
		formspec.Text("plain"),
		formspec.When("a", 1,
			formspec.Text("single"),
			formspec.When("b", true,
				formspec.Text("double"),
			),
		),
	)

	controls := make(map[string]uischema.Control)
	for _, node := range uischema.Compile(spec).Elements {
		control := node.(uischema.Control)
		controls[strings.TrimPrefix(control.Scope, "#/properties/")] = control
	}

	if controls["plain"].Rule != nil {
		t.Fatalf("zero predicates must emit no rule: %#v", controls["plain"].Rule)
	}

	single := controls["single"].Rule
	if single == nil || single.Condition.Scope != "#/properties/a" || single.Condition.Schema.AllOf != nil {
		t.Fatalf("one predicate must anchor a direct const condition: %#v", single)
	}

	double := controls["double"].Rule
	if double == nil || double.Condition.Scope != "" || len(double.Condition.Schema.AllOf) != 2 {
		t.Fatalf("stacked predicates must conjoin via allOf: %#v", double)
	}
	if double.Condition.Schema.AllOf[0].Properties["a"].Const != 1 {
		t.Fatalf("allOf clauses ordered outermost first: %#v", double.Condition.Schema.AllOf)
	}
}

func TestCompileFalseyConstSurvivesMarshal(t *testing.T) {
	spec := formspec.New(
		formspec.When("enabled", false,
			formspec.Text("reason"),
		),
	)

	assertJSON(t, uischema.Compile(spec), `{
		"type": "VerticalLayout",
		"elements": [
			{
				"type": "Control",
				"scope": "#/properties/reason",
				"rule": {
					"effect": "SHOW",
					"condition": {
						"scope": "#/properties/enabled",
						"schema": {"const": false}
					}
				}
			}
		]
	}`)
}

func TestCompileGroupInsideConditional(t *testing.T) {
	spec := formspec.New(
		formspec.When("mode", "advanced",
			formspec.GroupOf("Advanced",
				formspec.Text("flags"),
			),
		),
	)

	layout := uischema.Compile(spec)
	group, ok := layout.Elements[0].(uischema.Group)
	if !ok {
		t.Fatalf("group wrapper must survive the splice: %T", layout.Elements[0])
	}
	if group.Label != "Advanced" {
		t.Fatalf("unexpected group label %q", group.Label)
	}
	control := group.Elements[0].(uischema.Control)
	if control.Rule == nil || control.Rule.Condition.Scope != "#/properties/mode" {
		t.Fatalf("descendant controls carry the rule: %#v", control.Rule)
	}
}

func TestCompileWithLabeler(t *testing.T) {
	spec := formspec.New(
		formspec.Text("first_name"),
		formspec.Text("title", formspec.WithLabel("Explicit")),
	)

	layout := uischema.Compile(spec, uischema.WithLabeler(func(name string) string {
		return "gen:" + name
	}))

	first := layout.Elements[0].(uischema.Control)
	if first.Label != "gen:first_name" {
		t.Fatalf("labeler should fill missing labels: %q", first.Label)
	}
	second := layout.Elements[1].(uischema.Control)
	if second.Label != "Explicit" {
		t.Fatalf("declared labels win over the labeler: %q", second.Label)
	}
}

func TestCompileSanitizedLabels(t *testing.T) {
	spec := formspec.New(
		formspec.Text("name", formspec.WithLabel("<b>Name</b>")),
		formspec.GroupOf("<script>alert(1)</script>Details",
			formspec.Text("note"),
		),
	)

	layout := uischema.Compile(spec, uischema.WithSanitizedLabels())
	control := layout.Elements[0].(uischema.Control)
	if control.Label != "Name" {
		t.Fatalf("markup should be stripped: %q", control.Label)
	}
	group := layout.Elements[1].(uischema.Group)
	if strings.Contains(group.Label, "<") {
		t.Fatalf("group labels are sanitized too: %q", group.Label)
	}
}
