package formspec_test

import (
	"errors"
	"testing"

	"github.com/mike-north/formspec/pkg/formspec"
)

func TestEnumPlainStrings(t *testing.T) {
	field, err := formspec.Enum("status", []any{"draft", "published"})
	if err != nil {
		t.Fatalf("enum: %v", err)
	}
	if field.Kind != formspec.KindStaticEnum {
		t.Fatalf("unexpected kind %q", field.Kind)
	}
	if len(field.Values) != 2 || field.Values[0] != "draft" || field.Values[1] != "published" {
		t.Fatalf("unexpected values: %#v", field.Values)
	}
	if field.Options != nil {
		t.Fatalf("expected no option records, got %#v", field.Options)
	}
}

func TestEnumOptionRecords(t *testing.T) {
	field, err := formspec.Enum("status", []any{
		formspec.Option{ID: "d", Label: "Draft"},
		formspec.Option{ID: "p", Label: "Published"},
	})
	if err != nil {
		t.Fatalf("enum: %v", err)
	}
	if len(field.Options) != 2 || field.Options[1].ID != "p" {
		t.Fatalf("unexpected options: %#v", field.Options)
	}
	if field.Values != nil {
		t.Fatalf("expected no plain values, got %#v", field.Values)
	}
}

func TestEnumMixedOptionsFail(t *testing.T) {
	cases := map[string][]any{
		"string first": {"draft", formspec.Option{ID: "p", Label: "Published"}},
		"record first": {formspec.Option{ID: "d", Label: "Draft"}, "published"},
		"empty list":   {},
		"bad type":     {42},
	}
	for name, options := range cases {
		if _, err := formspec.Enum("status", options); err == nil {
			t.Fatalf("%s: expected construction error", name)
		} else {
			var configErr *formspec.ConfigurationError
			if !errors.As(err, &configErr) {
				t.Fatalf("%s: expected *ConfigurationError, got %T", name, err)
			}
			if configErr.Field != "status" {
				t.Fatalf("%s: error names wrong field %q", name, configErr.Field)
			}
		}
	}
}

func TestEnumRecordRequiresIDAndLabel(t *testing.T) {
	if _, err := formspec.Enum("status", []any{formspec.Option{ID: "d"}}); err == nil {
		t.Fatalf("expected error for option record without label")
	}
	if _, err := formspec.Enum("status", []any{formspec.Option{Label: "Draft"}}); err == nil {
		t.Fatalf("expected error for option record without id")
	}
}

func TestFieldOptions(t *testing.T) {
	field := formspec.Number("rating",
		formspec.WithLabel("Rating"),
		formspec.Required(),
		formspec.WithMin(1),
		formspec.WithMax(5),
	)
	if field.Label != "Rating" || !field.Required {
		t.Fatalf("label/required not applied: %#v", field)
	}
	if field.Min == nil || *field.Min != 1 || field.Max == nil || *field.Max != 5 {
		t.Fatalf("bounds not applied: %#v", field)
	}
}

func TestArrayAndObjectCarryChildren(t *testing.T) {
	array := formspec.Array("tags",
		[]formspec.Element{formspec.Text("value")},
		formspec.WithMinItems(1), formspec.WithMaxItems(10),
	)
	if len(array.Items) != 1 || *array.MinItems != 1 || *array.MaxItems != 10 {
		t.Fatalf("array shape wrong: %#v", array)
	}

	object := formspec.Object("author", []formspec.Element{formspec.Text("name")})
	if len(object.Properties) != 1 {
		t.Fatalf("object shape wrong: %#v", object)
	}
}

func TestWhenBuildsPredicate(t *testing.T) {
	conditional := formspec.When("status", "published", formspec.Text("url"))
	if conditional.Predicate.Field != "status" || conditional.Predicate.Value != "published" {
		t.Fatalf("unexpected predicate: %#v", conditional.Predicate)
	}
	if len(conditional.Elements) != 1 {
		t.Fatalf("unexpected children: %#v", conditional.Elements)
	}
}
