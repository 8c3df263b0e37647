package labels_test

import (
	"testing"

	"github.com/mike-north/formspec/internal/labels"
)

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"title":         "Title",
		"first_name":    "First Name",
		"firstName":     "First Name",
		"published-url": "Published Url",
		"APIKey":        "Apikey",
		"line2":         "Line 2",
		"__weird__name": "Weird Name",
	}
	for input, want := range cases {
		if got := labels.Humanize(input); got != want {
			t.Errorf("Humanize(%q) = %q, want %q", input, got, want)
		}
	}
}
