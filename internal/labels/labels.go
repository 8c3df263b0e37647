// Package labels derives human-friendly display labels from declaration
// field names.
package labels

import (
	"regexp"
	"strings"
)

var separatorPattern = regexp.MustCompile(`[_\-\s]+`)

// Humanize converts a field name into a display label: underscores, dashes,
// and camelCase boundaries become word breaks and each word is title-cased.
func Humanize(name string) string {
	if name == "" {
		return ""
	}

	var segments []string
	for _, word := range separatorPattern.Split(name, -1) {
		if word == "" {
			continue
		}
		for _, piece := range strings.Fields(splitCamel(word)) {
			segments = append(segments, titleCase(piece))
		}
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
