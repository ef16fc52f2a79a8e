// Package category resolves raw statement category labels to stored
// category ids, creating missing categories lazily.
package category

import "strings"

// Keyword maps a substring of a label to a target category name.
type Keyword struct {
	Substring string
	Category  string
}

// Mapping is a bank's static table translating the category text found in
// its statements to internal category names. It is defined at parser
// construction time and never mutated.
type Mapping struct {
	// Labels maps an exact (case-folded) statement label to a category name.
	Labels map[string]string
	// Keywords are tried in order against the label as substrings.
	Keywords []Keyword
	// Default, when set, is the category for labels nothing else matched.
	// When empty, unmatched labels pass through as their own category name.
	Default string
}

// Target returns the internal category name for a raw label.
func (m Mapping) Target(label string) string {
	norm := Normalize(label)
	if name, ok := m.Labels[norm]; ok {
		return name
	}
	for _, kw := range m.Keywords {
		if strings.Contains(norm, kw.Substring) {
			return kw.Category
		}
	}
	if m.Default != "" {
		return m.Default
	}
	return strings.TrimSpace(label)
}

// Normalize case-folds a label for cache and mapping lookups.
func Normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
