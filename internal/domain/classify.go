package domain

import (
	"strings"

	m "github.com/mouse-blink/archdoc/internal/model"
)

// LayerFunc maps a file path to its architectural layer label.
type LayerFunc func(path m.Path) m.LayerLabel

// ReferenceFunc maps a file path to the ordered design-record
// identifiers associated with it.
type ReferenceFunc func(path m.Path) []string

// NewLayerClassifier builds a classifier over an ordered rule list.
// Patterns are matched case-insensitively as substrings of the
// separator-normalized path; the first match wins and def is returned
// when nothing matches.
func NewLayerClassifier(rules []m.LayerRule, def m.LayerLabel) LayerFunc {
	return func(path m.Path) m.LayerLabel {
		normalized := strings.ToLower(normalizePath(string(path)))

		for _, rule := range rules {
			if strings.Contains(normalized, strings.ToLower(rule.Pattern)) {
				return rule.Label
			}
		}

		return def
	}
}

// NewReferenceResolver builds a resolver over an ordered rule table.
// Every matching rule contributes its identifier, in table order.
// Overlapping patterns may yield the same identifier more than once;
// duplicates are preserved.
func NewReferenceResolver(rules []m.ReferenceRule) ReferenceFunc {
	return func(path m.Path) []string {
		normalized := normalizePath(string(path))

		var ids []string

		for _, rule := range rules {
			if strings.Contains(normalized, rule.Pattern) {
				ids = append(ids, rule.ID)
			}
		}

		return ids
	}
}

// normalizePath canonicalizes path separators so rule patterns only
// need to be written with forward slashes.
func normalizePath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
