package launcher

import (
	"fmt"
	"sort"
)

// desktopCategories is the fixed Freedesktop menu vocabulary, sorted.
var desktopCategories = []string{
	"Accessibility", "Audio", "AudioVideo", "ConsoleOnly", "Core",
	"Development", "Documentation", "Education", "GNOME", "GTK", "Game",
	"Graphics", "KDE", "Network", "Office", "Qt", "Science", "Settings",
	"System", "Utility", "Video", "WebBrowser",
}

// Categories returns a copy of the built-in category vocabulary.
func Categories() []string {
	return append([]string(nil), desktopCategories...)
}

// CategoriesWith merges the built-in vocabulary with configured extras,
// deduplicated and sorted.
func CategoriesWith(extra []string) []string {
	seen := make(map[string]struct{}, len(desktopCategories)+len(extra))
	merged := make([]string, 0, len(desktopCategories)+len(extra))
	for _, cat := range desktopCategories {
		seen[cat] = struct{}{}
		merged = append(merged, cat)
	}
	for _, cat := range extra {
		if cat == "" {
			continue
		}
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		merged = append(merged, cat)
	}
	sort.Strings(merged)
	return merged
}

// ValidateCategories checks every selected category against the vocabulary
// plus extras. Matching is exact; the descriptor format is case-sensitive.
func ValidateCategories(selected, extra []string) ValidationErrors {
	allowed := make(map[string]struct{})
	for _, cat := range CategoriesWith(extra) {
		allowed[cat] = struct{}{}
	}

	var errs ValidationErrors
	for _, cat := range selected {
		if _, ok := allowed[cat]; !ok {
			errs = append(errs, ValidationError{
				Field:   "categories",
				Message: fmt.Sprintf("unknown category %q", cat),
			})
		}
	}
	return errs
}
