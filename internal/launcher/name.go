package launcher

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// FallbackToken is returned by Sanitize when nothing usable survives.
const FallbackToken = "unnamed-app"

var separatorRuns = regexp.MustCompile(`[\s_-]+`)

// Sanitize derives the filesystem-safe token that namespaces every file the
// generator touches for one application. It lower-cases the display name,
// drops everything outside [a-z0-9_ -], collapses runs of whitespace,
// underscores, and hyphens into a single hyphen, and trims separators from
// both ends. The result matches ^[a-z0-9]+(-[a-z0-9]+)*$ or equals
// FallbackToken; the function is pure and idempotent.
func Sanitize(name string) string {
	name = strings.ToLower(name)

	var kept strings.Builder
	kept.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			kept.WriteRune(r)
		case r == '_' || r == '-' || unicode.IsSpace(r):
			kept.WriteRune(r)
		}
	}

	token := separatorRuns.ReplaceAllString(kept.String(), "-")
	token = strings.Trim(token, "-")
	if token == "" {
		return FallbackToken
	}
	return token
}

// SuggestName proposes a display name from a script filename: the base name
// without its final extension, with underscores and hyphens turned into
// spaces and each word capitalized. "my_cool-app.sh" becomes "My Cool App".
// Used to prefill the name field when the user picks a script first.
func SuggestName(scriptPath string) string {
	base := filepath.Base(scriptPath)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)

	words := strings.Fields(base)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
