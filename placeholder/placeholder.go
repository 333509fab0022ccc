// Package placeholder implements the {{name}} grammar used in template
// bodies: extraction of placeholder names and value substitution.
package placeholder

import (
	"fmt"
	"regexp"
	"strconv"
)

// pattern matches a placeholder token: double braces around an identifier
// built from letters, digits, underscore, and dot, with optional inner
// whitespace. Anything else (unmatched braces, other characters) is not a
// placeholder and passes through verbatim.
var pattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// Extract returns the placeholder names in body, deduplicated, in order of
// first occurrence. An empty body yields an empty slice.
func Extract(body string) []string {
	names := []string{}
	seen := make(map[string]bool)
	for _, m := range pattern.FindAllStringSubmatch(body, -1) {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}

// Render substitutes every placeholder occurrence whose name maps to a
// non-nil value. Placeholders with no value keep their original token,
// inner whitespace included, so partial rendering stays visible to the
// caller. Keys in values that match no placeholder are ignored.
func Render(body string, values map[string]any) string {
	return pattern.ReplaceAllStringFunc(body, func(token string) string {
		name := pattern.FindStringSubmatch(token)[1]
		v, ok := values[name]
		if !ok || v == nil {
			return token
		}
		return stringify(v)
	})
}

// stringify converts a value the way JSON-decoded values read: float64(2)
// prints as "2", bools as "true"/"false".
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}
