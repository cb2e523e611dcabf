package pkg

import "strings"

// BuildSearchText joins the human-readable fields of an entity into the
// denormalized string the text search runs against. Must be recomputed on
// every write that touches a constituent field, or search silently desyncs
// from what is displayed.
func BuildSearchText(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
