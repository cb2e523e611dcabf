package pkg

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Slugify lowercases, keeps letters and digits, and collapses everything else
// into single hyphens. "Hallo  Hallo!" -> "hallo-hallo".
func Slugify(s string) string {
	var b strings.Builder
	prevHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// SlugWithSuffix appends a short random fragment so titles need not be
// globally unique.
func SlugWithSuffix(s string) string {
	base := Slugify(s)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
