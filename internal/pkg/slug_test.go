package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hallo Hallo", "hallo-hallo"},
		{"  Hallo   Hallo!  ", "hallo-hallo"},
		{"Köln Café", "köln-café"},
		{"---", ""},
		{"", ""},
		{"Already-Slugged-123", "already-slugged-123"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.in), "input %q", c.in)
	}
}

func TestSlugWithSuffix(t *testing.T) {
	got := SlugWithSuffix("Hello World")
	assert.True(t, strings.HasPrefix(got, "hello-world-"), got)
	assert.Len(t, got, len("hello-world-")+8)

	// Empty titles still produce a usable slug.
	assert.Len(t, SlugWithSuffix(""), 8)

	// Two calls never collide.
	assert.NotEqual(t, SlugWithSuffix("x"), SlugWithSuffix("x"))
}
