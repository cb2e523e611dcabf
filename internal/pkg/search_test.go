package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchText(t *testing.T) {
	assert.Equal(t, "a b c", BuildSearchText("a", "b", "c"))
	assert.Equal(t, "a c", BuildSearchText("a", "", "c"))
	assert.Equal(t, "a c", BuildSearchText(" a ", "   ", "c"))
	assert.Equal(t, "", BuildSearchText())
	assert.Equal(t, "", BuildSearchText("", "  "))
}
