package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hallohallo/internal/pkg"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name     string
		ident    *Identity
		authorID uint64
		want     error
	}{
		{"nil identity", nil, 1, pkg.ErrNotAuthenticated},
		{"zero id", &Identity{}, 1, pkg.ErrNotAuthenticated},
		{"wrong author", &Identity{ID: 2}, 1, pkg.ErrNotAuthorized},
		{"matching author", &Identity{ID: 1}, 1, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, Authorize(tc.ident, tc.authorID), tc.want)
		})
	}
}

func TestAuthenticated(t *testing.T) {
	assert.ErrorIs(t, Authenticated(nil), pkg.ErrNotAuthenticated)
	assert.NoError(t, Authenticated(&Identity{ID: 7}))
}
