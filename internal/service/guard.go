package service

import (
	"hallohallo/internal/pkg"
)

// Identity is the authenticated caller as seen by the service layer. A nil
// *Identity means no caller is authenticated.
type Identity struct {
	ID   uint64
	Name string
}

// Authorize is the ownership guard applied before every mutate/delete on
// communities, posts, comments and replies: the caller must exist and must be
// the recorded author. No side effects.
func Authorize(ident *Identity, authorID uint64) error {
	if ident == nil || ident.ID == 0 {
		return pkg.ErrNotAuthenticated
	}
	if ident.ID != authorID {
		return pkg.ErrNotAuthorized
	}
	return nil
}

// Authenticated checks only that a caller is present.
func Authenticated(ident *Identity) error {
	if ident == nil || ident.ID == 0 {
		return pkg.ErrNotAuthenticated
	}
	return nil
}
