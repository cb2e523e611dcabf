package pkg

import "errors"

// Error taxonomy shared by every mutation path. Handlers map these onto HTTP
// status codes; services return them unchanged.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrNotFound         = errors.New("not found")
)
