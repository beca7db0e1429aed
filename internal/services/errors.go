package services

import "errors"

// ErrUnauthenticated is returned when an action requires a signed-in
// identity and none was supplied.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden is returned when the caller is not allowed to mutate the
// referenced document.
var ErrForbidden = errors.New("forbidden")
