package auth

import "errors"

var (
	ErrEmailNotAuthorized = errors.New("email not authorized or not found")
)
