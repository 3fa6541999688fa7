package user

import "errors"

var (
	ErrAccessDenied            = errors.New("access denied")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrInvalidRole             = errors.New("invalid role")
)
