package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, caller Identity) error
}

// SessionChecker reports whether sessionID is still the live session of an employee.
type SessionChecker interface {
	IsSessionActive(ctx context.Context, employeeID string, sessionID string) (bool, error)
}
