package auth

import (
	"testing"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_ClaimsRoundTrip(t *testing.T) {
	manager := "mgr-1"
	identity := Identity{
		ID:           "emp-1",
		EmployeeCode: "E001",
		Email:        "e@example.com",
		Username:     "eve",
		Role:         user.RoleEmployee,
		ReportingTo:  &manager,
		SessionID:    "sid-1",
	}

	got, err := IdentityFromClaims(identity.Claims())
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestIdentityFromClaims_AdminWithoutManager(t *testing.T) {
	got, err := IdentityFromClaims(map[string]interface{}{
		"id":           "adm-1",
		"role":         "admin",
		"reporting_to": nil,
	})
	require.NoError(t, err)
	assert.Nil(t, got.ReportingTo)
	assert.Equal(t, user.RoleAdmin, got.Role)
}

func TestIdentityFromClaims_Rejects(t *testing.T) {
	_, err := IdentityFromClaims(map[string]interface{}{"role": "admin"})
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = IdentityFromClaims(map[string]interface{}{"id": "x", "role": "owner"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{Email: "  Eve@Example.com ", Password: "secret"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "eve@example.com", req.Email)

	req = LoginRequest{}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
	assert.Contains(t, err.Error(), "password is required")
}
