package jwt

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", time.Hour)
	manager := "m1"

	token, expiresAt, err := svc.GenerateAccessToken(auth.Identity{
		ID: "e1", EmployeeCode: "E001", Email: "e@example.com", Role: user.RoleEmployee, ReportingTo: &manager, SessionID: "s1",
	})
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, "s1", claims["sid"])

	identity, err := auth.IdentityFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "e1", identity.ID)
	assert.Equal(t, "m1", *identity.ReportingTo)
}

func TestDecode_RejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, _, err := issuer.GenerateAccessToken(auth.Identity{ID: "e1", Role: user.RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(token)
	assert.Error(t, err)
}
