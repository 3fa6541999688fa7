package auth

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hrms-core-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

func setup(t *testing.T, status employee.Status) (auth.AuthService, *memory.EmployeeRepository, jwt.Service, employee.Employee) {
	t.Helper()
	repo := memory.NewEmployeeRepository()
	jwtService := jwt.NewJWTService(testSecret, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	manager := "m1"
	emp, err := repo.Create(context.Background(), employee.Employee{
		EmployeeCode: "E001",
		Username:     "neo",
		Email:        "neo@example.com",
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
		Status:       status,
		ReportingTo:  &manager,
	})
	require.NoError(t, err)

	return NewAuthService(repo, jwtService), repo, jwtService, emp
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	svc, repo, jwtService, emp := setup(t, employee.StatusActive)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "NEO@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)

	token, err := jwtService.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	claims, err := token.AsMap(ctx)
	require.NoError(t, err)
	identity, err := auth.IdentityFromClaims(claims)
	require.NoError(t, err)

	assert.Equal(t, emp.ID, identity.ID)
	assert.Equal(t, "m1", *identity.ReportingTo)

	active, err := repo.IsSessionActive(ctx, emp.ID, identity.SessionID)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestLogin_RotatesSession(t *testing.T) {
	ctx := context.Background()
	svc, repo, jwtService, emp := setup(t, employee.StatusActive)

	sid := func(token string) string {
		decoded, err := jwtService.JWTAuth().Decode(token)
		require.NoError(t, err)
		v, _ := decoded.Get("sid")
		return v.(string)
	}

	first, err := svc.Login(ctx, auth.LoginRequest{Email: "neo@example.com", Password: "password123"})
	require.NoError(t, err)
	second, err := svc.Login(ctx, auth.LoginRequest{Email: "neo@example.com", Password: "password123"})
	require.NoError(t, err)

	stale, err := repo.IsSessionActive(ctx, emp.ID, sid(first.AccessToken))
	require.NoError(t, err)
	assert.False(t, stale)

	current, err := repo.IsSessionActive(ctx, emp.ID, sid(second.AccessToken))
	require.NoError(t, err)
	assert.True(t, current)
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()

	svc, _, _, _ := setup(t, employee.StatusActive)
	_, err := svc.Login(ctx, auth.LoginRequest{Email: "neo@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	inactive, _, _, _ := setup(t, employee.StatusDeactive)
	_, err = inactive.Login(ctx, auth.LoginRequest{Email: "neo@example.com", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestLogout_EndsSession(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, emp := setup(t, employee.StatusActive)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "neo@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, auth.Identity{ID: emp.ID, Role: user.RoleEmployee}))

	stored, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.SessionID)
}
