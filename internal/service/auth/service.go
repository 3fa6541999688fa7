package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if emp.Status != employee.StatusActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	sessionID := uuid.Must(uuid.NewV7()).String()
	if err := a.EmployeeRepository.SetSession(ctx, emp.ID, &sessionID); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to start session: %w", err)
	}

	identity := auth.Identity{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		Email:        emp.Email,
		Username:     emp.Username,
		Role:         emp.Role,
		ReportingTo:  emp.ReportingTo,
		SessionID:    sessionID,
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(identity)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	slog.Info("Employee logged in", "employee_id", emp.ID, "role", emp.Role)

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		TokenType:            "Bearer",
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, caller auth.Identity) error {
	if err := a.EmployeeRepository.SetSession(ctx, caller.ID, nil); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.ErrSessionEnded
		}
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}
