package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/warelogix/warehouse-backend-go/internal/domain/auth"
	"github.com/warelogix/warehouse-backend-go/internal/domain/employee"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/jwt"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	employeeRepository employee.EmployeeRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepository,
		jwtService:         jwtService,
		googleService:      googleService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueToken(emp)
}

// GoogleAuthURL implements auth.AuthService.
func (a *AuthServiceImpl) GoogleAuthURL() string {
	return a.googleService.AuthURL()
}

// GoogleCallback implements auth.AuthService.
func (a *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.LoginResponse, error) {
	profile, err := a.googleService.Authenticate(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrOAuthExchangeFailed
	}
	if !profile.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, profile.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	return a.issueToken(emp)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(token string) {
	a.jwtService.RevokeToken(token)
}

func (a *AuthServiceImpl) issueToken(emp employee.Employee) (auth.LoginResponse, error) {
	if !emp.IsActive() {
		return auth.LoginResponse{}, employee.ErrEmployeeInactive
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(emp.ID, emp.NIC, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		EmployeeID:  emp.ID,
		FullName:    emp.FullName,
		Role:        string(emp.Role),
	}, nil
}
