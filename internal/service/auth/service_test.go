package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/warelogix/warehouse-backend-go/internal/domain/auth"
	"github.com/warelogix/warehouse-backend-go/internal/domain/employee"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/jwt"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/oauth"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByNIC(ctx context.Context, nic string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context, search string) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int, error) {
	return len(f.employees), nil
}

type fakeGoogleService struct {
	profile oauth.GoogleProfile
	err     error
}

func (f *fakeGoogleService) AuthURL() string {
	return "https://accounts.google.com/o/oauth2/auth?client_id=test"
}

func (f *fakeGoogleService) Authenticate(ctx context.Context, code string) (oauth.GoogleProfile, error) {
	if f.err != nil {
		return oauth.GoogleProfile{}, f.err
	}
	return f.profile, nil
}

func newTestService(t *testing.T) *AuthServiceImpl {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &fakeEmployeeRepo{employees: []employee.Employee{
		{
			ID:           "emp-1",
			FullName:     "Nimal Perera",
			NIC:          "902541230V",
			Email:        "nimal@warelogix.lk",
			PasswordHash: string(hash),
			Role:         employee.RoleManager,
			Status:       employee.StatusActive,
		},
		{
			ID:           "emp-2",
			FullName:     "Kamala Silva",
			Email:        "kamala@warelogix.lk",
			PasswordHash: string(hash),
			Role:         employee.RoleStaff,
			Status:       employee.StatusInactive,
		},
	}}

	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	return NewAuthService(repo, jwtService, nil)
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nimal@warelogix.lk",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "manager", resp.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nimal@warelogix.lk",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@warelogix.lk",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveEmployee(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "kamala@warelogix.lk",
		Password: "password123",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestLogin_InvalidPayload(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email"})
	assert.Error(t, err)
}

func TestGoogleCallback_VerifiedProfileLogsIn(t *testing.T) {
	svc := newTestService(t)
	svc.googleService = &fakeGoogleService{profile: oauth.GoogleProfile{
		GoogleID:      "google-123",
		Email:         "nimal@warelogix.lk",
		VerifiedEmail: true,
	}}

	resp, err := svc.GoogleCallback(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestGoogleCallback_ExchangeFailure(t *testing.T) {
	svc := newTestService(t)
	svc.googleService = &fakeGoogleService{err: fmt.Errorf("invalid_grant")}

	_, err := svc.GoogleCallback(context.Background(), "bad-code")
	assert.ErrorIs(t, err, auth.ErrOAuthExchangeFailed)
}

func TestGoogleCallback_UnverifiedEmail(t *testing.T) {
	svc := newTestService(t)
	svc.googleService = &fakeGoogleService{profile: oauth.GoogleProfile{
		Email: "nimal@warelogix.lk",
	}}

	_, err := svc.GoogleCallback(context.Background(), "auth-code")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestGoogleCallback_UnknownAccount(t *testing.T) {
	svc := newTestService(t)
	svc.googleService = &fakeGoogleService{profile: oauth.GoogleProfile{
		Email:         "stranger@example.com",
		VerifiedEmail: true,
	}}

	_, err := svc.GoogleCallback(context.Background(), "auth-code")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nimal@warelogix.lk",
		Password: "password123",
	})
	require.NoError(t, err)

	svc.Logout(resp.AccessToken)
	assert.True(t, svc.jwtService.IsTokenRevoked(resp.AccessToken))
}
