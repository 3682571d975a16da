package auth

import "context"

type AuthService interface {
	// Login verifies email/password credentials and issues an access
	// token for the employee.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// GoogleAuthURL returns the Google consent screen URL for the SSO
	// flow.
	GoogleAuthURL() string

	// GoogleCallback exchanges the authorization code, resolves the
	// Google account to an employee and issues an access token.
	GoogleCallback(ctx context.Context, code string) (LoginResponse, error)

	// Logout revokes the given access token.
	Logout(token string)
}
