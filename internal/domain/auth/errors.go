package auth

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidToken          = errors.New("invalid or missing token")
	ErrManagerAccessRequired = errors.New("manager role required")
	ErrOAuthExchangeFailed   = errors.New("oauth code exchange failed")
)
