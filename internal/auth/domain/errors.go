package domain

import "errors"

// LoginFailedMessage is the only text shown for a failed sign-in.
const LoginFailedMessage = "Failed to login. Please check your credentials."

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)
