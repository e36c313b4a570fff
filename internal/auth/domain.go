// Package auth implements credential issuance against the backend and the
// local session lifecycle around it.
package auth

// LoginRequest is the POST /auth/login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the POST /auth/register payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ForgotPasswordRequest is the POST /auth/forgot-password payload.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenResponse carries the issued bearer credential.
type TokenResponse struct {
	Token string `json:"token"`
}
