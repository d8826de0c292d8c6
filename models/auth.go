package models

import "time"

// RegisterRequest is the payload of POST /api/v1/auth/register.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest is the payload of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the expired-but-signed access token together with
// the opaque refresh token previously handed to the client.
type RefreshRequest struct {
	Token        string `json:"token" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthSession is the response of the register, login and refresh endpoints:
// a fresh token pair plus the owning profile.
type AuthSession struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	User         Profile   `json:"user"`
}

// SetupPinRequest is the payload of POST /api/v1/auth/pin/setup.
type SetupPinRequest struct {
	Pin        string `json:"pin"`
	ConfirmPin string `json:"confirmPin"`
}

// VerifyPinRequest is the payload of POST /api/v1/auth/pin/verify.
type VerifyPinRequest struct {
	Pin string `json:"pin"`
}

// ChangePinRequest is the payload of POST /api/v1/auth/pin/change.
type ChangePinRequest struct {
	CurrentPin string `json:"currentPin"`
	NewPin     string `json:"newPin"`
	ConfirmPin string `json:"confirmPin"`
}
