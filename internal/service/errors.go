package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrPinTooShort = errors.New("pin must be at least 4 digits")
	ErrPinMismatch = errors.New("pin values do not match")
	ErrWrongPin    = errors.New("wrong current pin")
)
