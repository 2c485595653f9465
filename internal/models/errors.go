package models

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicateUsername  = errors.New("models: duplicate username")
	ErrDuplicateInquiry   = errors.New("models: duplicate inquiry")
	ErrPasswordMismatch   = errors.New("models: passwords do not match")
	ErrListingNotFound    = errors.New("listing not found")
	ErrRealtorNotFound    = errors.New("realtor not found")
	ErrUserNotFound       = errors.New("models: user not found")
)
