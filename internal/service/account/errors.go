package account

import "errors"

// Sentinel errors for the account service layer.
var (
	ErrNotFound      = errors.New("account not found")
	ErrEmailTaken    = errors.New("email address already registered")
	ErrEmailRejected = errors.New("email address failed validation")
)
