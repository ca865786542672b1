package intake

import "errors"

// Sentinel errors for the intake service layer.
var (
	ErrNotFound          = errors.New("case not found")
	ErrEmailRejected     = errors.New("submitter email failed validation")
	ErrInvalidTransition = errors.New("illegal case status transition")
)
