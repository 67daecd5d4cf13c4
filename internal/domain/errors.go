package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without
// leaking infrastructure details.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")

	// Token codec / role gate.
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrInsufficientPermissions = errors.New("insufficient permissions for this action")

	// OTP ledger.
	ErrInvalidOTP      = errors.New("invalid or expired OTP")
	ErrTooManyAttempts = errors.New("too many OTP attempts, request a new code")

	// Google token introspection.
	ErrProviderUnreachable     = errors.New("unable to reach Google verification service")
	ErrAudienceMismatch        = errors.New("invalid Google token audience")
	ErrTokenVerificationFailed = errors.New("failed to verify Google token")

	// Credential verifiers.
	ErrInvalidPasscode  = errors.New("invalid admin passcode")
	ErrMissingTwoFactor = errors.New("valid 2FA code required")
	ErrInvalidAccessKey = errors.New("invalid recruiter access key")
)
