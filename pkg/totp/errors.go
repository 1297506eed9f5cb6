package totp

import "errors"

var (
	ErrInvalidSecret             = errors.New("invalid secret")
	ErrMissingSecret             = errors.New("missing secret")
	ErrMissingAccountName        = errors.New("missing account name")
	ErrMissingIssuer             = errors.New("missing issuer")
	ErrFailedToGenerateSecretKey = errors.New("failed to generate TOTP secret key")
)
