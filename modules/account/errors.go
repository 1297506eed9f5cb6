package account

import "errors"

var (
	ErrMissingUserID = errors.New("account: user id is required")
	ErrMissingID     = errors.New("account: account id is required")
	ErrMissingName   = errors.New("account: name is required")
	ErrMissingIssuer = errors.New("account: issuer is required")
	ErrInvalidSecret = errors.New("account: invalid base32 secret")
	ErrInvalidPeriod = errors.New("account: period must be between 15 and 120 seconds")
	ErrNotFound      = errors.New("account: not found")
	ErrAlreadyExists = errors.New("account: already exists")
	ErrEmptyEnvelope = errors.New("account: cipher returned an empty envelope")
)
