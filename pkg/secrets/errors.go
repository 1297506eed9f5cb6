package secrets

import "errors"

var (
	// Error kinds callers branch on.
	ErrEncryption = errors.New("failed to encrypt secret")
	ErrDecryption = errors.New("failed to decrypt secret")

	// Causes joined with the kinds above.
	ErrKeyNotSet           = errors.New("encryption key not set")
	ErrInvalidKey          = errors.New("invalid key: must be 32 bytes")
	ErrKeyDerivationFailed = errors.New("key derivation failed")
	ErrEmptyPlaintext      = errors.New("plaintext is empty")
	ErrInvalidEnvelope     = errors.New("invalid envelope format")
	ErrFailedToGenerateKey = errors.New("failed to generate key")
)
