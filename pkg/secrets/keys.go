package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/scrypt"
)

const (
	// KeySize is the derived key size for AES-256.
	KeySize = 32

	// scrypt cost parameters and salt. Changing any of them makes every stored envelope undecryptable.
	scryptN  = 1 << 14
	scryptR  = 8
	scryptP  = 1
	saltInfo = "salt"
)

// DeriveKey stretches the operator passphrase into a 32-byte AES-256 key with scrypt.
// The salt is fixed, so the same passphrase always yields the same key.
func DeriveKey(passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrKeyNotSet
	}

	key, err := scrypt.Key([]byte(passphrase), []byte(saltInfo), scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}

// clearBytes zeros a slice holding key material once it is no longer needed.
func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GenerateKey creates a new random 32-byte key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrFailedToGenerateKey, err)
	}
	return key, nil
}

// GeneratePassphrase returns a random base64 passphrase suitable for the ENCRYPTION_KEY variable.
func GeneratePassphrase() (string, error) {
	key, err := GenerateKey()
	if err != nil {
		return "", err
	}
	defer clearBytes(key)
	return base64.StdEncoding.EncodeToString(key), nil
}
