package totp

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// secretLength is 160 bits, the RFC 4226 recommendation.
const secretLength = 20

var (
	// ValidateSecretKeyRegex matches a normalized Base32 secret: uppercase A-Z, digits 2-7, optional padding.
	ValidateSecretKeyRegex = regexp.MustCompile("^[A-Z2-7]+=*$")

	b32 = base32.StdEncoding.WithPadding(base32.NoPadding)
)

// NormalizeSecret upper-cases ASCII letters and strips all whitespace,
// so "jbsw y3dp" and "JBSWY3DP" are the same key. Other runes are kept as is
// and fail validation later.
func NormalizeSecret(secret string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case 'a' <= r && r <= 'z':
			return r - ('a' - 'A')
		}
		return r
	}, secret)
}

// DecodeSecret turns Base32 text into the raw HMAC key.
// Input is case-insensitive, whitespace-tolerant and may carry trailing padding.
func DecodeSecret(secret string) ([]byte, error) {
	secret = NormalizeSecret(secret)
	if secret == "" {
		return nil, errors.Join(ErrInvalidSecret, ErrMissingSecret)
	}
	if !ValidateSecretKeyRegex.MatchString(secret) {
		return nil, ErrInvalidSecret
	}

	key, err := b32.DecodeString(strings.TrimRight(secret, "="))
	if err != nil {
		return nil, errors.Join(ErrInvalidSecret, err)
	}
	if len(key) == 0 {
		return nil, ErrInvalidSecret
	}
	return key, nil
}

// ValidateSecret reports whether the secret can be used to generate codes.
func ValidateSecret(secret string) error {
	_, err := DecodeSecret(secret)
	return err
}

// GenerateSecretKey generates a new Base32-encoded secret key for TOTP.
func GenerateSecretKey() (string, error) {
	secret := make([]byte, secretLength)
	if _, err := rand.Read(secret); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecretKey, err)
	}
	return b32.EncodeToString(secret), nil
}
