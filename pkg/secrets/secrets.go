package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
)

// Cipher encrypts and decrypts secrets with AES-256-GCM under one derived key.
// The key is fixed at construction, so a Cipher is safe for concurrent use.
type Cipher struct {
	aead cipher.AEAD
}

// New derives the key from passphrase and returns a ready Cipher.
// scrypt makes this take tens of milliseconds; build one Cipher per process and share it.
func New(passphrase string) (*Cipher, error) {
	key, err := DeriveKey(passphrase)
	if err != nil {
		return nil, errors.Join(ErrEncryption, err)
	}
	defer clearBytes(key)
	return NewWithKey(key)
}

// NewWithKey builds a Cipher from an already derived 32-byte key.
func NewWithKey(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, errors.Join(ErrEncryption, ErrInvalidKey)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrEncryption, err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, errors.Join(ErrEncryption, err)
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce and returns the envelope text.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if c == nil || c.aead == nil {
		return "", errors.Join(ErrEncryption, ErrKeyNotSet)
	}
	if plaintext == "" {
		return "", errors.Join(ErrEncryption, ErrEmptyPlaintext)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrEncryption, err)
	}

	// Seal appends the tag to the ciphertext; the envelope stores them as separate fields.
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	split := len(sealed) - c.aead.Overhead()

	return Envelope{
		Nonce:      nonce,
		Ciphertext: sealed[:split],
		Tag:        sealed[split:],
	}.String(), nil
}

// Decrypt opens an envelope produced by Encrypt.
// Malformed input and authentication failures both fail with ErrDecryption; no partial plaintext is returned.
func (c *Cipher) Decrypt(envelope string) (string, error) {
	if c == nil || c.aead == nil {
		return "", errors.Join(ErrDecryption, ErrKeyNotSet)
	}

	env, err := ParseEnvelope(envelope)
	if err != nil {
		return "", errors.Join(ErrDecryption, err)
	}

	sealed := make([]byte, 0, len(env.Ciphertext)+len(env.Tag))
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.Tag...)

	plaintext, err := c.aead.Open(nil, env.Nonce, sealed, nil)
	if err != nil {
		return "", errors.Join(ErrDecryption, err)
	}
	return string(plaintext), nil
}
