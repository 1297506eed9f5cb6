package secrets

import (
	"encoding/hex"
	"strings"
)

const (
	// NonceSize is the GCM nonce length stored in every envelope.
	NonceSize = 16
	// TagSize is the GCM authentication tag length.
	TagSize = 16

	envelopeSeparator = ":"
)

// Envelope is the persisted form of an encrypted secret.
type Envelope struct {
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// String renders the envelope as "nonce:ciphertext:tag", each field lowercase hex.
func (e Envelope) String() string {
	return hex.EncodeToString(e.Nonce) +
		envelopeSeparator + hex.EncodeToString(e.Ciphertext) +
		envelopeSeparator + hex.EncodeToString(e.Tag)
}

// ParseEnvelope parses the "nonce:ciphertext:tag" text form.
// Anything that is not exactly three lowercase hex fields of the expected sizes is rejected.
func ParseEnvelope(s string) (Envelope, error) {
	parts := strings.Split(s, envelopeSeparator)
	if len(parts) != 3 {
		return Envelope{}, ErrInvalidEnvelope
	}

	nonce, err := decodeField(parts[0], NonceSize)
	if err != nil {
		return Envelope{}, err
	}
	ciphertext, err := decodeField(parts[1], 0)
	if err != nil {
		return Envelope{}, err
	}
	tag, err := decodeField(parts[2], TagSize)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{Nonce: nonce, Ciphertext: ciphertext, Tag: tag}, nil
}

// decodeField decodes one lowercase hex field. size 0 means any non-empty length.
func decodeField(field string, size int) ([]byte, error) {
	if field == "" || !isLowerHex(field) {
		return nil, ErrInvalidEnvelope
	}
	b, err := hex.DecodeString(field)
	if err != nil {
		return nil, ErrInvalidEnvelope
	}
	if size > 0 && len(b) != size {
		return nil, ErrInvalidEnvelope
	}
	return b, nil
}

func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
