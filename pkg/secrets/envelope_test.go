package secrets_test

import (
	"testing"

	"github.com/dmitrymomot/authenticator/pkg/secrets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	t.Parallel()
	env, err := secrets.ParseEnvelope(nodeEnvelope)
	require.NoError(t, err)
	assert.Len(t, env.Nonce, secrets.NonceSize)
	assert.Len(t, env.Ciphertext, 16)
	assert.Len(t, env.Tag, secrets.TagSize)
	assert.Equal(t, nodeEnvelope, env.String())
}

func TestParseEnvelope_Invalid(t *testing.T) {
	t.Parallel()
	for _, s := range []string{
		"",
		"malformed",
		"::",
		"00:00:00",
		"000102030405060708090a0b0c0d0e0f:b59231b4:5be9d503f6fdd4c526e0553c3e74b19",
		"000102030405060708090a0b0c0d0e0f:B59231B4:5be9d503f6fdd4c526e0553c3e74b195",
		"000102030405060708090a0b0c0d0e0f:b59231b4:5be9d503f6fdd4c526e0553c3e74b195:",
	} {
		_, err := secrets.ParseEnvelope(s)
		assert.ErrorIs(t, err, secrets.ErrInvalidEnvelope, s)
	}
}
