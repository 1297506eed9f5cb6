package totp_test

import (
	"testing"

	"github.com/dmitrymomot/authenticator/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecretKey(t *testing.T) {
	t.Parallel()
	secret, err := totp.GenerateSecretKey()
	require.NoError(t, err)
	assert.Len(t, secret, 32) // 20 bytes without padding
	assert.Regexp(t, totp.ValidateSecretKeyRegex, secret)

	other, err := totp.GenerateSecretKey()
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestDecodeSecret(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		secret  string
		want    []byte
		wantErr bool
	}{
		{name: "Canonical", secret: "GEZDGNBVGY3TQOJQ", want: []byte("1234567890")},
		{name: "Lowercase", secret: "gezdgnbvgy3tqojq", want: []byte("1234567890")},
		{name: "Grouped", secret: "GEZD GNBV GY3T QOJQ", want: []byte("1234567890")},
		{name: "Padded", secret: "JBSWY3DPEE======", want: []byte("Hello!")},
		{name: "Unpadded", secret: "JBSWY3DPEE", want: []byte("Hello!")},
		{name: "Empty", secret: "", wantErr: true},
		{name: "Hyphen", secret: "GEZD-GNBV", wantErr: true},
		{name: "Zero byte result", secret: "=", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := totp.DecodeSecret(tt.secret)
			if tt.wantErr {
				require.ErrorIs(t, err, totp.ErrInvalidSecret)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeSecret_EmptyIsMissing(t *testing.T) {
	t.Parallel()
	_, err := totp.DecodeSecret(" ")
	assert.ErrorIs(t, err, totp.ErrMissingSecret)
	assert.ErrorIs(t, err, totp.ErrInvalidSecret)
}

func TestNormalizeSecret(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "JBSWY3DPEHPK3PXP", totp.NormalizeSecret(" jbsw y3dp\tehpk 3pxp\n"))
	assert.Equal(t, "IıSſ", totp.NormalizeSecret("iısſ"))
}

func TestValidateSecret(t *testing.T) {
	t.Parallel()
	assert.NoError(t, totp.ValidateSecret("JBSWY3DPEHPK3PXP"))
	assert.ErrorIs(t, totp.ValidateSecret("not-base32!!"), totp.ErrInvalidSecret)
}
