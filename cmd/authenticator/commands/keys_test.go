package commands_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrymomot/authenticator/cmd/authenticator/commands"
	"github.com/dmitrymomot/authenticator/pkg/secrets"
	"github.com/dmitrymomot/authenticator/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunKeygen(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	require.NoError(t, commands.RunKeygen(&out))

	line := strings.TrimSpace(out.String())
	passphrase, ok := strings.CutPrefix(line, "ENCRYPTION_KEY=")
	require.True(t, ok, line)
	raw, err := base64.StdEncoding.DecodeString(passphrase)
	require.NoError(t, err)
	assert.Len(t, raw, secrets.KeySize)
}

func TestRunNewSecret(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	require.NoError(t, commands.RunNewSecret(&out))

	secret := strings.TrimSpace(out.String())
	assert.NoError(t, totp.ValidateSecret(secret))
}

func TestRunCode(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	require.NoError(t, commands.RunCode(&out, "GEZDGNBVGY3TQOJQ", 30, time.Unix(1700000005, 0)))
	assert.Equal(t, "017492 (5s remaining)\n", out.String())

	err := commands.RunCode(&out, "not-base32!!", 30, time.Now())
	assert.ErrorIs(t, err, totp.ErrInvalidSecret)
}

func TestRunEncryptDecrypt(t *testing.T) {
	t.Parallel()
	cipher, err := secrets.New("cli tests")
	require.NoError(t, err)

	var enc bytes.Buffer
	require.NoError(t, commands.RunEncrypt(&enc, cipher, "JBSWY3DPEHPK3PXP"))
	envelope := strings.TrimSpace(enc.String())

	var dec bytes.Buffer
	require.NoError(t, commands.RunDecrypt(&dec, cipher, envelope))
	assert.Equal(t, "JBSWY3DPEHPK3PXP\n", dec.String())

	err = commands.RunDecrypt(&dec, cipher, "malformed")
	assert.ErrorIs(t, err, secrets.ErrDecryption)
}

func TestRunPing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, commands.RunPing(ctx, &out, func(context.Context) error { return nil }))
	assert.Equal(t, "ok\n", out.String())

	errDown := errors.New("connection refused")
	err := commands.RunPing(ctx, &out, func(context.Context) error { return errDown })
	assert.ErrorIs(t, err, errDown)
}
