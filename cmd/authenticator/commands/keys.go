// Package commands implements the authenticator CLI commands.
// Every command writes its result to the given io.Writer so it can be tested.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrymomot/authenticator/pkg/secrets"
	"github.com/dmitrymomot/authenticator/pkg/totp"
)

// RunKeygen prints a random passphrase ready to be used as ENCRYPTION_KEY.
func RunKeygen(w io.Writer) error {
	passphrase, err := secrets.GeneratePassphrase()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "ENCRYPTION_KEY=%s\n", passphrase)
	return err
}

// RunNewSecret prints a random Base32 TOTP secret.
func RunNewSecret(w io.Writer) error {
	secret, err := totp.GenerateSecretKey()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, secret)
	return err
}

// RunCode prints the code for secret at now and the seconds left before it rotates.
func RunCode(w io.Writer, secret string, period int, now time.Time) error {
	code, err := totp.GenerateCodeAt(secret, period, now)
	if err != nil {
		return err
	}
	st := totp.Status(period, now.Unix())
	_, err = fmt.Fprintf(w, "%s (%ds remaining)\n", code, st.TimeRemaining)
	return err
}

// RunEncrypt prints the envelope for text.
func RunEncrypt(w io.Writer, cipher *secrets.Cipher, text string) error {
	envelope, err := cipher.Encrypt(text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, envelope)
	return err
}

// RunDecrypt prints the plaintext sealed in envelope.
func RunDecrypt(w io.Writer, cipher *secrets.Cipher, envelope string) error {
	plain, err := cipher.Decrypt(envelope)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, plain)
	return err
}

// RunPing runs check and reports the result.
func RunPing(ctx context.Context, w io.Writer, check func(context.Context) error) error {
	if err := check(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "ok")
	return err
}
