// Package secrets protects TOTP seeds at rest with authenticated encryption.
//
// A 32-byte key is derived once from an operator passphrase with scrypt (N=16384, r=8, p=1,
// fixed salt) and used with AES-256 in GCM mode with a 16-byte nonce. Every Encrypt call draws a
// fresh nonce from crypto/rand, so encrypting the same plaintext twice yields different envelopes.
//
// # Envelope format
//
// Encrypted values are stored as text:
//
//	<32 hex chars nonce>:<hex ciphertext>:<32 hex chars tag>
//
// All fields are lowercase hex. The ciphertext is as long as the plaintext, so its hex form is twice
// the plaintext byte length. Values in any other shape fail to decrypt.
//
// # Usage
//
//	c, err := secrets.Default() // reads ENCRYPTION_KEY, derives the key once
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	env, err := c.Encrypt("JBSWY3DPEHPK3PXP")
//	if err != nil {
//	    return err // never persist an empty envelope
//	}
//
//	plain, err := c.Decrypt(env)
//	if errors.Is(err, secrets.ErrDecryption) {
//	    // corrupted or tampered record: skip it
//	}
//
// Services that prefer explicit wiring construct a Cipher with New(passphrase) and inject it.
//
// # Error Handling
//
// Failures carry one of two kinds, ErrEncryption or ErrDecryption, joined with the cause
// (ErrKeyNotSet, ErrEmptyPlaintext, ErrInvalidEnvelope or the AEAD error). Errors never include
// plaintext, passphrase or key bytes.
package secrets
