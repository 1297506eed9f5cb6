// Package totp generates Time-based One-Time Passwords (RFC 6238) for the accounts
// stored in the authenticator, together with the countdown data needed to render them.
//
// The package is a set of pure functions over a Base32 secret, a period and an instant.
// It holds no state, so every function is safe for concurrent use without locking.
//
// # Architecture
//
//   • secret – secret.go normalizes and decodes Base32 secrets (DecodeSecret, ValidateSecret)
//     and creates new ones (GenerateSecretKey).
//
//   • otp    – otp.go implements HOTP (GenerateHOTP, RFC 4226) and TOTP on top of it
//     (GenerateCode, GenerateCodeAt), plus otpauth:// URI construction (GetTOTPURI).
//
//   • status – status.go computes the countdown for a step (Status) and evaluates a batch
//     of accounts against one captured instant (GenerateCodes).
//
// Codes are always DefaultDigits (6) characters long and use HMAC-SHA1, which is what every
// mainstream authenticator app expects.
//
// # Usage
//
//	code, err := totp.GenerateCode("JBSWY3DPEHPK3PXP", 30)
//	if errors.Is(err, totp.ErrInvalidSecret) {
//	    // reject the account form
//	}
//
//	st := totp.Status(30, time.Now().Unix())
//	fmt.Printf("%s (%ds left)\n", code, st.TimeRemaining)
//
//	codes := totp.GenerateCodes([]totp.Account{
//	    {ID: "a", Secret: "JBSWY3DPEHPK3PXP", Period: 30},
//	    {ID: "b", Secret: "GEZDGNBVGY3TQOJQ", Period: 60},
//	}, time.Now())
//
// # Error Handling
//
// Malformed secrets fail with an error matching ErrInvalidSecret via errors.Is. The package never
// substitutes a placeholder for a failed code; Placeholder is exported for the presentation layer.
//
// # See Also
//
//   • RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   • RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package totp
