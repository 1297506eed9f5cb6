// Package qrcode renders otpauth:// provisioning URIs (or any text) as QR codes, so an
// account stored in the authenticator can be moved to another authenticator app.
//
// It wraps github.com/skip2/go-qrcode with medium error correction and offers three outputs:
// raw PNG bytes (Generate), a PNG data URI (GenerateBase64Image) and a terminal rendering
// (GenerateTerminal).
//
//	uri, _ := totp.GetTOTPURI(totp.TOTPParams{Secret: s, AccountName: "alice", Issuer: "Acme"})
//	img, err := qrcode.GenerateBase64Image(uri, 256)
//
// Empty content fails with ErrEmptyContent.
package qrcode
