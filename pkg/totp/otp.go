package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultDigits    = 6      // Standard 6-digit TOTP codes
	DefaultPeriod    = 30     // 30-second validity window (RFC 6238 standard)
	DefaultAlgorithm = "SHA1" // HMAC-SHA1 algorithm (RFC 6238 standard)

	MinPeriod = 15  // Shortest period accepted for stored accounts
	MaxPeriod = 120 // Longest period accepted for stored accounts

	// Placeholder is what presentation code shows instead of a code it could not compute.
	Placeholder = "------"
)

// TOTPParams contains the parameters for TOTP URI generation
type TOTPParams struct {
	Secret      string // Base32-encoded TOTP secret key (required)
	AccountName string // User identifier like email (required)
	Issuer      string // Service name displayed in authenticator apps (required)
	Algorithm   string // HMAC algorithm (optional, defaults to SHA1)
	Digits      int    // Number of digits in generated codes (optional, defaults to 6)
	Period      int    // Code validity period in seconds (optional, defaults to 30)
}

// Validate ensures all required TOTP parameters are present and valid
func (p TOTPParams) Validate() error {
	if p.Secret == "" {
		return ErrMissingSecret
	}
	if err := ValidateSecret(p.Secret); err != nil {
		return err
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// GetDefaults returns a copy with RFC 6238 standard defaults applied to zero-valued fields
func (p TOTPParams) GetDefaults() TOTPParams {
	if p.Algorithm == "" {
		p.Algorithm = DefaultAlgorithm
	}
	if p.Digits == 0 {
		p.Digits = DefaultDigits
	}
	p.Period = NormalizePeriod(p.Period)
	return p
}

// GetTOTPURI creates a properly encoded TOTP URI for use with authenticator apps.
// The URI format follows the Key Uri Format specification:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
func GetTOTPURI(params TOTPParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	params = params.GetDefaults()

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.AccountName),
	)

	query := url.Values{}
	query.Set("secret", NormalizeSecret(params.Secret))
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", params.Algorithm)
	query.Set("digits", strconv.Itoa(params.Digits))
	query.Set("period", strconv.Itoa(params.Period))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}

// NormalizePeriod returns period when it lies within MinPeriod..MaxPeriod and DefaultPeriod otherwise.
func NormalizePeriod(period int) int {
	if period < MinPeriod || period > MaxPeriod {
		return DefaultPeriod
	}
	return period
}

// GenerateCode generates the code for the time step containing the current wall-clock time.
// A non-positive period falls back to DefaultPeriod.
func GenerateCode(secret string, period int) (string, error) {
	return GenerateCodeAt(secret, period, time.Now())
}

// GenerateCodeAt generates the code for the time step containing t.
func GenerateCodeAt(secret string, period int, t time.Time) (string, error) {
	key, err := DecodeSecret(secret)
	if err != nil {
		return "", err
	}
	return formatCode(GenerateHOTP(key, Counter(t.Unix(), period), DefaultDigits), DefaultDigits), nil
}

// Counter returns the RFC 6238 time step floor(unix/period).
// Steps before the epoch are negative and wrap to their two's complement uint64 value.
func Counter(unix int64, period int) uint64 {
	if period <= 0 {
		period = DefaultPeriod
	}
	p := int64(period)
	step := unix / p
	if unix%p != 0 && unix < 0 {
		step--
	}
	return uint64(step)
}

// GenerateHOTP implements RFC 4226 HMAC-based One-Time Password algorithm.
// The algorithm converts a counter value into a numeric code using HMAC-SHA1.
func GenerateHOTP(key []byte, counter uint64, digits int) int {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// Dynamic truncation: low nibble of the last byte picks the 4-byte window, MSB masked off.
	offset := sum[len(sum)-1] & 0x0f
	code := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return int(uint64(code) % uint64(math.Pow10(digits)))
}

func formatCode(code, digits int) string {
	return fmt.Sprintf("%0*d", digits, code)
}
