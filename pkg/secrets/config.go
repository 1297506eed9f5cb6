package secrets

import (
	"errors"
	"strings"
	"sync"

	"github.com/dmitrymomot/authenticator/pkg/config"
)

var (
	defaultCipher *Cipher
	defaultErr    error
	defaultOnce   sync.Once
)

type Config struct {
	EncryptionKey string `env:"ENCRYPTION_KEY,required"` // Passphrase the AES-256 key is derived from
}

// LoadConfig reads the cipher configuration from the environment (and .env, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, errors.Join(ErrKeyNotSet, err)
	}
	if strings.TrimSpace(cfg.EncryptionKey) == "" {
		return Config{}, ErrKeyNotSet
	}
	return cfg, nil
}

// Default returns the process-wide Cipher built from ENCRYPTION_KEY.
// The key is derived on the first call only; the result, including a failure, is kept for the
// process lifetime. Call it at startup to fail fast on missing configuration.
func Default() (*Cipher, error) {
	defaultOnce.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			defaultErr = errors.Join(ErrEncryption, err)
			return
		}
		defaultCipher, defaultErr = New(cfg.EncryptionKey)
	})
	return defaultCipher, defaultErr
}
