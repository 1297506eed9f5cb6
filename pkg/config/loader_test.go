package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authenticator/pkg/config"
)

type cipherConfig struct {
	EncryptionKey string `env:"CFG_CIPHER_KEY,required"`
}

type defaultsConfig struct {
	Period  int    `env:"CFG_DEFAULT_PERIOD" envDefault:"30"`
	Env     string `env:"CFG_DEFAULT_ENV" envDefault:"development"`
	Verbose bool   `env:"CFG_DEFAULT_VERBOSE" envDefault:"true"`
}

type singletonConfig struct {
	Value string `env:"CFG_SINGLETON" envDefault:"default_value"`
}

type firstConfig struct {
	Value string `env:"CFG_TYPE1" envDefault:"default1"`
}

type secondConfig struct {
	Value string `env:"CFG_TYPE2" envDefault:"default2"`
}

type retryConfig struct {
	Required string `env:"CFG_RETRY_REQUIRED,required"`
}

type fileConfig struct {
	EncryptionKey string   `env:"CFG_TEST_ENCRYPTION_KEY"`
	Period        int      `env:"CFG_TEST_PERIOD"`
	Tags          []string `env:"CFG_TEST_TAGS" envSeparator:","`
	Quoted        string   `env:"CFG_TEST_QUOTED"`
	OverrideOnly  string   `env:"CFG_TEST_OVERRIDE_ONLY"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("CFG_CIPHER_KEY", "passphrase")

	var cfg cipherConfig
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "passphrase", cfg.EncryptionKey)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("CFG_DEFAULT_PERIOD")
	os.Unsetenv("CFG_DEFAULT_ENV")
	os.Unsetenv("CFG_DEFAULT_VERBOSE")

	var cfg defaultsConfig
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Period)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.Verbose)
}

func TestLoad_MissingRequiredCanRetry(t *testing.T) {
	os.Unsetenv("CFG_RETRY_REQUIRED")

	var cfg retryConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("CFG_RETRY_REQUIRED", "now set")

	err = config.Load(&cfg)
	require.NoError(t, err)
	assert.Equal(t, "now set", cfg.Required)
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("CFG_SINGLETON", "first_value")

	var first singletonConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_SINGLETON", "second_value")

	var second singletonConfig
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first_value", second.Value, "second load is served from the cache")

	config.ResetCache()

	var third singletonConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second_value", third.Value, "reset forces a fresh parse")
}

func TestLoad_DifferentTypes(t *testing.T) {
	t.Setenv("CFG_TYPE1", "value1")
	t.Setenv("CFG_TYPE2", "value2")

	var cfg1 firstConfig
	require.NoError(t, config.Load(&cfg1))

	var cfg2 secondConfig
	require.NoError(t, config.Load(&cfg2))

	assert.Equal(t, "value1", cfg1.Value)
	assert.Equal(t, "value2", cfg2.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *cipherConfig
	err := config.Load(cfg)

	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	for _, key := range []string{"CFG_TEST_ENCRYPTION_KEY", "CFG_TEST_PERIOD", "CFG_TEST_TAGS", "CFG_TEST_QUOTED", "CFG_TEST_OVERRIDE_ONLY"} {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range []string{"CFG_TEST_ENCRYPTION_KEY", "CFG_TEST_PERIOD", "CFG_TEST_TAGS", "CFG_TEST_QUOTED", "CFG_TEST_OVERRIDE_ONLY"} {
			os.Unsetenv(key)
		}
	})
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test", "testdata/.env.override"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "from-file", cfg.EncryptionKey, "earlier files win")
	assert.Equal(t, 60, cfg.Period)
	assert.Equal(t, []string{"work", "personal"}, cfg.Tags)
	assert.Equal(t, "quoted value", cfg.Quoted)
	assert.Equal(t, "override", cfg.OverrideOnly)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does_not_exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
