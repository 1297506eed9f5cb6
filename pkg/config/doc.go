// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - .env files are loaded into the process environment (the default `.env`
//     automatically, others through LoadEnv).
//   - Environment variables are parsed into any struct using `env` tags.
//   - Each configuration type is parsed once and cached for the process lifetime.
//
// # Usage
//
//	type MongoConfig struct {
//	    URL      string `env:"MONGODB_URL,required"`
//	    Database string `env:"MONGODB_DATABASE" envDefault:"authenticator"`
//	}
//
//	var cfg MongoConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// A failed parse is not cached, so Load can be retried once the environment is fixed.
//
// # Error Handling
//
//   - ErrParsingConfig   – env vars could not be parsed (missing required value, bad format).
//   - ErrNilPointer      – nil pointer passed to Load.
//   - ErrConfigNotLoaded – a concurrent load failed.
//   - ErrLoadingEnvFile  – a .env file given to LoadEnv could not be read.
//
// Use ResetCache in tests to force a fresh parse.
package config
