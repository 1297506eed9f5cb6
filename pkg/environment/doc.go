// Package environment names the deployment environment (development, staging,
// production) from an APP_ENV value.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
package environment
