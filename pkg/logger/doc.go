// Package logger builds *slog.Logger instances from functional options and provides
// attribute helpers so every component names its log fields the same way.
//
// New picks a text or JSON slog handler, attaches static attributes and wraps the handler
// with a handler that adds attributes extracted from the context of each record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "authenticator"),
//	    logger.WithContextExtractors(commandFromContext),
//	)
//	log.WarnContext(ctx, "skipping undecryptable account",
//	    logger.AccountID(rec.ID),
//	    logger.Error(err),
//	)
//
// Secrets, envelopes and keys are never passed to a logger; log identifiers only.
//
// Error and Errors return an empty attribute for nil errors, which slog drops.
package logger
