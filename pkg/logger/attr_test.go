package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrymomot/authenticator/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestErrorAttrs(t *testing.T) {
	t.Parallel()
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
}

func TestIdentifierAttrs(t *testing.T) {
	t.Parallel()
	assert.True(t, logger.AccountID("").Equal(slog.Attr{}))
	assert.True(t, logger.UserID("").Equal(slog.Attr{}))

	assert.Equal(t, "account_id", logger.AccountID("a1").Key)
	assert.Equal(t, "a1", logger.AccountID("a1").Value.String())
	assert.Equal(t, "u1", logger.UserID("u1").Value.String())
}

func TestValueAttrs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(3), logger.Count(3).Value.Int64())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
	assert.Equal(t, "accounts", logger.Component("accounts").Value.String())
	assert.Equal(t, "code", logger.Command("code").Value.String())
}
