package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/authenticator/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandExtractor(t *testing.T) {
	t.Parallel()
	_, ok := commandExtractor(context.Background())
	assert.False(t, ok)

	attr, ok := commandExtractor(withCommand(context.Background(), "accounts list"))
	require.True(t, ok)
	assert.Equal(t, "command", attr.Key)
	assert.Equal(t, "accounts list", attr.Value.String())
}

func TestTrack(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	a := &app{log: logger.New(
		logger.WithOutput(buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(commandExtractor),
	)}

	errBoom := errors.New("boom")
	list := &cli.Command{
		Name: "list",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a.log.InfoContext(ctx, "listing")
			return nil
		},
	}
	fail := &cli.Command{
		Name:   "fail",
		Action: func(context.Context, *cli.Command) error { return errBoom },
	}
	cmds := []*cli.Command{{Name: "accounts", Commands: []*cli.Command{list}}, fail}
	a.track(cmds)

	require.NoError(t, list.Action(context.Background(), list))
	assert.ErrorIs(t, fail.Action(context.Background(), fail), errBoom)

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	require.Len(t, entries, 3)

	assert.Equal(t, "listing", entries[0]["msg"])
	assert.Equal(t, "list", entries[0]["command"])

	assert.Equal(t, "command finished", entries[1]["msg"])
	assert.Equal(t, "list", entries[1]["command"])
	assert.Contains(t, entries[1], "duration")
	assert.NotContains(t, entries[1], "error")

	assert.Equal(t, "fail", entries[2]["command"])
	assert.Equal(t, "boom", entries[2]["error"])
}
