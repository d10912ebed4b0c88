package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_FieldsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Warn(ctx, "wrn", "err", errors.New("boom"))
	log.Info(ctx, "odd", "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "dbg", lines[0]["message"])
	assert.EqualValues(t, 1, lines[0]["a"])

	assert.Equal(t, "warn", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["err"])

	assert.Equal(t, "!MISSING", lines[2]["dangling"])
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf)).With("component", "session")

	log.Error(context.Background(), "exchange failed", "status", 400)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "session", lines[0]["component"])
	assert.EqualValues(t, 400, lines[0]["status"])
}

func TestNew_Formats(t *testing.T) {
	t.Run("json respects level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, "json", false)
		log.Debug(context.Background(), "hidden")
		log.Info(context.Background(), "shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"message":"shown"`)
	})

	t.Run("text uses slog", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, "text", true)
		_, ok := log.(*SlogLogger)
		require.True(t, ok)
		log.Debug(context.Background(), "dbg")
		assert.Contains(t, buf.String(), "level=DEBUG")
	})

	t.Run("console default", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, "", false)
		_, ok := log.(*ZerologLogger)
		require.True(t, ok)
		log.Info(context.Background(), "hello", "k", "v")
		assert.Contains(t, buf.String(), "hello")
		assert.Contains(t, buf.String(), "k=")
	})
}
