package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-catalog/internal/logger"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("WritesJSON", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, "info")
		log.Info().Str("component", "test").Msg("hello")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["message"])
		assert.Equal(t, "test", line["component"])
		assert.Contains(t, line, "time")
	})

	t.Run("RespectsLevel", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, "warn")
		log.Info().Msg("dropped")
		assert.Zero(t, buf.Len())
	})

	t.Run("UnknownLevelFallsBackToInfo", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, "chatty")
		log.Debug().Msg("dropped")
		log.Info().Msg("kept")
		assert.Contains(t, buf.String(), "kept")
		assert.NotContains(t, buf.String(), "dropped")
	})
}
