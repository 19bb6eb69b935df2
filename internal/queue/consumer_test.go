package queue

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMessageAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "activity.log")
	c := &ActivityConsumer{LogPath: path, Log: zerolog.Nop()}

	require.NoError(t, c.handleMessage([]byte(`{"type":"movie.created","user_id":"u1","movie_id":"m1","title":"Heat","occurred_at":"2026-01-02T03:04:05Z"}`)))
	require.NoError(t, c.handleMessage([]byte(`{"type":"user.signed_up","user_id":"u1","occurred_at":"2026-01-02T03:04:06Z"}`)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `[2026-01-02T03:04:05Z] movie.created | user_id=u1 | movie_id=m1 | title="Heat"`, lines[0])
	assert.Equal(t, `[2026-01-02T03:04:06Z] user.signed_up | user_id=u1`, lines[1])
}

func TestHandleMessageRejectsBadPayload(t *testing.T) {
	c := &ActivityConsumer{LogPath: filepath.Join(t.TempDir(), "activity.log"), Log: zerolog.Nop()}
	assert.Error(t, c.handleMessage([]byte("not json")))
	assert.Error(t, c.handleMessage([]byte(`{"user_id":"u1"}`)))
}

func TestNewActivityEvent(t *testing.T) {
	ev := NewActivityEvent(EventMovieDeleted, "u1", "m1", "")
	assert.Equal(t, "movie.deleted", ev.Type)
	assert.NotEmpty(t, ev.OccurredAt)
}
