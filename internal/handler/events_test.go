package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-catalog/internal/queue"
)

type failingPublisher struct {
	got chan queue.ActivityEvent
}

func (p *failingPublisher) Publish(_ context.Context, ev queue.ActivityEvent) error {
	p.got <- ev
	return errors.New("rabbitmq: dial: connection refused")
}

// lineWriter hands every log line to a channel.
type lineWriter chan string

func (w lineWriter) Write(b []byte) (int, error) {
	w <- string(b)
	return len(b), nil
}

func TestEmitLogsFailedPublishOnce(t *testing.T) {
	lines := make(lineWriter, 4)
	pub := &failingPublisher{got: make(chan queue.ActivityEvent, 1)}
	em := emitter{pub: pub, log: zerolog.New(lines)}

	em.emit(queue.NewActivityEvent(queue.EventMovieDeleted, "u1", "m1", ""))

	select {
	case ev := <-pub.got:
		assert.Equal(t, queue.EventMovieDeleted, ev.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}
	select {
	case line := <-lines:
		assert.Contains(t, line, "activity event dropped")
		assert.Contains(t, line, "connection refused")
		assert.Contains(t, line, `"event":"movie.deleted"`)
	case <-time.After(2 * time.Second):
		t.Fatal("failure was not logged")
	}
	select {
	case line := <-lines:
		t.Fatalf("unexpected second log line: %s", line)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEmitWithoutPublisherIsNoop(t *testing.T) {
	lines := make(lineWriter, 1)
	em := emitter{log: zerolog.New(lines)}
	require.NotPanics(t, func() {
		em.emit(queue.NewActivityEvent(queue.EventUserSignedUp, "u1", "", ""))
	})
	assert.Empty(t, lines)
}
