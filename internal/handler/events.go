package handler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iliyamo/movie-catalog/internal/queue"
)

// EventPublisher delivers activity events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.ActivityEvent) error
}

// emitter publishes in the background so a slow or absent broker never
// delays the response.  A nil publisher drops events.
type emitter struct {
	pub EventPublisher
	log zerolog.Logger
}

func (e emitter) emit(ev queue.ActivityEvent) {
	if e.pub == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.pub.Publish(ctx, ev); err != nil {
			e.log.Warn().Err(err).Str("event", ev.Type).Msg("activity event dropped")
		}
	}()
}
