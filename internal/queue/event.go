// Package queue defines message payloads exchanged over the message broker.
package queue

import "time"

// Activity event names.
const (
	EventUserSignedUp = "user.signed_up"
	EventMovieCreated = "movie.created"
	EventMovieUpdated = "movie.updated"
	EventMovieDeleted = "movie.deleted"
)

// ActivityEvent is published after a successful account or catalog write.
// It carries enough context for downstream consumers to log or audit the
// change without querying the primary database.
type ActivityEvent struct {
	Type       string `json:"type"`
	UserID     string `json:"user_id"`
	MovieID    string `json:"movie_id,omitempty"`
	Title      string `json:"title,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// NewActivityEvent stamps the event with the current UTC time.
func NewActivityEvent(kind, userID, movieID, title string) ActivityEvent {
	return ActivityEvent{
		Type:       kind,
		UserID:     userID,
		MovieID:    movieID,
		Title:      title,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}
