package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovieType is the catalog category of a record.
type MovieType string

const (
	TypeMovie  MovieType = "Movie"
	TypeTVShow MovieType = "TV Show"
)

// Valid reports whether t is one of the known categories.
func (t MovieType) Valid() bool {
	return t == TypeMovie || t == TypeTVShow
}

// Movie is a catalog entry owned by exactly one user.  Every query against
// the `movies` table filters on UserID.
type Movie struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Type        MovieType `gorm:"size:16;not null;index" json:"type"`
	Director    string    `gorm:"size:255;not null" json:"director"`
	Budget      float64   `gorm:"not null" json:"budget"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	Duration    int       `gorm:"not null" json:"duration"`
	Year        int       `gorm:"not null" json:"year"`
	Description *string   `gorm:"type:text" json:"description"`
	Image       *string   `gorm:"size:512" json:"image"`
	UserID      string    `gorm:"type:char(36);not null;index" json:"userId"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *Movie) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
