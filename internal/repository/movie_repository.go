// Package repository contains data access logic separated from HTTP handlers.
// This file holds the Movie repository. Every method takes the owner's id and
// filters on it, so one user can never observe or mutate another user's rows.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iliyamo/movie-catalog/internal/model"
)

// MovieRepo encapsulates all database queries related to movies.
type MovieRepo struct {
	db *gorm.DB
}

func NewMovieRepo(db *gorm.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// MoviePatch carries the fields of a partial update. Nil means "leave as is".
type MoviePatch struct {
	Title       *string
	Type        *model.MovieType
	Director    *string
	Budget      *float64
	Location    *string
	Duration    *int
	Year        *int
	Description *string
	Image       *string
}

func (p MoviePatch) columns() map[string]any {
	cols := map[string]any{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Type != nil {
		cols["type"] = *p.Type
	}
	if p.Director != nil {
		cols["director"] = *p.Director
	}
	if p.Budget != nil {
		cols["budget"] = *p.Budget
	}
	if p.Location != nil {
		cols["location"] = *p.Location
	}
	if p.Duration != nil {
		cols["duration"] = *p.Duration
	}
	if p.Year != nil {
		cols["year"] = *p.Year
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Image != nil {
		cols["image"] = *p.Image
	}
	return cols
}

// MovieStats are the per-user aggregates. Sums and averages are zero when the
// user has no movies.
type MovieStats struct {
	TotalMovies  int64   `json:"totalMovies"`
	TotalTVShows int64   `json:"totalTVShows"`
	TotalBudget  float64 `json:"totalBudget"`
	AvgBudget    float64 `json:"avgBudget"`
}

// Create inserts a new movie. m.UserID must already be set by the caller.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

// GetByIDAndOwner fetches a movie by id but only if it belongs to the
// specified owner. Foreign rows are reported as ErrNotFound.
func (r *MovieRepo) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*model.Movie, error) {
	var m model.Movie
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Take(&m).Error
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// UpdateByIDAndOwner applies patch to an owned movie and returns the stored
// result. An empty patch returns the movie unchanged.
func (r *MovieRepo) UpdateByIDAndOwner(ctx context.Context, id, ownerID string, patch MoviePatch) (*model.Movie, error) {
	m, err := r.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	cols := patch.columns()
	if len(cols) == 0 {
		return m, nil
	}
	res := r.db.WithContext(ctx).Model(&model.Movie{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(cols)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	return r.GetByIDAndOwner(ctx, id, ownerID)
}

// DeleteByIDAndOwner removes an owned movie. It returns ErrNotFound when the
// movie does not exist or belongs to someone else.
func (r *MovieRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.Movie{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// StatsByOwner computes counts per type plus budget sum and average in one
// pass over the owner's rows.
func (r *MovieRepo) StatsByOwner(ctx context.Context, ownerID string) (MovieStats, error) {
	var row struct {
		TotalMovies  int64   `gorm:"column:total_movies"`
		TotalTVShows int64   `gorm:"column:total_tv_shows"`
		TotalBudget  float64 `gorm:"column:total_budget"`
		AvgBudget    float64 `gorm:"column:avg_budget"`
	}
	err := r.db.WithContext(ctx).Model(&model.Movie{}).
		Select(`COALESCE(SUM(CASE WHEN type = ? THEN 1 ELSE 0 END), 0) AS total_movies,
			COALESCE(SUM(CASE WHEN type = ? THEN 1 ELSE 0 END), 0) AS total_tv_shows,
			COALESCE(SUM(budget), 0) AS total_budget,
			COALESCE(AVG(budget), 0) AS avg_budget`, model.TypeMovie, model.TypeTVShow).
		Where("user_id = ?", ownerID).
		Scan(&row).Error
	if err != nil {
		return MovieStats{}, err
	}
	return MovieStats(row), nil
}
