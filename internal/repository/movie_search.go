package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/iliyamo/movie-catalog/internal/model"
)

// MovieSearchQuery defines filters & pagination for listing a user's movies.
type MovieSearchQuery struct {
	OwnerID string
	Search  string
	Type    model.MovieType
	Page    int
	Limit   int
}

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination derives the page counters for total matching rows.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// Offset is the number of rows skipped before the page starts.
func (q MovieSearchQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// Search returns one page of the owner's movies, newest first, along with the
// number of rows matching the filters. Search is a case-insensitive substring
// match on title, director or location.
func (r *MovieRepo) Search(ctx context.Context, q MovieSearchQuery) ([]model.Movie, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Movie{}).Where("user_id = ?", q.OwnerID)
	if q.Type != "" {
		tx = tx.Where("type = ?", q.Type)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + escapeLike(strings.ToLower(s)) + "%"
		tx = tx.Where(`(LOWER(title) LIKE ? ESCAPE '!' OR LOWER(director) LIKE ? ESCAPE '!' OR LOWER(location) LIKE ? ESCAPE '!')`,
			like, like, like)
	}
	// New session so the count and the page query start from the same filters.
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	out := make([]model.Movie, 0, q.Limit)
	err := tx.Order("created_at DESC").Order("id DESC").
		Limit(q.Limit).Offset(q.Offset()).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// escapeLike neutralises LIKE wildcards typed by the user. '!' is the escape
// character because backslash literals differ between MySQL and SQLite.
func escapeLike(s string) string {
	return strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`).Replace(s)
}
