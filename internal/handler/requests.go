package handler

import (
	"strings"

	"github.com/iliyamo/movie-catalog/internal/model"
	"github.com/iliyamo/movie-catalog/internal/repository"
)

type signupRequest struct {
	Email    string `json:"email" validate:"required,email,email_domain"`
	Username string `json:"username" validate:"required,min=3,max=30,username_chars"`
	Password string `json:"password" validate:"required,min=6,max=100,password_strength"`
}

func (r *signupRequest) normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Username = strings.TrimSpace(r.Username)
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email,email_domain"`
	Password string `json:"password" validate:"required"`
}

func (r *signinRequest) normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type createMovieRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Type        string  `json:"type" validate:"required,movie_type"`
	Director    string  `json:"director" validate:"required,min=1,max=255"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
	Location    string  `json:"location" validate:"required,min=1,max=255"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	Year        int     `json:"year" validate:"required,min=1900,max_year"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (r *createMovieRequest) toModel(ownerID string) *model.Movie {
	return &model.Movie{
		Title:       r.Title,
		Type:        model.MovieType(r.Type),
		Director:    r.Director,
		Budget:      r.Budget,
		Location:    r.Location,
		Duration:    r.Duration,
		Year:        r.Year,
		Description: r.Description,
		Image:       r.Image,
		UserID:      ownerID,
	}
}

// updateMovieRequest accepts any subset of the create fields.
type updateMovieRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Type        *string  `json:"type" validate:"omitempty,movie_type"`
	Director    *string  `json:"director" validate:"omitempty,min=1,max=255"`
	Budget      *float64 `json:"budget" validate:"omitempty,gt=0"`
	Location    *string  `json:"location" validate:"omitempty,min=1,max=255"`
	Duration    *int     `json:"duration" validate:"omitempty,gt=0"`
	Year        *int     `json:"year" validate:"omitempty,min=1900,max_year"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

func (r *updateMovieRequest) toPatch() repository.MoviePatch {
	p := repository.MoviePatch{
		Title:       r.Title,
		Director:    r.Director,
		Budget:      r.Budget,
		Location:    r.Location,
		Duration:    r.Duration,
		Year:        r.Year,
		Description: r.Description,
		Image:       r.Image,
	}
	if r.Type != nil {
		t := model.MovieType(*r.Type)
		p.Type = &t
	}
	return p
}

// listMoviesQuery is bound from the query string; page and limit default to
// 1 and 10.
type listMoviesQuery struct {
	Page   int    `query:"page" validate:"gte=1"`
	Limit  int    `query:"limit" validate:"gte=1,lte=100"`
	Search string `query:"search"`
	Type   string `query:"type" validate:"omitempty,movie_type"`
}
