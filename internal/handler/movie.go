package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iliyamo/movie-catalog/internal/model"
	"github.com/iliyamo/movie-catalog/internal/queue"
	"github.com/iliyamo/movie-catalog/internal/repository"
	"github.com/iliyamo/movie-catalog/internal/validation"
)

// CacheInvalidator drops a user's cached GET responses after a write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, userID string)
}

// MovieHandler serves the caller's own catalog entries.  Every lookup is
// scoped by the authenticated user id; foreign ids behave like missing ones.
type MovieHandler struct {
	Movies *repository.MovieRepo
	cache  CacheInvalidator
	events emitter
}

func NewMovieHandler(movies *repository.MovieRepo, cache CacheInvalidator, pub EventPublisher, log zerolog.Logger) *MovieHandler {
	return &MovieHandler{Movies: movies, cache: cache, events: emitter{pub: pub, log: log}}
}

func (h *MovieHandler) invalidate(ctx context.Context, uid string) {
	if h.cache != nil {
		h.cache.Invalidate(ctx, uid)
	}
}

func movieNotFound(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Movie not found")
	}
	return err
}

// Create handles POST /api/movies.
func (h *MovieHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return err
	}
	var req createMovieRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	m := req.toModel(uid)
	ctx := c.Request().Context()
	if err := h.Movies.Create(ctx, m); err != nil {
		return err
	}
	h.invalidate(ctx, uid)
	h.events.emit(queue.NewActivityEvent(queue.EventMovieCreated, uid, m.ID, m.Title))
	return ok(c, http.StatusCreated, m)
}

// List handles GET /api/movies?page&limit&search&type.
func (h *MovieHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return err
	}
	q := listMoviesQuery{Page: 1, Limit: 10}
	err = echo.QueryParamsBinder(c).
		Int("page", &q.Page).
		Int("limit", &q.Limit).
		String("search", &q.Search).
		String("type", &q.Type).
		BindError()
	if err != nil {
		var be *echo.BindingError
		if errors.As(err, &be) && len(be.Field) > 0 {
			return validation.Invalid(be.Field, "Expected number, received string")
		}
		return validation.Invalid("query", "Invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	movies, total, err := h.Movies.Search(c.Request().Context(), repository.MovieSearchQuery{
		OwnerID: uid,
		Search:  strings.TrimSpace(q.Search),
		Type:    model.MovieType(q.Type),
		Page:    q.Page,
		Limit:   q.Limit,
	})
	if err != nil {
		return err
	}
	if movies == nil {
		movies = []model.Movie{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"data":       movies,
		"pagination": repository.NewPagination(q.Page, q.Limit, total),
	})
}

// Get handles GET /api/movies/:id.
func (h *MovieHandler) Get(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return err
	}
	m, err := h.Movies.GetByIDAndOwner(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return movieNotFound(c, err)
	}
	return ok(c, http.StatusOK, m)
}

// Update handles PUT /api/movies/:id.  Only the provided fields change.
func (h *MovieHandler) Update(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return err
	}
	var req updateMovieRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	m, err := h.Movies.UpdateByIDAndOwner(ctx, c.Param("id"), uid, req.toPatch())
	if err != nil {
		return movieNotFound(c, err)
	}
	h.invalidate(ctx, uid)
	h.events.emit(queue.NewActivityEvent(queue.EventMovieUpdated, uid, m.ID, m.Title))
	return ok(c, http.StatusOK, m)
}

// Delete handles DELETE /api/movies/:id.
func (h *MovieHandler) Delete(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	ctx := c.Request().Context()
	if err := h.Movies.DeleteByIDAndOwner(ctx, id, uid); err != nil {
		return movieNotFound(c, err)
	}
	h.invalidate(ctx, uid)
	h.events.emit(queue.NewActivityEvent(queue.EventMovieDeleted, uid, id, ""))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Movie deleted successfully"})
}

// Stats handles GET /api/movies/stats.
func (h *MovieHandler) Stats(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return err
	}
	stats, err := h.Movies.StatsByOwner(c.Request().Context(), uid)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, stats)
}
