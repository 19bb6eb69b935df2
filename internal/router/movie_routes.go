package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/handler"
)

// RegisterMovies registers the caller-scoped catalog under /api/movies.
// All routes require a valid JWT.
func RegisterMovies(e *echo.Echo, m *handler.MovieHandler, auth, limiter, cache echo.MiddlewareFunc) {
	g := e.Group("/api/movies", auth, limiter)

	// stats is registered before :id; echo prefers static segments anyway.
	g.GET("/stats", m.Stats, cache)
	g.GET("", m.List, cache)
	g.POST("", m.Create)
	g.GET("/:id", m.Get, cache)
	g.PUT("/:id", m.Update)
	g.DELETE("/:id", m.Delete)
}
