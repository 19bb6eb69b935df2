package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/handler"
)

// RegisterAuth registers /api/auth.  Signup and signin are public; profile
// requires a bearer token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, auth, limiter echo.MiddlewareFunc) {
	g := e.Group("/api/auth", limiter)
	g.POST("/signup", a.Signup)
	g.POST("/signin", a.Signin)

	// JWT runs first here so the limiter can key on the user.
	e.GET("/api/auth/profile", a.Profile, auth, limiter)
}
