package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/handler"
)

// RegisterUploads registers the authenticated upload endpoint and the public
// file route.
func RegisterUploads(e *echo.Echo, u *handler.UploadHandler, auth, limiter echo.MiddlewareFunc) {
	e.POST("/api/upload/image", u.UploadImage, auth, limiter)
	e.GET("/uploads/:filename", u.ServeUpload)
}
