package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/middleware"
	"github.com/iliyamo/movie-catalog/internal/validation"
)

// ok writes the {success: true, data: ...} envelope.
func ok(c echo.Context, status int, data any) error {
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

// fail writes the {success: false, error: ...} envelope.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "error": msg})
}

// getUserID returns the id placed in the context by middleware.JWTAuth.
func getUserID(c echo.Context) (string, error) {
	uid := middleware.UserID(c)
	if uid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
	}
	return uid, nil
}

// normalizer is implemented by requests that clean up input (trimming,
// case folding) before validation.
type normalizer interface {
	normalize()
}

// bindAndValidate decodes the request into dst and runs the registered
// validator.  Body decoding problems are reported like any other field error.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) && ute.Field != "" {
			return validation.Invalid(ute.Field, "Expected "+ute.Type.String()+", received "+ute.Value)
		}
		return validation.Invalid("body", "Invalid request body")
	}
	if n, ok := dst.(normalizer); ok {
		n.normalize()
	}
	return c.Validate(dst)
}
