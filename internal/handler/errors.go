package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iliyamo/movie-catalog/internal/config"
	"github.com/iliyamo/movie-catalog/internal/repository"
	"github.com/iliyamo/movie-catalog/internal/validation"
)

// ErrorHandler turns errors returned by handlers into the JSON error
// envelope.  Outside development, unexpected errors are reported as a bare
// "Server Error".
func ErrorHandler(cfg config.Config, log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status, body := mapError(err, cfg.IsDevelopment())

		ev := log.Debug()
		if status >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Err(err).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Int("status", status).
			Msg("request failed")

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.Error().Err(err).Msg("write error response")
		}
	}
}

func mapError(err error, dev bool) (int, echo.Map) {
	var verr *validation.ValidationError
	var herr *echo.HTTPError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Validation Error",
			"message": verr.Error(),
			"details": verr.Fields,
		}
	case errors.Is(err, repository.ErrDuplicate):
		return http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Duplicate Entry",
			"message": "A record with this information already exists",
		}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, echo.Map{
			"success": false,
			"error":   "Not Found",
			"message": "Record not found",
		}
	case errors.As(err, &herr):
		if herr.Code == http.StatusNotFound && herr.Message == http.StatusText(http.StatusNotFound) {
			return http.StatusNotFound, echo.Map{"success": false, "error": "Route not found"}
		}
		msg, ok := herr.Message.(string)
		if !ok {
			msg = http.StatusText(herr.Code)
		}
		return herr.Code, echo.Map{"success": false, "error": msg}
	}
	msg := "Server Error"
	if dev {
		msg = err.Error()
	}
	return http.StatusInternalServerError, echo.Map{"success": false, "error": msg}
}
