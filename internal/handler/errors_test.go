package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/movie-catalog/internal/repository"
	"github.com/iliyamo/movie-catalog/internal/validation"
)

func TestMapError(t *testing.T) {
	verr := &validation.ValidationError{Fields: []validation.FieldError{
		{Field: "title", Message: "Title is required"},
		{Field: "year", Message: "Year cannot be in the future"},
	}}
	status, body := mapError(verr, false)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation Error", body["error"])
	assert.Equal(t, "title: Title is required, year: Year cannot be in the future", body["message"])
	assert.Len(t, body["details"], 2)

	status, body = mapError(fmt.Errorf("insert: %w", repository.ErrDuplicate), false)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Duplicate Entry", body["error"])

	status, body = mapError(repository.ErrNotFound, false)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Record not found", body["message"])

	status, body = mapError(echo.ErrNotFound, false)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Route not found", body["error"])

	status, body = mapError(echo.NewHTTPError(http.StatusUnauthorized, "nope"), false)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "nope", body["error"])

	status, body = mapError(errors.New("db exploded"), false)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Server Error", body["error"])

	_, body = mapError(errors.New("db exploded"), true)
	assert.Equal(t, "db exploded", body["error"])
}
