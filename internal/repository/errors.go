// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the HTTP
// error mapper to distinguish between different failure scenarios without
// knowing which SQL engine is underneath.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches, including rows that exist but
// belong to another user. Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert or update violates a unique index
// (email, username). Handlers translate this into an HTTP 400 response.
var ErrDuplicate = errors.New("duplicate entry")

// translate maps gorm's dialect-neutral errors onto the sentinels above.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
