package services

import (
	"errors"

	"gorm.io/gorm"
)

// Service-level error taxonomy. Handlers translate these into HTTP
// statuses; nothing below this package returns an echo error.
var (
	ErrNotFound        = errors.New("not found")
	ErrSelfFollow      = errors.New("cannot follow yourself")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrEmptyContent    = errors.New("content cannot be empty")
	ErrDuplicateReport = errors.New("content already reported")
)

// asNotFound maps GORM's record-not-found onto the service taxonomy
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
