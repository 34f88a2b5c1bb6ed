package services

import (
	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
)

// Sentinels the controllers map onto HTTP statuses. Concrete errors carry
// one of these as a mark, so errors.Is works through wrapping.
var (
	ErrValidation       = errors.New("validation failed")
	ErrMissingFields    = errors.New("missing fields")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidSignature = errors.New("invalid signature")
)

func validationf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrValidation)
}

func notFoundf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrNotFound)
}

func conflictf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrConflict)
}

func forbiddenf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrForbidden)
}

// lookup turns a missing row into a NotFound error with the given message
// and wraps anything else as an internal failure.
func lookup(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf(format, args...)
	}
	return errors.Wrapf(err, format, args...)
}
