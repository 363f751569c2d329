package store

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type Kind int

const (
	KindNotFound Kind = iota
	KindConflict
	KindPreconditionFailed
	KindOutOfStock
)

// Error is a typed workflow failure carried out of a transaction and mapped
// to an HTTP response by the handler. Anything that is not an *Error is an
// internal failure and surfaces as a generic 500.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// HTTPStatus keeps the original service's wire contract: a failed wishlist
// precondition is reported as a 404 with its own message, not a 409.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindConflict:
		return http.StatusConflict
	case KindOutOfStock:
		return http.StatusBadRequest
	default:
		return http.StatusNotFound
	}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func PreconditionFailed(message string) *Error {
	return &Error{Kind: KindPreconditionFailed, Message: message}
}

func OutOfStock(message string) *Error {
	return &Error{Kind: KindOutOfStock, Message: message}
}

// OrNotFound converts a record-miss into a NotFound failure with the
// endpoint's message and passes every other error through unchanged.
func OrNotFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(message)
	}
	return err
}

// OrPreconditionFailed is OrNotFound for missing-precondition lookups.
func OrPreconditionFailed(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PreconditionFailed(message)
	}
	return err
}
