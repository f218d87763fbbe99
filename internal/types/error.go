package types

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error taxonomy shared by the query layer, the trends pipeline and the handlers.
var (
	// ErrNotFound is returned when a lookup by id finds nothing.
	ErrNotFound = errors.New("not found")
	// ErrDataLoad wraps any unexpected failure while reading the snapshot.
	ErrDataLoad = errors.New("data load failure")
	// ErrInvalidArgument marks a malformed query parameter.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStale marks a response superseded by a newer request from the same client.
	ErrStale = errors.New("stale response")
)

// CustomError is an error carrying the HTTP status and the envelope type.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// FromError maps err onto a CustomError. Errors outside the taxonomy become a
// data load failure so callers only ever see a message string.
func FromError(err error, errorType string) *CustomError {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return &CustomError{Code: fiber.StatusNotFound, Message: err.Error(), Type: "notFound"}
	case errors.Is(err, ErrInvalidArgument):
		return &CustomError{Code: fiber.StatusBadRequest, Message: err.Error(), Type: "invalidArgument"}
	case errors.Is(err, ErrStale):
		return &CustomError{Code: fiber.StatusConflict, Message: err.Error(), Type: "stale"}
	case errors.Is(err, ErrDataLoad):
		return &CustomError{Code: fiber.StatusInternalServerError, Message: err.Error(), Type: "dataLoad"}
	}
	return &CustomError{
		Code:    fiber.StatusInternalServerError,
		Message: fmt.Sprintf("%s: %v", ErrDataLoad, err),
		Type:    errorType,
	}
}

// Invalid builds an ErrInvalidArgument with a reason.
func Invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
