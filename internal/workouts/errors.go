package workouts

import (
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutware/pkg"
)

// Error kinds surfaced by the analytics pipeline. Package level sentinels wrap
// ErrNotFound or ErrInvalidInput so callers can match on the kind.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrUserNotFound            = fmt.Errorf("user %w", ErrNotFound)
	ErrSessionNotFound         = fmt.Errorf("workout session %w", ErrNotFound)
	ErrSessionExerciseNotFound = fmt.Errorf("session exercise %w", ErrNotFound)
	ErrExerciseNotFound        = fmt.Errorf("exercise %w", ErrNotFound)
	ErrTemplateNotFound        = fmt.Errorf("template %w", ErrNotFound)
)

// DataStoreError is an underlying query or transaction failure.
type DataStoreError struct {
	Op  string
	Err error
}

func (e *DataStoreError) Error() string {
	return fmt.Sprintf("data store: %s: %s", e.Op, e.Err)
}

func (e *DataStoreError) Unwrap() error {
	return e.Err
}

// StoreErr wraps err as a DataStoreError, unless it is nil or already
// carries one of the pipeline kinds.
func StoreErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
		return err
	}
	var dsErr *DataStoreError
	if errors.As(err, &dsErr) {
		return err
	}
	return &DataStoreError{Op: op, Err: err}
}

// InvalidInput builds an ErrInvalidInput error with a message.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ReferenceErr turns a foreign key violation on insert into notFound,
// everything else into a DataStoreError.
func ReferenceErr(op string, err error, notFound error) error {
	if pkg.IsForeignKeyViolationError(err) {
		return notFound
	}
	return StoreErr(op, err)
}

func IsDataStoreError(err error) bool {
	var dsErr *DataStoreError
	return errors.As(err, &dsErr)
}

// HTTPStatus maps an error kind to a response status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as a plain text error response. Client errors carry the
// error message, anything else is logged and answered with a generic message.
func WriteError(w http.ResponseWriter, err error, action string) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Errorf("failed to %s: %s", action, err)
		http.Error(w, "error, failed to "+action, status)
		return
	}
	log.Debugf("%s: %s", action, err)
	http.Error(w, err.Error(), status)
}
