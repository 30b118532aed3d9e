package errs

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrDatabaseQuery = errors.New("database query failed")
)

// Postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

// NewDatabaseError translates a store error into an ApiErr. Unique
// violations become conflicts, missing rows become not-found, anything
// else is an internal database failure carrying its cause for logging.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("failed to %s %s", operation, entity)

	if IsUniqueViolation(cause) {
		return &ApiErr{
			StatusCode: http.StatusConflict,
			kind:       ErrConflict,
			err:        fmt.Errorf("%s already exists", entity),
			Details:    details,
			Cause:      cause,
		}
	}
	if errors.Is(cause, gorm.ErrRecordNotFound) {
		return &ApiErr{
			StatusCode: http.StatusNotFound,
			kind:       ErrNotFound,
			err:        fmt.Errorf("%s not found", entity),
			Details:    details,
			Cause:      cause,
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		kind:       ErrDatabaseQuery,
		err:        errors.New("Internal server error"),
		Details:    details,
		Cause:      cause,
	}
}

// IsUniqueViolation reports whether the error is a unique constraint
// violation, either as translated by the gorm driver or as the raw
// Postgres error code.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
