package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error sentinel values
var (
	ErrBadRequest      = errors.New("malformed request")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("resource conflict")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrRateLimited     = errors.New("rate limit exceeded")
	ErrInternal        = errors.New("internal server error")
)

// ApiErr carries the HTTP status a failure maps to alongside the exact
// message the client should see. Handlers build these; the Responder
// turns them into JSON bodies.
type ApiErr struct {
	StatusCode int
	kind       error  // sentinel classifying the error, exposed via Unwrap
	err        error  // client-facing message
	Details    string // optional extra context, echoed in development mode
	Cause      error  // the underlying cause, kept for logging
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
	}
}

// implements error interface. this allows us to pass an instance of
// ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	return e.err.Error()
}

// FullError returns the message with details and cause appended, for
// logging rather than client responses.
func (e *ApiErr) FullError() string {
	msg := e.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., kind: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.kind
}

// Common error constructors with appropriate HTTP status codes

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, kind: ErrBadRequest, err: errors.New(message)}
}

func NewUnauthorizedError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, kind: ErrUnauthorized, err: errors.New(message)}
}

func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, kind: ErrNotFound, err: errors.New(message)}
}

func NewConflictError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusConflict, kind: ErrConflict, err: errors.New(message)}
}

func NewPayloadTooLargeError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusRequestEntityTooLarge, kind: ErrPayloadTooLarge, err: errors.New(message)}
}

func NewRateLimitedError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusTooManyRequests, kind: ErrRateLimited, err: errors.New(message)}
}

func NewInternalError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, kind: ErrInternal, err: errors.New(message)}
}

func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
