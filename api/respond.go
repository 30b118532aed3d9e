package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/saibhanage/me-api-playground/errs"
)

type Responder struct {
	logger  zerolog.Logger
	devMode bool
}

// NewResponder returns a Responder. In development mode error bodies
// carry the underlying message; in any other mode internals stay out
// of responses.
func NewResponder(logger zerolog.Logger, devMode bool) Responder {
	return Responder{logger: logger, devMode: devMode}
}

func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return a generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		response := map[string]any{"error": "Internal server error"}
		if r.devMode {
			response["message"] = err.Error()
		}
		r.WriteJSON(w, http.StatusInternalServerError, response)
		return
	}

	if apiErr.StatusCode >= 500 {
		r.logger.Error().Msg(apiErr.FullError())
	}

	response := map[string]any{"error": apiErr.Error()}
	if r.devMode {
		if apiErr.Details != "" {
			response["details"] = apiErr.Details
		}
		if apiErr.Cause != nil {
			response["message"] = apiErr.Cause.Error()
		}
	}
	r.WriteJSON(w, apiErr.StatusCode, response)
}

// wrapDatabaseError wraps a store error with operation context
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
