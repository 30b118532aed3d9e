package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saibhanage/me-api-playground/database"
	"github.com/saibhanage/me-api-playground/errs"
	"github.com/saibhanage/me-api-playground/models"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	validate    *validator.Validate
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo, devMode bool) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger, devMode),
		logger:      logger,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		profileRepo: profileRepo,
	}
}

// profilePayload is the create/update request body. The singleton row
// itself carries server-assigned id and timestamps.
type profilePayload struct {
	Name  string  `json:"name" validate:"required,min=1,max=255"`
	Email string  `json:"email" validate:"required,email"`
	Bio   *string `json:"bio" validate:"omitempty,max=1000"`
}

// decodeAndValidate reads the payload and runs the struct rules,
// returning a client-facing ApiErr on any failure.
func (h profileHandler) decodeAndValidate(r *http.Request) (*profilePayload, *errs.ApiErr) {
	var payload profilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, errs.NewPayloadTooLargeError("Request body too large")
		}
		h.logger.Error().Err(err).Msg("Failed to decode profile request body")
		return nil, errs.NewBadRequestError("malformed request body")
	}

	if err := h.validate.Struct(payload); err != nil {
		return nil, errs.NewBadRequestError(validationMessage(err))
	}
	return &payload, nil
}

// validationMessage turns the first field failure into a message in
// the API's plain style, e.g. "email must be a valid email".
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request body"
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// getProfile returns the singleton profile row.
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.First()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Profile not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, profile)
	}
}

// createProfile inserts the singleton profile. A second create is a
// conflict; so is reusing an existing email.
func (h profileHandler) createProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, apiErr := h.decodeAndValidate(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		exists, err := h.profileRepo.Exists()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check", "profile", err))
			return
		}
		if exists {
			h.responder.WriteError(w, errs.NewConflictError("Profile already exists. Use PUT to update."))
			return
		}

		profile := models.Profile{
			Name:  payload.Name,
			Email: payload.Email,
			Bio:   payload.Bio,
		}
		if err := h.profileRepo.Add(&profile); err != nil {
			if errs.IsUniqueViolation(err) {
				h.responder.WriteError(w, errs.NewConflictError("Email already exists"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create", "profile", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, profile)
	}
}

// updateProfile mutates the singleton profile in place, targeting it
// by primary key.
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, apiErr := h.decodeAndValidate(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		profile, err := h.profileRepo.First()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Profile not found"))
			return
		}

		profile.Name = payload.Name
		profile.Email = payload.Email
		profile.Bio = payload.Bio
		if err := h.profileRepo.Update(profile); err != nil {
			if errs.IsUniqueViolation(err) {
				h.responder.WriteError(w, errs.NewConflictError("Email already exists"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update", "profile", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, profile)
	}
}
