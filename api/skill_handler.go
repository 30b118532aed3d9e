package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saibhanage/me-api-playground/database"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo, devMode bool) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger, devMode),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

// listSkills returns all skills alphabetically, optionally filtered by
// exact category.
func (h skillHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")

		skills, err := h.skillRepo.List(category)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, skills)
	}
}

// listCategories returns the distinct non-null categories, ordered.
func (h skillHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.skillRepo.Categories()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill categories", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, categories)
	}
}
