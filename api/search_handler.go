package api

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saibhanage/me-api-playground/database"
	"github.com/saibhanage/me-api-playground/errs"
)

type searchHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newSearchHandler(projectRepo *database.ProjectRepo, devMode bool) searchHandler {
	logger := log.With().Str("handlerName", "searchHandler").Logger()

	return searchHandler{
		responder:   NewResponder(logger, devMode),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// search matches projects on title, description or skill name and
// orders them by full-text relevance, newest first on ties. An empty
// query never reaches the store.
func (h searchHandler) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Search query is required"))
			return
		}
		page, limit := parsePagination(r)

		projects, total, err := h.projectRepo.Search(query, page, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("search", "projects", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, searchResponse{
			Query:      query,
			Results:    newProjectViews(projects),
			Pagination: newPagination(page, limit, total),
		})
	}
}
