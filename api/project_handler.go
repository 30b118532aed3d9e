package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saibhanage/me-api-playground/database"
	"github.com/saibhanage/me-api-playground/errs"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, devMode bool) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger, devMode),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// listProjects returns a page of projects with their skills, optionally
// filtered by a case-insensitive skill-name substring.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skill := r.URL.Query().Get("skill")
		page, limit := parsePagination(r)

		projects, total, err := h.projectRepo.List(skill, page, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, projectListResponse{
			Projects:   newProjectViews(projects),
			Pagination: newPagination(page, limit, total),
		})
	}
}

// getProject returns one project with its skills.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := strconv.Atoi(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid project id"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, newProjectView(project))
	}
}
