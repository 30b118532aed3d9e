package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// availableEndpoints is part of the API contract: the catch-all 404
// lists it so clients can discover the surface.
var availableEndpoints = []string{
	"GET /health",
	"GET /profile",
	"POST /profile",
	"PUT /profile",
	"GET /projects",
	"GET /projects/:id",
	"GET /search?q=query",
	"GET /skills",
	"GET /skills/categories",
}

type metaHandler struct {
	responder   Responder
	logger      zerolog.Logger
	startupTime time.Time
}

func newMetaHandler(devMode bool, startupTime time.Time) metaHandler {
	logger := log.With().Str("handlerName", "metaHandler").Logger()

	return metaHandler{
		responder:   NewResponder(logger, devMode),
		logger:      logger,
		startupTime: startupTime,
	}
}

// root describes the API.
func (h metaHandler) root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Me-API Playground",
			"version": "1.0.0",
			"endpoints": map[string]string{
				"health":   "/health",
				"profile":  "/profile",
				"projects": "/projects",
				"search":   "/search",
				"skills":   "/skills",
			},
		})
	}
}

// health is the liveness probe.
func (h metaHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, map[string]any{
			"status":         "ok",
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(h.startupTime).Seconds()),
		})
	}
}

// notFound answers any unknown route or verb with the endpoint list.
func (h metaHandler) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusNotFound, map[string]any{
			"error":              "Endpoint not found",
			"availableEndpoints": availableEndpoints,
		})
	}
}
