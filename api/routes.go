package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint. Only the mutating profile routes
// sit behind the basic-auth gate; everything else is public.
func setupRoutes(r chi.Router, handlers *routeHandlers, gate authGate) {
	r.Get("/", handlers.metaHandler.root())
	r.Get("/health", handlers.metaHandler.health())

	r.Get("/profile", handlers.profileHandler.getProfile())
	r.Group(func(r chi.Router) {
		r.Use(gate.authenticate)
		r.Post("/profile", handlers.profileHandler.createProfile())
		r.Put("/profile", handlers.profileHandler.updateProfile())
	})

	r.Get("/projects", handlers.projectHandler.listProjects())
	r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

	r.Get("/search", handlers.searchHandler.search())

	r.Get("/skills", handlers.skillHandler.listSkills())
	r.Get("/skills/categories", handlers.skillHandler.listCategories())

	// Unknown routes answer 404 with the endpoint list, whatever the verb
	r.NotFound(handlers.metaHandler.notFound())
	r.MethodNotAllowed(handlers.metaHandler.notFound())
}
