package api

import (
	"time"

	"github.com/saibhanage/me-api-playground/database"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	metaHandler    metaHandler
	profileHandler profileHandler
	projectHandler projectHandler
	searchHandler  searchHandler
	skillHandler   skillHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, devMode bool, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		metaHandler:    newMetaHandler(devMode, startupTime),
		profileHandler: newProfileHandler(db.ProfileRepo(), devMode),
		projectHandler: newProjectHandler(db.ProjectRepo(), devMode),
		searchHandler:  newSearchHandler(db.ProjectRepo(), devMode),
		skillHandler:   newSkillHandler(db.SkillRepo(), devMode),
	}
}
