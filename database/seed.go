package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/saibhanage/me-api-playground/models"
)

func strPtr(s string) *string { return &s }

// Seed populates the skills, projects and project_skills tables with
// sample data. It is a no-op when any project already exists, so it is
// safe to leave SEED_DB enabled across restarts.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	skills := []*models.Skill{
		{Name: "Go", Category: strPtr("language")},
		{Name: "TypeScript", Category: strPtr("language")},
		{Name: "PostgreSQL", Category: strPtr("database")},
		{Name: "React", Category: strPtr("frontend")},
		{Name: "Docker", Category: strPtr("tooling")},
		{Name: "Redis", Category: strPtr("database")},
	}
	if err := db.Create(&skills).Error; err != nil {
		return err
	}

	byName := make(map[string]models.Skill, len(skills))
	for _, s := range skills {
		byName[s.Name] = *s
	}

	projects := []*models.Project{
		{
			Title:       "Me-API Playground",
			Description: "Personal portfolio API with profile, projects and full-text search.",
			Links:       datatypes.JSON(`[{"name":"github","url":"https://github.com/saibhanage/me-api-playground"}]`),
			Status:      "in-progress",
			Skills:      []models.Skill{byName["Go"], byName["PostgreSQL"], byName["Docker"]},
		},
		{
			Title:       "Task Board",
			Description: "Kanban-style task tracker with drag-and-drop and offline sync.",
			Links:       datatypes.JSON(`[{"name":"github","url":"https://github.com/saibhanage/task-board"},{"name":"demo","url":"https://tasks.example.com"}]`),
			Status:      "completed",
			Skills:      []models.Skill{byName["TypeScript"], byName["React"]},
		},
		{
			Title:       "URL Shortener",
			Description: "Tiny link shortener backed by Redis with click analytics.",
			Links:       datatypes.JSON(`[{"name":"github","url":"https://github.com/saibhanage/shorty"}]`),
			Status:      "completed",
			Skills:      []models.Skill{byName["Go"], byName["Redis"]},
		},
		{
			Title:       "Recipe Search",
			Description: "Full-text recipe search with ingredient filters.",
			Links:       datatypes.JSON(`[]`),
			Status:      "planned",
			Skills:      []models.Skill{byName["PostgreSQL"], byName["React"]},
		},
	}
	return db.Create(&projects).Error
}
