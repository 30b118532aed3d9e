package database

import (
	"github.com/saibhanage/me-api-playground/models"
	"gorm.io/gorm"
)

type Database struct {
	profileRepo *ProfileRepo
	projectRepo *ProjectRepo
	skillRepo   *SkillRepo
}

// New initializes a new Database struct with each repository using a
// shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo: NewProfileRepo(db),
		projectRepo: NewProjectRepo(db),
		skillRepo:   NewSkillRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

// Migrate creates or updates the four tables (profiles, projects,
// skills and the project_skills join) to match the models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Project{},
		&models.Skill{},
	)
}
