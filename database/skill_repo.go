package database

import (
	"github.com/saibhanage/me-api-playground/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// List returns all skills ordered by name. When category is non-empty
// only skills with that exact category are returned.
func (r *SkillRepo) List(category string) ([]*models.Skill, error) {
	tx := r.db.Order("name ASC")
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	var skills []*models.Skill
	err := tx.Find(&skills).Error
	return skills, err
}

// Categories returns the distinct non-null categories, ordered.
func (r *SkillRepo) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Skill{}).
		Where("category IS NOT NULL").
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}
