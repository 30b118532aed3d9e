package database

import (
	"errors"

	"github.com/saibhanage/me-api-playground/models"
	"gorm.io/gorm"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// First returns the first profile row ordered by id, or nil when the
// table is empty. The API treats that row as the singleton profile.
func (r *ProfileRepo) First() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Order("id").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Exists reports whether any profile row is present.
func (r *ProfileRepo) Exists() (bool, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Count(&count).Error
	return count > 0, err
}

// Add inserts a new profile into the database
func (r *ProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// Update saves an existing profile, targeting it by primary key.
func (r *ProfileRepo) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
