package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project represents a portfolio project. Links holds an ordered JSON
// array of {name, url} pairs. Status is free text; known values
// (completed, in-progress, planned) get a color in the client.
type Project struct {
	ID          int            `json:"id" db:"id" gorm:"primaryKey"`
	Title       string         `json:"title" db:"title" gorm:"type:text;not null"`
	Description string         `json:"description" db:"description" gorm:"type:text"`
	Links       datatypes.JSON `json:"links" db:"links"`
	ImageURL    string         `json:"image_url" db:"image_url" gorm:"type:text"`
	Status      string         `json:"status" db:"status" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`

	Skills []Skill `json:"-" gorm:"many2many:project_skills"`
}

// SkillNames flattens the preloaded association into the plain list of
// names the API exposes on project payloads.
func (p *Project) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return names
}
