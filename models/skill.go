package models

// Skill is a taggable technology or competency. Names are unique;
// category is optional grouping (e.g. "language", "database").
type Skill struct {
	ID       int     `json:"id" db:"id" gorm:"primaryKey"`
	Name     string  `json:"name" db:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	Category *string `json:"category" db:"category" gorm:"type:varchar(255)"`
}
