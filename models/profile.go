package models

import "time"

// Profile is the site owner's profile. The table is logically a
// singleton: the API rejects a second create with a conflict.
type Profile struct {
	ID        int       `json:"id" db:"id" gorm:"primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" db:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	Bio       *string   `json:"bio" db:"bio" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
