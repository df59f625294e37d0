package models

import "gorm.io/gorm"

// Genre represents a genre tag (e.g., "Action", "Indie", "Strategy").
type Genre struct {
	gorm.Model
	Name string `gorm:"size:100;unique;not null"`
}
