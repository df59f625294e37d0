package models

import "gorm.io/gorm"

// Game is the sqlite mirror of one normalized dataset row, used by the
// browse endpoints for name search and genre joins.
type Game struct {
	gorm.Model
	Name                   string `gorm:"size:255;not null;index"`
	Price                  float64
	MetacriticScore        int
	PctPosTotal            float64
	NumReviewsTotal        int
	AveragePlaytimeForever float64
	OwnersLowerBound       int64
	GameType               string `gorm:"size:64;index"`
	Windows                int
	Mac                    int
	Linux                  int
	Genres                 []*Genre `gorm:"many2many:game_genres;"`
}
