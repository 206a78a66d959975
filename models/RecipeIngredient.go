package models

import (
	"gorm.io/gorm"
)

// RecipeIngredient is one requirement of a recipe. It is a snapshot of the
// amount needed, not a link to a pantry row.
type RecipeIngredient struct {
	gorm.Model
	RecipeID uint    `gorm:"not null;index" json:"recipe_id"` // Parent Recipe
	Position int     `gorm:"not null" json:"position"`
	Name     string  `gorm:"not null" json:"name"`
	Amount   float64 `gorm:"not null" json:"amount"`
	Unit     string  `gorm:"not null" json:"unit"`
}
