package models

import "gorm.io/gorm"

type RecipeStep struct {
	gorm.Model
	RecipeID    uint   `gorm:"not null;index" json:"recipe_id"`
	Position    int    `gorm:"not null" json:"position"`
	Instruction string `gorm:"type:text;not null" json:"instruction"`
}
