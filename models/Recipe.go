package models

import (
	"gorm.io/gorm"
)

type Recipe struct {
	gorm.Model
	UID         int                `gorm:"column:uid;uniqueIndex;not null" json:"id"`
	Name        string             `gorm:"not null" json:"name"`
	Position    int                `gorm:"not null;index" json:"position"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Steps       []RecipeStep       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps"`
}
