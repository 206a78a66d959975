package models

import (
	"gorm.io/gorm"
)

// PantryItem is an ingredient in stock. Name holds the identity key so the
// database enforces the same uniqueness as the in-memory list.
type PantryItem struct {
	gorm.Model
	Name     string  `gorm:"not null" json:"name"`
	NameKey  string  `gorm:"uniqueIndex;not null" json:"-"`
	Position int     `gorm:"not null;index" json:"position"`
	Amount   float64 `gorm:"not null" json:"amount"`
	Unit     string  `gorm:"not null" json:"unit"`
}
