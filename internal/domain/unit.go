package domain

import (
	"fmt"
	"strings"
)

// Unit is a unit of measure for ingredient quantities.
type Unit int

const (
	// UnitGram is the zero value, so the zero Quantity reads as 0 g.
	UnitGram Unit = iota
	UnitMilligram
	UnitKilogram
	UnitMilliliter
	UnitLiter
	UnitTeaspoon
	UnitTablespoon
	UnitCup
	UnitPiece
)

// Dimension groups units that convert into each other.
type Dimension int

const (
	DimensionMass Dimension = iota
	DimensionVolume
	DimensionCount
)

// String returns a human-readable dimension.
func (d Dimension) String() string {
	switch d {
	case DimensionMass:
		return "mass"
	case DimensionVolume:
		return "volume"
	case DimensionCount:
		return "count"
	default:
		return "unknown"
	}
}

type unitInfo struct {
	symbol    string
	dimension Dimension
	// factor converts one of this unit into the dimension's base unit (g, ml, pc).
	factor float64
}

var units = map[Unit]unitInfo{
	UnitGram:       {"g", DimensionMass, 1},
	UnitMilligram:  {"mg", DimensionMass, 0.001},
	UnitKilogram:   {"kg", DimensionMass, 1000},
	UnitMilliliter: {"ml", DimensionVolume, 1},
	UnitLiter:      {"l", DimensionVolume, 1000},
	UnitTeaspoon:   {"tsp", DimensionVolume, 4.92892159375},
	UnitTablespoon: {"tbsp", DimensionVolume, 14.78676478125},
	UnitCup:        {"cup", DimensionVolume, 236.5882365},
	UnitPiece:      {"pc", DimensionCount, 1},
}

// unitNames maps accepted spellings to units.
var unitNames = map[string]Unit{
	"g": UnitGram, "gram": UnitGram, "grams": UnitGram,
	"mg": UnitMilligram, "milligram": UnitMilligram, "milligrams": UnitMilligram,
	"kg": UnitKilogram, "kilogram": UnitKilogram, "kilograms": UnitKilogram,
	"ml": UnitMilliliter, "milliliter": UnitMilliliter, "milliliters": UnitMilliliter,
	"millilitre": UnitMilliliter, "millilitres": UnitMilliliter,
	"l": UnitLiter, "liter": UnitLiter, "liters": UnitLiter, "litre": UnitLiter, "litres": UnitLiter,
	"tsp": UnitTeaspoon, "teaspoon": UnitTeaspoon, "teaspoons": UnitTeaspoon,
	"tbsp": UnitTablespoon, "tablespoon": UnitTablespoon, "tablespoons": UnitTablespoon,
	"cup": UnitCup, "cups": UnitCup,
	"pc": UnitPiece, "pcs": UnitPiece, "piece": UnitPiece, "pieces": UnitPiece,
}

// ParseUnit resolves a unit symbol or name, ignoring case and surrounding space.
func ParseUnit(value string) (Unit, error) {
	if u, ok := unitNames[strings.ToLower(strings.TrimSpace(value))]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidValue, value)
}

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	_, ok := units[u]
	return ok
}

// String returns the unit symbol.
func (u Unit) String() string {
	if info, ok := units[u]; ok {
		return info.symbol
	}
	return "unknown"
}

// Dimension returns the dimension the unit measures.
func (u Unit) Dimension() Dimension {
	return units[u].dimension
}

// CompatibleWith reports whether amounts in u convert into other.
func (u Unit) CompatibleWith(other Unit) bool {
	return u.Valid() && other.Valid() && u.Dimension() == other.Dimension()
}
