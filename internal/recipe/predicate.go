package recipe

import (
	"larder/internal/domain"
	"larder/internal/ingredient"
)

// Predicate tests one ingredient requirement. A recipe passes a filter when the
// predicate holds for all of its requirements.
type Predicate func(domain.Ingredient) bool

// ShowAll lets every recipe through.
var ShowAll Predicate = func(domain.Ingredient) bool { return true }

// Named holds for requirements sharing identity with one of names.
func Named(names ...domain.Name) Predicate {
	keys := make(map[string]struct{}, len(names))
	for _, n := range names {
		keys[n.Key()] = struct{}{}
	}
	return func(ing domain.Ingredient) bool {
		_, ok := keys[ing.Name().Key()]
		return ok
	}
}

// InStock holds when pantry covers the requirement. The pantry is read at
// evaluation time.
func InStock(pantry *ingredient.List) Predicate {
	return func(ing domain.Ingredient) bool {
		return pantry.QuantityOf(ing).Covers(ing.Quantity())
	}
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(ing domain.Ingredient) bool { return !p(ing) }
}

// And holds when every predicate does.
func And(ps ...Predicate) Predicate {
	return func(ing domain.Ingredient) bool {
		for _, p := range ps {
			if !p(ing) {
				return false
			}
		}
		return true
	}
}

// Or holds when any predicate does.
func Or(ps ...Predicate) Predicate {
	return func(ing domain.Ingredient) bool {
		for _, p := range ps {
			if p(ing) {
				return true
			}
		}
		return false
	}
}
