// Package recipe holds the recipe book aggregate and the model callers use to
// query and mutate it.
package recipe

import (
	"fmt"
	"iter"
	"slices"

	"larder/internal/domain"
)

// List is an ordered collection of recipes with unique ids.
type List struct {
	items []domain.Recipe
}

func (l *List) indexOf(id int) int {
	return slices.IndexFunc(l.items, func(r domain.Recipe) bool { return r.ID() == id })
}

// Contains reports whether a recipe with id is present.
func (l *List) Contains(id int) bool {
	return l.indexOf(id) >= 0
}

// ContainsName reports whether a recipe whose name shares identity with name is present.
func (l *List) ContainsName(name domain.Name) bool {
	return slices.ContainsFunc(l.items, func(r domain.Recipe) bool { return r.Name().Same(name) })
}

// Get returns the recipe with id.
func (l *List) Get(id int) (domain.Recipe, bool) {
	if i := l.indexOf(id); i >= 0 {
		return l.items[i], true
	}
	return domain.Recipe{}, false
}

// Add appends r. Ids must be unique.
func (l *List) Add(r domain.Recipe) error {
	if r.IsZero() {
		return fmt.Errorf("add recipe: %w", domain.ErrNullInput)
	}
	if l.Contains(r.ID()) {
		return fmt.Errorf("add recipe %s: %w", r, domain.ErrDuplicateIdentity)
	}
	l.items = append(l.items, r)
	return nil
}

// Remove deletes the recipe with id.
func (l *List) Remove(id int) error {
	i := l.indexOf(id)
	if i < 0 {
		return fmt.Errorf("remove recipe #%d: %w", id, domain.ErrNotFound)
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

// Clear empties the list.
func (l *List) Clear() {
	l.items = nil
}

// SetRecipes replaces the contents. Nothing changes if recipes are invalid.
func (l *List) SetRecipes(recipes []domain.Recipe) error {
	if err := validateRecipes(recipes); err != nil {
		return err
	}
	l.items = slices.Clone(recipes)
	return nil
}

func validateRecipes(recipes []domain.Recipe) error {
	seen := make(map[int]struct{}, len(recipes))
	for i, r := range recipes {
		if r.IsZero() {
			return fmt.Errorf("recipe %d: %w", i, domain.ErrNullInput)
		}
		if _, ok := seen[r.ID()]; ok {
			return fmt.Errorf("recipe id %d used twice: %w", r.ID(), domain.ErrDuplicateIdentity)
		}
		seen[r.ID()] = struct{}{}
	}
	return nil
}

// Items returns a copy of the recipes in order.
func (l *List) Items() []domain.Recipe {
	return slices.Clone(l.items)
}

// All iterates over the recipes in order.
func (l *List) All() iter.Seq[domain.Recipe] {
	return func(yield func(domain.Recipe) bool) {
		for _, r := range l.items {
			if !yield(r) {
				return
			}
		}
	}
}

// Len returns the number of recipes.
func (l *List) Len() int {
	return len(l.items)
}

// NextID returns one more than the highest id in use.
func (l *List) NextID() int {
	next := 1
	for _, r := range l.items {
		if r.ID() >= next {
			next = r.ID() + 1
		}
	}
	return next
}

// Equal compares both lists element by element.
func (l *List) Equal(other *List) bool {
	return slices.EqualFunc(l.items, other.items, domain.Recipe.Equal)
}
