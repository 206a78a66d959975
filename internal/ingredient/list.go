// Package ingredient provides the pantry's unique ingredient collection.
package ingredient

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"larder/internal/domain"
)

// List is an ordered collection of ingredients in which no two elements share
// identity (see domain.Ingredient.SameIngredient). Insertion order is kept for
// display. The zero value is an empty list ready to use.
type List struct {
	items []domain.Ingredient
}

// NewList builds a list from ingredients, rejecting duplicate identities.
func NewList(ingredients ...domain.Ingredient) (*List, error) {
	l := &List{}
	if err := l.SetIngredients(ingredients); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List) indexOf(ing domain.Ingredient) int {
	return slices.IndexFunc(l.items, ing.SameIngredient)
}

// Contains reports whether an ingredient with the same identity is present.
// The zero Ingredient is never contained.
func (l *List) Contains(ing domain.Ingredient) bool {
	return l.indexOf(ing) >= 0
}

// Get returns the stored ingredient whose name shares identity with name.
func (l *List) Get(name domain.Name) (domain.Ingredient, bool) {
	for _, item := range l.items {
		if item.Name().Same(name) {
			return item, true
		}
	}
	return domain.Ingredient{}, false
}

// QuantityOf returns the stored quantity of the matching ingredient, or 0 g when
// it is absent.
func (l *List) QuantityOf(ing domain.Ingredient) domain.Quantity {
	if i := l.indexOf(ing); i >= 0 {
		return l.items[i].Quantity()
	}
	return domain.ZeroQuantity()
}

// Add appends ing, or merges its quantity into the element sharing its identity.
// A merge never appends a second entry.
func (l *List) Add(ing domain.Ingredient) error {
	if ing.IsZero() {
		return fmt.Errorf("add ingredient: %w", domain.ErrNullInput)
	}
	if i := l.indexOf(ing); i >= 0 {
		return l.items[i].CombineWith(ing)
	}
	l.items = append(l.items, ing)
	return nil
}

// Use subtracts quantity from the element sharing target's identity. The list is
// left unchanged when the target is absent or holds too little.
func (l *List) Use(target domain.Ingredient, quantity domain.Quantity) error {
	if target.IsZero() {
		return fmt.Errorf("use ingredient: %w", domain.ErrNullInput)
	}
	i := l.indexOf(target)
	if i < 0 {
		return fmt.Errorf("use ingredient %s: %w", target.Name(), domain.ErrNotFound)
	}
	return l.items[i].Use(quantity)
}

// Remove deletes the element sharing ing's identity.
func (l *List) Remove(ing domain.Ingredient) error {
	if ing.IsZero() {
		return fmt.Errorf("remove ingredient: %w", domain.ErrNullInput)
	}
	i := l.indexOf(ing)
	if i < 0 {
		return fmt.Errorf("remove ingredient %s: %w", ing.Name(), domain.ErrNotFound)
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

// Clear empties the list.
func (l *List) Clear() {
	l.items = nil
}

// SetIngredients replaces the contents with ingredients. Nothing changes when the
// input holds a zero ingredient or two ingredients sharing identity.
func (l *List) SetIngredients(ingredients []domain.Ingredient) error {
	if err := validate(ingredients); err != nil {
		return err
	}
	l.items = slices.Clone(ingredients)
	return nil
}

// SetList replaces the contents with a copy of other's.
func (l *List) SetList(other *List) {
	if other == nil {
		l.Clear()
		return
	}
	l.items = slices.Clone(other.items)
}

// validate checks that ingredients could populate a List.
func validate(ingredients []domain.Ingredient) error {
	seen := make(map[string]int, len(ingredients))
	for i, ing := range ingredients {
		if ing.IsZero() {
			return fmt.Errorf("ingredient %d: %w", i, domain.ErrNullInput)
		}
		key := ing.Name().Key()
		if j, ok := seen[key]; ok {
			return fmt.Errorf("ingredients %d and %d are both %q: %w", j, i, ing.Name(), domain.ErrDuplicateIdentity)
		}
		seen[key] = i
	}
	return nil
}

// Items returns a copy of the elements in order.
func (l *List) Items() []domain.Ingredient {
	return slices.Clone(l.items)
}

// All iterates over the elements in order. The list must not be mutated during
// iteration.
func (l *List) All() iter.Seq[domain.Ingredient] {
	return func(yield func(domain.Ingredient) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.items)
}

// Clone returns an independent copy.
func (l *List) Clone() *List {
	return &List{items: slices.Clone(l.items)}
}

// Equal compares both lists element by element.
func (l *List) Equal(other *List) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	return slices.EqualFunc(l.items, other.items, domain.Ingredient.Equal)
}

// String renders the list as "[Flour (300 g), Eggs (6 pc)]".
func (l *List) String() string {
	parts := make([]string, len(l.items))
	for i, item := range l.items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
