package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Step is a single recipe instruction.
type Step string

// ParseStep trims the instruction and rejects blank text.
func ParseStep(value string) (Step, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: recipe steps must not be blank", ErrInvalidValue)
	}
	return Step(trimmed), nil
}

// Recipe holds ingredient requirements and steps. Requirements are snapshots,
// not links into the pantry. Identity is the integer id.
type Recipe struct {
	id          int
	name        Name
	ingredients []Ingredient
	steps       []Step
}

// NewRecipe validates and copies its inputs.
func NewRecipe(id int, name Name, ingredients []Ingredient, steps []Step) (Recipe, error) {
	if id <= 0 {
		return Recipe{}, fmt.Errorf("%w: recipe id %d must be positive", ErrInvalidValue, id)
	}
	if name.IsZero() {
		return Recipe{}, fmt.Errorf("%w: recipe name", ErrNullInput)
	}
	for i, ing := range ingredients {
		if ing.IsZero() {
			return Recipe{}, fmt.Errorf("recipe %s: ingredient %d: %w", name, i, ErrNullInput)
		}
		for _, prev := range ingredients[:i] {
			if prev.SameIngredient(ing) {
				return Recipe{}, fmt.Errorf("recipe %s: ingredient %s listed twice: %w", name, ing.Name(), ErrDuplicateIdentity)
			}
		}
	}
	trimmed := make([]Step, len(steps))
	for i, step := range steps {
		s, err := ParseStep(string(step))
		if err != nil {
			return Recipe{}, fmt.Errorf("recipe %s: step %d: %w", name, i+1, err)
		}
		trimmed[i] = s
	}
	return Recipe{
		id:          id,
		name:        name,
		ingredients: slices.Clone(ingredients),
		steps:       trimmed,
	}, nil
}

// ID returns the recipe identifier.
func (r Recipe) ID() int {
	return r.id
}

// Name returns the recipe name.
func (r Recipe) Name() Name {
	return r.name
}

// Ingredients returns a copy of the requirements in order.
func (r Recipe) Ingredients() []Ingredient {
	return slices.Clone(r.ingredients)
}

// Steps returns a copy of the steps in order.
func (r Recipe) Steps() []Step {
	return slices.Clone(r.steps)
}

// IsZero reports whether r is the zero Recipe.
func (r Recipe) IsZero() bool {
	return r.id == 0
}

// SameRecipe compares ids.
func (r Recipe) SameRecipe(other Recipe) bool {
	return !r.IsZero() && r.id == other.id
}

// Satisfies reports whether match holds for every requirement.
func (r Recipe) Satisfies(match func(Ingredient) bool) bool {
	for _, ing := range r.ingredients {
		if !match(ing) {
			return false
		}
	}
	return true
}

// Equal compares every field.
func (r Recipe) Equal(other Recipe) bool {
	return r.id == other.id &&
		r.name == other.name &&
		slices.EqualFunc(r.ingredients, other.ingredients, Ingredient.Equal) &&
		slices.Equal(r.steps, other.steps)
}

// String renders the recipe as "#3 Pancakes".
func (r Recipe) String() string {
	return fmt.Sprintf("#%d %s", r.id, r.name)
}
