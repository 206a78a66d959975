package jsonstore

import (
	"errors"
	"fmt"

	"larder/internal/domain"
	"larder/internal/recipe"
)

const missingFieldFormat = "%s's %s field is missing"

// Pointer fields tell an absent key apart from a zero value.

type document struct {
	Ingredients []ingredientRecord `json:"ingredients"`
	Recipes     []recipeRecord     `json:"recipes"`
}

type ingredientRecord struct {
	Name   *string  `json:"name"`
	Amount *float64 `json:"amount"`
	Unit   *string  `json:"unit"`
}

type recipeRecord struct {
	ID          *int               `json:"id"`
	Name        *string            `json:"name"`
	Ingredients []ingredientRecord `json:"ingredients"`
	Steps       []string           `json:"steps"`
}

func newDocument(book recipe.ReadOnlyBook) document {
	doc := document{
		Ingredients: make([]ingredientRecord, 0),
		Recipes:     make([]recipeRecord, 0),
	}
	for _, ing := range book.Ingredients() {
		doc.Ingredients = append(doc.Ingredients, newIngredientRecord(ing))
	}
	for _, r := range book.Recipes() {
		id := r.ID()
		name := r.Name().String()
		record := recipeRecord{
			ID:          &id,
			Name:        &name,
			Ingredients: make([]ingredientRecord, 0),
			Steps:       make([]string, 0),
		}
		for _, ing := range r.Ingredients() {
			record.Ingredients = append(record.Ingredients, newIngredientRecord(ing))
		}
		for _, step := range r.Steps() {
			record.Steps = append(record.Steps, string(step))
		}
		doc.Recipes = append(doc.Recipes, record)
	}
	return doc
}

func newIngredientRecord(ing domain.Ingredient) ingredientRecord {
	name := ing.Name().String()
	amount := ing.Quantity().Amount()
	unit := ing.Quantity().Unit().String()
	return ingredientRecord{Name: &name, Amount: &amount, Unit: &unit}
}

func (d document) toModel() (*recipe.Book, error) {
	var errs []error

	pantry := make([]domain.Ingredient, 0, len(d.Ingredients))
	for i, record := range d.Ingredients {
		ing, err := record.toModel()
		if err != nil {
			errs = append(errs, fmt.Errorf("pantry ingredient %d: %w", i, err))
			continue
		}
		pantry = append(pantry, ing)
	}

	recipes := make([]domain.Recipe, 0, len(d.Recipes))
	for i, record := range d.Recipes {
		r, err := record.toModel()
		if err != nil {
			errs = append(errs, fmt.Errorf("recipe %d: %w", i, err))
			continue
		}
		recipes = append(recipes, r)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return recipe.NewBookOf(pantry, recipes)
}

func (r ingredientRecord) toModel() (domain.Ingredient, error) {
	if r.Name == nil {
		return domain.Ingredient{}, fmt.Errorf("%w: "+missingFieldFormat, domain.ErrMissingField, "ingredient", "name")
	}
	if r.Amount == nil {
		return domain.Ingredient{}, fmt.Errorf("%w: "+missingFieldFormat, domain.ErrMissingField, "ingredient", "amount")
	}
	if r.Unit == nil {
		return domain.Ingredient{}, fmt.Errorf("%w: "+missingFieldFormat, domain.ErrMissingField, "ingredient", "unit")
	}
	return domain.ParseIngredient(*r.Name, *r.Amount, *r.Unit)
}

// toModel decodes every ingredient entry and reports all failures together
// rather than dropping malformed entries.
func (r recipeRecord) toModel() (domain.Recipe, error) {
	if r.ID == nil {
		return domain.Recipe{}, fmt.Errorf("%w: "+missingFieldFormat, domain.ErrMissingField, "recipe", "id")
	}
	if r.Name == nil {
		return domain.Recipe{}, fmt.Errorf("%w: "+missingFieldFormat, domain.ErrMissingField, "recipe", "name")
	}
	if r.Ingredients == nil {
		return domain.Recipe{}, fmt.Errorf("%w: "+missingFieldFormat, domain.ErrMissingField, "recipe", "ingredients")
	}
	if r.Steps == nil {
		return domain.Recipe{}, fmt.Errorf("%w: "+missingFieldFormat, domain.ErrMissingField, "recipe", "steps")
	}

	name, err := domain.ParseName(*r.Name)
	if err != nil {
		return domain.Recipe{}, err
	}

	var errs []error
	ingredients := make([]domain.Ingredient, 0, len(r.Ingredients))
	for i, record := range r.Ingredients {
		ing, err := record.toModel()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s ingredient %d: %w", name, i, err))
			continue
		}
		ingredients = append(ingredients, ing)
	}

	steps := make([]domain.Step, 0, len(r.Steps))
	for i, raw := range r.Steps {
		step, err := domain.ParseStep(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s step %d: %w", name, i+1, err))
			continue
		}
		steps = append(steps, step)
	}

	if err := errors.Join(errs...); err != nil {
		return domain.Recipe{}, err
	}
	return domain.NewRecipe(*r.ID, name, ingredients, steps)
}
