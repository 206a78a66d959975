package recipe

import (
	"fmt"

	"larder/internal/domain"
	"larder/internal/ingredient"
)

// ReadOnlyBook is the view of a recipe book handed to storage and UI layers.
type ReadOnlyBook interface {
	Ingredients() []domain.Ingredient
	Recipes() []domain.Recipe
}

// Compile-time interface check.
var _ ReadOnlyBook = (*Book)(nil)

// IsNull reports whether data is nil or a nil *Book.
func IsNull(data ReadOnlyBook) bool {
	if data == nil {
		return true
	}
	b, ok := data.(*Book)
	return ok && b == nil
}

// Book is the aggregate root owning the pantry and the recipes.
type Book struct {
	pantry  ingredient.List
	recipes List
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{}
}

// NewBookFrom copies data into a new book.
func NewBookFrom(data ReadOnlyBook) (*Book, error) {
	b := NewBook()
	if err := b.ResetData(data); err != nil {
		return nil, err
	}
	return b, nil
}

// NewBookOf builds a book holding ingredients and recipes.
func NewBookOf(ingredients []domain.Ingredient, recipes []domain.Recipe) (*Book, error) {
	b := NewBook()
	if err := b.reset(ingredients, recipes); err != nil {
		return nil, err
	}
	return b, nil
}

// ResetData replaces both collections with data. Both are validated before
// either is replaced.
func (b *Book) ResetData(data ReadOnlyBook) error {
	if IsNull(data) {
		return fmt.Errorf("reset recipe book: %w", domain.ErrNullInput)
	}
	if err := b.reset(data.Ingredients(), data.Recipes()); err != nil {
		return fmt.Errorf("reset recipe book: %w", err)
	}
	return nil
}

func (b *Book) reset(ingredients []domain.Ingredient, recipes []domain.Recipe) error {
	pantry, err := ingredient.NewList(ingredients...)
	if err != nil {
		return err
	}
	var list List
	if err := list.SetRecipes(recipes); err != nil {
		return err
	}
	b.pantry.SetList(pantry)
	b.recipes = list
	return nil
}

// Ingredients returns the pantry contents in order.
func (b *Book) Ingredients() []domain.Ingredient {
	if b == nil {
		return nil
	}
	return b.pantry.Items()
}

// Recipes returns the recipes in order.
func (b *Book) Recipes() []domain.Recipe {
	if b == nil {
		return nil
	}
	return b.recipes.Items()
}

// HasIngredient reports whether the pantry holds an ingredient sharing ing's identity.
func (b *Book) HasIngredient(ing domain.Ingredient) bool {
	return b.pantry.Contains(ing)
}

// QuantityOf returns the pantry quantity of ing, 0 g if absent.
func (b *Book) QuantityOf(ing domain.Ingredient) domain.Quantity {
	return b.pantry.QuantityOf(ing)
}

// AddIngredient stocks ing, merging with an existing entry.
func (b *Book) AddIngredient(ing domain.Ingredient) error {
	return b.pantry.Add(ing)
}

// UseIngredient consumes quantity of target from the pantry.
func (b *Book) UseIngredient(target domain.Ingredient, quantity domain.Quantity) error {
	return b.pantry.Use(target, quantity)
}

// RemoveIngredient drops target from the pantry.
func (b *Book) RemoveIngredient(target domain.Ingredient) error {
	return b.pantry.Remove(target)
}

// HasRecipe reports whether a recipe named name exists.
func (b *Book) HasRecipe(name domain.Name) bool {
	return b.recipes.ContainsName(name)
}

// Recipe returns the recipe with id.
func (b *Book) Recipe(id int) (domain.Recipe, bool) {
	return b.recipes.Get(id)
}

// AddRecipe adds r; its id must be unused.
func (b *Book) AddRecipe(r domain.Recipe) error {
	return b.recipes.Add(r)
}

// DeleteRecipe removes the recipe with id.
func (b *Book) DeleteRecipe(id int) error {
	return b.recipes.Remove(id)
}

// NextRecipeID returns an id no recipe uses yet.
func (b *Book) NextRecipeID() int {
	return b.recipes.NextID()
}

// Cook consumes every requirement of the recipe with id from the pantry. Either
// all requirements are consumed or the pantry is left unchanged.
func (b *Book) Cook(id int) error {
	r, ok := b.recipes.Get(id)
	if !ok {
		return fmt.Errorf("cook recipe #%d: %w", id, domain.ErrNotFound)
	}
	scratch := b.pantry.Clone()
	for _, need := range r.Ingredients() {
		if err := scratch.Use(need, need.Quantity()); err != nil {
			return fmt.Errorf("cook %s: %w", r, err)
		}
	}
	b.pantry.SetList(scratch)
	return nil
}

func (b *Book) clone() *Book {
	c := NewBook()
	c.pantry.SetList(&b.pantry)
	c.recipes.items = b.recipes.Items()
	return c
}

// Equal compares both books structurally.
func (b *Book) Equal(other *Book) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.pantry.Equal(&other.pantry) && b.recipes.Equal(&other.recipes)
}
