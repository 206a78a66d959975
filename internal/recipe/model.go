package recipe

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"larder/internal/domain"
	applog "larder/internal/log"
)

// EventKind classifies a change published by the Model.
type EventKind int

const (
	EventBookReset EventKind = iota
	EventIngredientsChanged
	EventRecipeAdded
	EventRecipeDeleted
	EventRecipeCooked
	EventFilterChanged
)

// String returns a human-readable event kind.
func (k EventKind) String() string {
	switch k {
	case EventBookReset:
		return "book_reset"
	case EventIngredientsChanged:
		return "ingredients_changed"
	case EventRecipeAdded:
		return "recipe_added"
	case EventRecipeDeleted:
		return "recipe_deleted"
	case EventRecipeCooked:
		return "recipe_cooked"
	case EventFilterChanged:
		return "filter_changed"
	default:
		return "unknown"
	}
}

// Event describes one successful mutation.
type Event struct {
	Kind       EventKind
	RecipeID   int    // set for recipe events
	Ingredient string // set for single-ingredient events
}

// Listener receives events synchronously, inside the mutating call.
type Listener func(Event)

// Model is what UI and command layers talk to. It owns a Book, keeps the active
// recipe filter and notifies listeners after every change. It is not safe for
// concurrent use; one owner drives it.
type Model struct {
	book      *Book
	predicate Predicate
	listeners map[int]Listener
	nextID    int
}

// NewModel wraps book, or an empty book when nil. The filter starts as ShowAll.
func NewModel(book *Book) *Model {
	if book == nil {
		book = NewBook()
	}
	return &Model{
		book:      book,
		predicate: ShowAll,
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers l and returns a function that removes it.
func (m *Model) Subscribe(l Listener) (unsubscribe func()) {
	if l == nil {
		return func() {}
	}
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	return func() { delete(m.listeners, id) }
}

func (m *Model) publish(e Event) {
	applog.Debug(context.Background(), "recipe model changed",
		"event", e.Kind.String(),
		"recipe", e.RecipeID,
		"ingredient", e.Ingredient,
	)
	ids := make([]int, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if l, ok := m.listeners[id]; ok {
			l(e)
		}
	}
}

// SetRecipeBook replaces the book's data with a copy of data.
func (m *Model) SetRecipeBook(data ReadOnlyBook) error {
	if IsNull(data) {
		return fmt.Errorf("set recipe book: %w", domain.ErrNullInput)
	}
	if err := m.book.ResetData(data); err != nil {
		return err
	}
	m.publish(Event{Kind: EventBookReset})
	return nil
}

// RecipeBook returns a snapshot of the book. Changing the snapshot does not
// touch the model.
func (m *Model) RecipeBook() ReadOnlyBook {
	return m.book.clone()
}

// NextRecipeID returns an id no recipe in the book uses yet.
func (m *Model) NextRecipeID() int {
	return m.book.NextRecipeID()
}

// InStock returns a predicate over the model's live pantry.
func (m *Model) InStock() Predicate {
	return InStock(&m.book.pantry)
}

// HasRecipe reports whether a recipe named name exists.
func (m *Model) HasRecipe(name domain.Name) bool {
	return m.book.HasRecipe(name)
}

// AddRecipe adds r to the book.
func (m *Model) AddRecipe(r domain.Recipe) error {
	if err := m.book.AddRecipe(r); err != nil {
		return err
	}
	m.publish(Event{Kind: EventRecipeAdded, RecipeID: r.ID()})
	return nil
}

// DeleteRecipe removes the recipe with id.
func (m *Model) DeleteRecipe(id int) error {
	if err := m.book.DeleteRecipe(id); err != nil {
		return err
	}
	m.publish(Event{Kind: EventRecipeDeleted, RecipeID: id})
	return nil
}

// CookRecipe consumes the recipe's requirements from the pantry, all or nothing.
func (m *Model) CookRecipe(id int) error {
	if err := m.book.Cook(id); err != nil {
		return err
	}
	m.publish(Event{Kind: EventRecipeCooked, RecipeID: id})
	return nil
}

// HasIngredient reports whether the pantry holds ing.
func (m *Model) HasIngredient(ing domain.Ingredient) bool {
	return m.book.HasIngredient(ing)
}

// QuantityOf returns the pantry quantity of ing, 0 g if absent.
func (m *Model) QuantityOf(ing domain.Ingredient) domain.Quantity {
	return m.book.QuantityOf(ing)
}

// AddIngredient stocks ing in the pantry.
func (m *Model) AddIngredient(ing domain.Ingredient) error {
	if err := m.book.AddIngredient(ing); err != nil {
		return err
	}
	m.publish(Event{Kind: EventIngredientsChanged, Ingredient: ing.Name().String()})
	return nil
}

// UseIngredient consumes quantity of target.
func (m *Model) UseIngredient(target domain.Ingredient, quantity domain.Quantity) error {
	if err := m.book.UseIngredient(target, quantity); err != nil {
		return err
	}
	m.publish(Event{Kind: EventIngredientsChanged, Ingredient: target.Name().String()})
	return nil
}

// RemoveIngredient drops target from the pantry.
func (m *Model) RemoveIngredient(target domain.Ingredient) error {
	if err := m.book.RemoveIngredient(target); err != nil {
		return err
	}
	m.publish(Event{Kind: EventIngredientsChanged, Ingredient: target.Name().String()})
	return nil
}

// FilteredRecipes yields the recipes passing the active predicate in book order.
// Each iteration reads the live collection.
func (m *Model) FilteredRecipes() iter.Seq[domain.Recipe] {
	return func(yield func(domain.Recipe) bool) {
		p := m.predicate
		for _, r := range m.book.Recipes() {
			if !r.Satisfies(p) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// FilteredRecipeList collects FilteredRecipes.
func (m *Model) FilteredRecipeList() []domain.Recipe {
	return slices.Collect(m.FilteredRecipes())
}

// UpdateFilteredRecipeList replaces the active predicate.
func (m *Model) UpdateFilteredRecipeList(p Predicate) error {
	if p == nil {
		return fmt.Errorf("update recipe filter: %w", domain.ErrNullInput)
	}
	m.predicate = p
	m.publish(Event{Kind: EventFilterChanged})
	return nil
}
