package mock

import (
	"context"
	"slices"
	"testing"

	"larder/internal/db"
	"larder/internal/domain"
	"larder/internal/recipe"
	"larder/models"
)

func TestNewSeedsExpectedRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database, err := Open(ctx, "file:mock-seed?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("mock database initialization failed: %v", err)
	}

	var items []models.PantryItem
	if err := database.WithContext(ctx).Find(&items).Error; err != nil {
		t.Fatalf("query pantry items: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected seeded pantry items")
	}

	var ingredients []models.RecipeIngredient
	if err := database.WithContext(ctx).Find(&ingredients).Error; err != nil {
		t.Fatalf("query recipe ingredients: %v", err)
	}
	if len(ingredients) == 0 {
		t.Fatal("expected seeded recipe ingredients")
	}
}

func TestSeededBookLoadsAndFilters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database, err := Open(ctx, "file:mock-filter?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("mock database initialization failed: %v", err)
	}
	store, err := db.NewStore(database)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	book, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want, err := SampleBook()
	if err != nil {
		t.Fatalf("SampleBook() error = %v", err)
	}
	if !book.Equal(want) {
		t.Fatal("loaded book differs from the sample book")
	}

	model := recipe.NewModel(book)
	if err := model.UpdateFilteredRecipeList(model.InStock()); err != nil {
		t.Fatalf("UpdateFilteredRecipeList() error = %v", err)
	}
	var names []string
	for r := range model.FilteredRecipes() {
		names = append(names, r.Name().String())
	}
	if !slices.Equal(names, []string{"Pancakes"}) {
		t.Fatalf("cookable recipes = %v, want [Pancakes]", names)
	}

	if !model.HasRecipe(domain.MustParseName("cheese omelette")) {
		t.Fatal("expected the omelette to be seeded")
	}
}
