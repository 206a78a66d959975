package recipe

import (
	"errors"
	"slices"
	"testing"

	"larder/internal/domain"
)

func TestListAddRemoveByID(t *testing.T) {
	t.Parallel()

	var l List
	if err := l.Add(mustRecipe(t, 7, "Soup")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := l.Add(mustRecipe(t, 3, "Stew")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := l.Add(mustRecipe(t, 7, "Other Soup")); !errors.Is(err, domain.ErrDuplicateIdentity) {
		t.Fatalf("Add(duplicate) error = %v, want ErrDuplicateIdentity", err)
	}

	if !l.Contains(3) || l.Contains(4) {
		t.Fatal("Contains() did not match ids")
	}
	if !l.ContainsName(domain.MustParseName("SOUP")) {
		t.Fatal("ContainsName() did not match ignoring case")
	}
	if r, ok := l.Get(7); !ok || r.Name().String() != "Soup" {
		t.Fatalf("Get(7) = %s, %t", r, ok)
	}
	if l.NextID() != 8 {
		t.Fatalf("NextID() = %d, want 8", l.NextID())
	}

	if err := l.Remove(7); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := l.Remove(7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Remove(absent) error = %v, want ErrNotFound", err)
	}
	if got := ids(slices.Collect(l.All())); !slices.Equal(got, []int{3}) {
		t.Fatalf("All() = %v, want [3]", got)
	}

	l.Clear()
	if l.Len() != 0 || l.NextID() != 1 {
		t.Fatalf("after Clear: Len() = %d, NextID() = %d", l.Len(), l.NextID())
	}
}

func TestListSetRecipesIsAtomic(t *testing.T) {
	t.Parallel()

	var l List
	_ = l.Add(mustRecipe(t, 1, "Soup"))

	err := l.SetRecipes([]domain.Recipe{mustRecipe(t, 2, "Stew"), mustRecipe(t, 2, "Curry")})
	if !errors.Is(err, domain.ErrDuplicateIdentity) {
		t.Fatalf("SetRecipes() error = %v, want ErrDuplicateIdentity", err)
	}
	if got := ids(l.Items()); !slices.Equal(got, []int{1}) {
		t.Fatalf("failed replace changed the list: %v", got)
	}
}

func TestBookResetDataValidatesBothCollections(t *testing.T) {
	t.Parallel()

	book, err := NewBookOf(
		[]domain.Ingredient{domain.MustIngredient("Rice", 1, domain.UnitKilogram)},
		[]domain.Recipe{mustRecipe(t, 1, "Risotto")},
	)
	if err != nil {
		t.Fatalf("NewBookOf() error = %v", err)
	}

	bad := &Book{}
	_ = bad.pantry.SetIngredients([]domain.Ingredient{domain.MustIngredient("Oats", 1, domain.UnitGram)})
	bad.recipes.items = []domain.Recipe{mustRecipe(t, 1, "A"), mustRecipe(t, 1, "B")}

	if err := book.ResetData(bad); !errors.Is(err, domain.ErrDuplicateIdentity) {
		t.Fatalf("ResetData() error = %v, want ErrDuplicateIdentity", err)
	}
	if book.HasIngredient(domain.MustIngredient("Oats", 1, domain.UnitGram)) {
		t.Fatal("pantry replaced although recipes were invalid")
	}

	if err := book.ResetData(nil); !errors.Is(err, domain.ErrNullInput) {
		t.Fatalf("ResetData(nil) error = %v, want ErrNullInput", err)
	}
}

func TestBookEqual(t *testing.T) {
	t.Parallel()

	a, _ := NewBookOf([]domain.Ingredient{domain.MustIngredient("Rice", 1, domain.UnitKilogram)}, []domain.Recipe{mustRecipe(t, 1, "Risotto")})
	b, _ := NewBookFrom(a)

	if !a.Equal(b) {
		t.Fatal("expected copied book to be equal")
	}
	_ = b.DeleteRecipe(1)
	if a.Equal(b) {
		t.Fatal("expected books to differ after delete")
	}
	if _, ok := a.Recipe(1); !ok {
		t.Fatal("delete on the copy removed the recipe from the original")
	}
}

func TestNilBookIsNullInput(t *testing.T) {
	t.Parallel()

	var nilBook *Book
	if !IsNull(nil) || !IsNull(nilBook) || IsNull(NewBook()) {
		t.Fatal("IsNull() did not recognise nil books")
	}
	if len(nilBook.Ingredients()) != 0 || len(nilBook.Recipes()) != 0 {
		t.Fatal("expected a nil book to read as empty")
	}

	if err := NewBook().ResetData(nilBook); !errors.Is(err, domain.ErrNullInput) {
		t.Fatalf("ResetData(nil *Book) error = %v, want ErrNullInput", err)
	}
	if _, err := NewBookFrom(nilBook); !errors.Is(err, domain.ErrNullInput) {
		t.Fatalf("NewBookFrom(nil *Book) error = %v, want ErrNullInput", err)
	}
	if err := NewModel(nil).SetRecipeBook(nilBook); !errors.Is(err, domain.ErrNullInput) {
		t.Fatalf("SetRecipeBook(nil *Book) error = %v, want ErrNullInput", err)
	}
}
