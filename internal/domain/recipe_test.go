package domain

import (
	"errors"
	"testing"
)

func TestNewRecipeValidates(t *testing.T) {
	t.Parallel()

	name := MustParseName("Pancakes")
	flour := MustIngredient("Flour", 200, UnitGram)

	tests := []struct {
		name        string
		id          int
		recipeName  Name
		ingredients []Ingredient
		steps       []Step
		want        error
	}{
		{"non positive id", 0, name, nil, nil, ErrInvalidValue},
		{"missing name", 1, Name{}, nil, nil, ErrNullInput},
		{"zero ingredient", 1, name, []Ingredient{{}}, nil, ErrNullInput},
		{"duplicate ingredient", 1, name, []Ingredient{flour, MustIngredient("FLOUR", 1, UnitKilogram)}, nil, ErrDuplicateIdentity},
		{"blank step", 1, name, []Ingredient{flour}, []Step{"Mix", "  "}, ErrInvalidValue},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewRecipe(tt.id, tt.recipeName, tt.ingredients, tt.steps); !errors.Is(err, tt.want) {
				t.Fatalf("NewRecipe() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRecipeCopiesInputs(t *testing.T) {
	t.Parallel()

	ingredients := []Ingredient{MustIngredient("Flour", 200, UnitGram)}
	steps := []Step{" Mix "}
	r, err := NewRecipe(3, MustParseName("Bread"), ingredients, steps)
	if err != nil {
		t.Fatalf("NewRecipe() error = %v", err)
	}

	ingredients[0] = MustIngredient("Sugar", 1, UnitGram)
	got := r.Ingredients()
	got[0] = MustIngredient("Salt", 1, UnitGram)

	if r.Ingredients()[0].Name().String() != "Flour" {
		t.Fatalf("recipe ingredients were mutated: %v", r.Ingredients())
	}
	if r.Steps()[0] != "Mix" {
		t.Fatalf("step = %q, want trimmed %q", r.Steps()[0], "Mix")
	}
	if r.String() != "#3 Bread" {
		t.Fatalf("String() = %q", r.String())
	}
}

func TestRecipeIdentityAndSatisfies(t *testing.T) {
	t.Parallel()

	a, _ := NewRecipe(1, MustParseName("Toast"), []Ingredient{MustIngredient("Bread", 2, UnitPiece)}, []Step{"Toast it"})
	b, _ := NewRecipe(1, MustParseName("Other Toast"), nil, nil)

	if !a.SameRecipe(b) {
		t.Fatal("expected recipes with the same id to share identity")
	}
	if a.Equal(b) {
		t.Fatal("expected different recipes to be unequal")
	}
	if !b.Satisfies(func(Ingredient) bool { return false }) {
		t.Fatal("expected a recipe without requirements to satisfy any predicate")
	}
	if a.Satisfies(func(i Ingredient) bool { return i.Name().Key() == "butter" }) {
		t.Fatal("expected toast not to satisfy a butter-only predicate")
	}
}
