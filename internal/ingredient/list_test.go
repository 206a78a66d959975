package ingredient

import (
	"errors"
	"math"
	"slices"
	"testing"

	"larder/internal/domain"
)

func grams(name string, amount float64) domain.Ingredient {
	return domain.MustIngredient(name, amount, domain.UnitGram)
}

func TestFlourScenario(t *testing.T) {
	t.Parallel()

	var l List
	if err := l.Add(grams("Flour", 200)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := l.Add(grams("Flour", 100)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after merge-add: %s", l.Len(), &l)
	}
	if got := l.QuantityOf(grams("Flour", 0)); !got.Equal(domain.MustQuantity(300, domain.UnitGram)) {
		t.Fatalf("QuantityOf(Flour) = %s, want 300 g", got)
	}

	if err := l.Use(grams("Flour", 0), domain.MustQuantity(50, domain.UnitGram)); err != nil {
		t.Fatalf("Use() error = %v", err)
	}
	if got := l.QuantityOf(grams("Flour", 0)); !got.Equal(domain.MustQuantity(250, domain.UnitGram)) {
		t.Fatalf("QuantityOf(Flour) = %s, want 250 g", got)
	}

	before := l.Clone()
	err := l.Use(grams("Sugar", 0), domain.MustQuantity(10, domain.UnitGram))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Use(Sugar) error = %v, want ErrNotFound", err)
	}
	if !l.Equal(before) {
		t.Fatalf("failed use changed the list: %s", &l)
	}
}

func TestAddKeepsOneEntryPerIdentity(t *testing.T) {
	t.Parallel()

	var l List
	for _, ing := range []domain.Ingredient{
		grams("Sugar", 10),
		grams("sugar", 5),
		grams("Salt", 1),
		grams("SUGAR", 5),
	} {
		if err := l.Add(ing); err != nil {
			t.Fatalf("Add(%s) error = %v", ing, err)
		}
	}

	items := l.Items()
	if len(items) != 2 {
		t.Fatalf("Items() = %v, want two entries", items)
	}
	if items[0].Name().String() != "Sugar" || items[0].Quantity().Amount() != 20 {
		t.Fatalf("first entry = %s, want Sugar (20 g)", items[0])
	}
	if items[1].Name().String() != "Salt" {
		t.Fatalf("second entry = %s, want Salt", items[1])
	}
}

func TestAddRejectsZeroAndIncompatible(t *testing.T) {
	t.Parallel()

	var l List
	if err := l.Add(domain.Ingredient{}); !errors.Is(err, domain.ErrNullInput) {
		t.Fatalf("Add(zero) error = %v, want ErrNullInput", err)
	}

	_ = l.Add(grams("Milk", 100))
	err := l.Add(domain.MustIngredient("Milk", 1, domain.UnitLiter))
	if !errors.Is(err, domain.ErrIncompatibleUnit) {
		t.Fatalf("Add() error = %v, want ErrIncompatibleUnit", err)
	}
	if l.Len() != 1 || l.QuantityOf(grams("Milk", 0)).Amount() != 100 {
		t.Fatalf("failed add changed the list: %s", &l)
	}
}

func TestAddOverflowLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	l, _ := NewList(grams("Flour", math.MaxFloat64))
	before := l.Clone()

	if err := l.Add(grams("flour", math.MaxFloat64)); !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("Add() error = %v, want ErrInvalidValue", err)
	}
	if !l.Equal(before) {
		t.Fatalf("failed add changed the list: %s", l)
	}
}

func TestUseInsufficientLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	l, err := NewList(grams("Butter", 20))
	if err != nil {
		t.Fatalf("NewList() error = %v", err)
	}

	err = l.Use(grams("butter", 0), domain.MustQuantity(25, domain.UnitGram))
	if !errors.Is(err, domain.ErrInsufficientQuantity) {
		t.Fatalf("Use() error = %v, want ErrInsufficientQuantity", err)
	}
	if got := l.QuantityOf(grams("Butter", 0)); got.Amount() != 20 {
		t.Fatalf("QuantityOf(Butter) = %s, want 20 g", got)
	}
}

func TestQuantityOfAbsentIsZeroGrams(t *testing.T) {
	t.Parallel()

	var l List
	got := l.QuantityOf(domain.MustIngredient("Saffron", 1, domain.UnitMilligram))
	if !got.Equal(domain.ZeroQuantity()) {
		t.Fatalf("QuantityOf(absent) = %s, want 0 g", got)
	}
}

func TestContainsAndGet(t *testing.T) {
	t.Parallel()

	l, _ := NewList(grams("Brown Sugar", 100))
	if !l.Contains(grams("brown  sugar", 1)) {
		t.Fatal("expected identity match ignoring case and spacing")
	}
	if l.Contains(domain.Ingredient{}) {
		t.Fatal("expected zero ingredient never to be contained")
	}
	got, ok := l.Get(domain.MustParseName("BROWN SUGAR"))
	if !ok || got.Name().String() != "Brown Sugar" {
		t.Fatalf("Get() = %s, %t", got, ok)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	l, _ := NewList(grams("Flour", 1), grams("Sugar", 1), grams("Salt", 1))
	if err := l.Remove(grams("sugar", 99)); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	names := make([]string, 0, l.Len())
	for ing := range l.All() {
		names = append(names, ing.Name().String())
	}
	if !slices.Equal(names, []string{"Flour", "Salt"}) {
		t.Fatalf("names after remove = %v", names)
	}
	if err := l.Remove(grams("Sugar", 1)); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Remove(absent) error = %v, want ErrNotFound", err)
	}
}

func TestSetIngredientsIsAtomic(t *testing.T) {
	t.Parallel()

	l, _ := NewList(grams("Flour", 1))
	before := l.Clone()

	err := l.SetIngredients([]domain.Ingredient{grams("Rice", 1), grams("Oats", 1), grams("rice", 2)})
	if !errors.Is(err, domain.ErrDuplicateIdentity) {
		t.Fatalf("SetIngredients() error = %v, want ErrDuplicateIdentity", err)
	}
	if !l.Equal(before) {
		t.Fatalf("failed replace changed the list: %s", l)
	}

	if err := l.SetIngredients([]domain.Ingredient{grams("Rice", 1), {}}); !errors.Is(err, domain.ErrNullInput) {
		t.Fatalf("SetIngredients() error = %v, want ErrNullInput", err)
	}

	if err := l.SetIngredients([]domain.Ingredient{grams("Rice", 1), grams("Oats", 2)}); err != nil {
		t.Fatalf("SetIngredients() error = %v", err)
	}
	if l.Len() != 2 || l.Contains(grams("Flour", 1)) {
		t.Fatalf("list after replace = %s", l)
	}
}

func TestItemsIsACopy(t *testing.T) {
	t.Parallel()

	l, _ := NewList(grams("Flour", 1))
	items := l.Items()
	items[0] = grams("Sugar", 1)

	if !l.Contains(grams("Flour", 1)) {
		t.Fatalf("mutating Items() changed the list: %s", l)
	}
}

func TestEqualIsStructural(t *testing.T) {
	t.Parallel()

	a, _ := NewList(grams("Flour", 1), grams("Salt", 2))
	b, _ := NewList(grams("Flour", 1), grams("Salt", 2))
	c, _ := NewList(grams("Salt", 2), grams("Flour", 1))

	if !a.Equal(b) {
		t.Fatal("expected lists with the same elements to be equal")
	}
	if a.Equal(c) {
		t.Fatal("expected order to matter")
	}

	var other List
	other.SetList(a)
	a.Clear()
	if a.Len() != 0 || other.Len() != 2 {
		t.Fatalf("SetList did not copy: a=%s other=%s", a, &other)
	}
	if got := other.String(); got != "[Flour (1 g), Salt (2 g)]" {
		t.Fatalf("String() = %q", got)
	}
}
