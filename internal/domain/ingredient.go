package domain

import "fmt"

// Ingredient is a named quantity. Two ingredients share identity when their names
// do, whatever their quantities.
type Ingredient struct {
	name     Name
	quantity Quantity
}

// NewIngredient pairs a name with a quantity. A zero name fails with ErrNullInput.
func NewIngredient(name Name, quantity Quantity) (Ingredient, error) {
	if name.IsZero() {
		return Ingredient{}, fmt.Errorf("%w: ingredient name", ErrNullInput)
	}
	return Ingredient{name: name, quantity: quantity}, nil
}

// ParseIngredient validates raw name, amount and unit values.
func ParseIngredient(name string, amount float64, unit string) (Ingredient, error) {
	n, err := ParseName(name)
	if err != nil {
		return Ingredient{}, err
	}
	q, err := ParseQuantity(amount, unit)
	if err != nil {
		return Ingredient{}, fmt.Errorf("ingredient %q: %w", n, err)
	}
	return Ingredient{name: n, quantity: q}, nil
}

// MustIngredient is ParseIngredient for literals known to be valid.
func MustIngredient(name string, amount float64, unit Unit) Ingredient {
	return Ingredient{name: MustParseName(name), quantity: MustQuantity(amount, unit)}
}

// Name returns the ingredient name.
func (i Ingredient) Name() Name {
	return i.name
}

// Quantity returns the current quantity.
func (i Ingredient) Quantity() Quantity {
	return i.quantity
}

// IsZero reports whether i is the zero Ingredient, which stands for no ingredient.
func (i Ingredient) IsZero() bool {
	return i.name.IsZero()
}

// WithQuantity returns a copy of i holding q.
func (i Ingredient) WithQuantity(q Quantity) Ingredient {
	return Ingredient{name: i.name, quantity: q}
}

// SameIngredient compares identity only.
func (i Ingredient) SameIngredient(other Ingredient) bool {
	return !i.IsZero() && i.name.Same(other.name)
}

// Equal compares the full state: exact name text and quantity.
func (i Ingredient) Equal(other Ingredient) bool {
	return i.name == other.name && i.quantity.Equal(other.quantity)
}

// CombineWith adds other's quantity to i. On error i is left unchanged.
func (i *Ingredient) CombineWith(other Ingredient) error {
	sum, err := i.quantity.Add(other.quantity)
	if err != nil {
		return fmt.Errorf("combine %s: %w", i.name, err)
	}
	i.quantity = sum
	return nil
}

// Use subtracts q from i. On error i is left unchanged.
func (i *Ingredient) Use(q Quantity) error {
	rest, err := i.quantity.Sub(q)
	if err != nil {
		return fmt.Errorf("use %s: %w", i.name, err)
	}
	i.quantity = rest
	return nil
}

// String renders the ingredient as "Flour (300 g)".
func (i Ingredient) String() string {
	return fmt.Sprintf("%s (%s)", i.name, i.quantity)
}
