package domain

import (
	"fmt"
	"math"
	"strconv"
)

// epsilon absorbs floating point noise left over by unit conversion.
const epsilon = 1e-9

// Quantity is a non-negative amount paired with a unit. The zero value is 0 g.
type Quantity struct {
	amount float64
	unit   Unit
}

// NewQuantity validates amount and unit.
func NewQuantity(amount float64, unit Unit) (Quantity, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Quantity{}, fmt.Errorf("%w: amount %v is not a finite number", ErrInvalidValue, amount)
	}
	if amount < 0 {
		return Quantity{}, fmt.Errorf("%w: amount %v is negative", ErrInvalidValue, amount)
	}
	if !unit.Valid() {
		return Quantity{}, fmt.Errorf("%w: unknown unit %d", ErrInvalidValue, int(unit))
	}
	return Quantity{amount: amount, unit: unit}, nil
}

// MustQuantity is NewQuantity for literals known to be valid.
func MustQuantity(amount float64, unit Unit) Quantity {
	q, err := NewQuantity(amount, unit)
	if err != nil {
		panic(err)
	}
	return q
}

// ParseQuantity builds a quantity from an amount and a unit spelling.
func ParseQuantity(amount float64, unit string) (Quantity, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Quantity{}, err
	}
	return NewQuantity(amount, u)
}

// ZeroQuantity returns 0 g.
func ZeroQuantity() Quantity {
	return Quantity{}
}

// Amount returns the numeric amount.
func (q Quantity) Amount() float64 {
	return q.amount
}

// Unit returns the unit of measure.
func (q Quantity) Unit() Unit {
	return q.unit
}

// IsZero reports whether the amount is zero, whatever the unit.
func (q Quantity) IsZero() bool {
	return q.amount == 0
}

// In converts q into unit. Units of different dimensions fail with ErrIncompatibleUnit,
// a result beyond float64 range with ErrInvalidValue.
func (q Quantity) In(unit Unit) (Quantity, error) {
	if q.unit == unit {
		return q, nil
	}
	if !q.unit.CompatibleWith(unit) {
		return Quantity{}, fmt.Errorf("%w: cannot convert %s to %s", ErrIncompatibleUnit, q.unit, unit)
	}
	return finite(q.amount*units[q.unit].factor/units[unit].factor, unit)
}

// Add returns q + other expressed in q's unit.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	converted, err := other.In(q.unit)
	if err != nil {
		return Quantity{}, err
	}
	return finite(q.amount+converted.amount, q.unit)
}

// finite rejects arithmetic results that overflowed float64.
func finite(amount float64, unit Unit) (Quantity, error) {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return Quantity{}, fmt.Errorf("%w: amount out of range in %s", ErrInvalidValue, unit)
	}
	return Quantity{amount: amount, unit: unit}, nil
}

// Sub returns q - other expressed in q's unit. A result below zero fails with
// ErrInsufficientQuantity; conversion noise around zero clamps to zero.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	converted, err := other.In(q.unit)
	if err != nil {
		return Quantity{}, err
	}
	amount := q.amount - converted.amount
	if amount < -epsilon {
		return Quantity{}, fmt.Errorf("%w: have %s, need %s", ErrInsufficientQuantity, q, other)
	}
	if amount < epsilon {
		amount = 0
	}
	return Quantity{amount: amount, unit: q.unit}, nil
}

// Covers reports whether q is at least need. A zero need is always covered and
// incompatible units never are.
func (q Quantity) Covers(need Quantity) bool {
	if need.IsZero() {
		return true
	}
	converted, err := need.In(q.unit)
	if err != nil {
		return false
	}
	return q.amount+epsilon >= converted.amount
}

// Equal reports whether both quantities have the same unit and amount.
func (q Quantity) Equal(other Quantity) bool {
	return q.unit == other.unit && q.amount == other.amount
}

// String renders the quantity as "300 g".
func (q Quantity) String() string {
	return strconv.FormatFloat(q.amount, 'f', -1, 64) + " " + q.unit.String()
}
