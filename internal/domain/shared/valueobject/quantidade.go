package valueobject

import (
	"fmt"

	"github.com/restoerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Units of measure used across the catalog.
const (
	UnidadeUN = "UN" // unit/piece
	UnidadeKG = "KG" // kilogram
	UnidadeG  = "G"  // gram
	UnidadeL  = "L"  // liter
	UnidadeML = "ML" // milliliter
)

// quantidadeDecimalPlaces is the scale of every quantity.
const quantidadeDecimalPlaces = 3

var mil = decimal.NewFromInt(1000)

// Quantidade is a measured amount tagged with a unit of measure:
// non-negative, rounded to 3 decimal places, unit-checked arithmetic.
// Immutable - all operations return new instances.
type Quantidade struct {
	value decimal.Decimal
	unit  string
}

// NewQuantidade creates a Quantidade from a decimal value and unit.
func NewQuantidade(value decimal.Decimal, unit string) (Quantidade, error) {
	if unit == "" {
		return Quantidade{}, shared.NewValidationError("unidade de medida não pode ser vazia")
	}
	if value.IsNegative() {
		return Quantidade{}, shared.NewValidationError("quantidade não pode ser negativa")
	}
	return Quantidade{value: value.Round(quantidadeDecimalPlaces), unit: unit}, nil
}

// NewQuantidadeFromString creates a Quantidade from a decimal string.
func NewQuantidadeFromString(value, unit string) (Quantidade, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Quantidade{}, shared.NewValidationError("quantidade em formato inválido")
	}
	return NewQuantidade(d, unit)
}

// MustNewQuantidade creates a Quantidade and panics on error. Test helper.
func MustNewQuantidade(value, unit string) Quantidade {
	q, err := NewQuantidadeFromString(value, unit)
	if err != nil {
		panic(err)
	}
	return q
}

// ZeroQuantidade returns a zero quantity with the given unit.
func ZeroQuantidade(unit string) Quantidade {
	return Quantidade{value: decimal.Zero, unit: unit}
}

// ToDecimal returns the value as a decimal.
func (q Quantidade) ToDecimal() decimal.Decimal {
	return q.value
}

// Unidade returns the unit of measure.
func (q Quantidade) Unidade() string {
	return q.unit
}

// IsZero returns true if the quantity is zero.
func (q Quantidade) IsZero() bool {
	return q.value.IsZero()
}

// Add returns the sum of both quantities; fails on mixed units.
func (q Quantidade) Add(other Quantidade) (Quantidade, error) {
	if err := q.sameUnit(other); err != nil {
		return Quantidade{}, err
	}
	return NewQuantidade(q.value.Add(other.value), q.unit)
}

// Subtract returns the difference; fails on mixed units or if the
// result would be negative.
func (q Quantidade) Subtract(other Quantidade) (Quantidade, error) {
	if err := q.sameUnit(other); err != nil {
		return Quantidade{}, err
	}
	diff := q.value.Sub(other.value)
	if diff.IsNegative() {
		return Quantidade{}, shared.NewValidationError("quantidade resultante seria negativa")
	}
	return NewQuantidade(diff, q.unit)
}

// Multiply returns the quantity multiplied by a non-negative factor.
func (q Quantidade) Multiply(factor decimal.Decimal) (Quantidade, error) {
	if factor.IsNegative() {
		return Quantidade{}, shared.NewValidationError("fator de multiplicação não pode ser negativo")
	}
	return NewQuantidade(q.value.Mul(factor), q.unit)
}

// ConvertTo converts between the known metric pairs (G<->KG, ML<->L).
// Converting to the same unit is a no-op; any other pair fails.
func (q Quantidade) ConvertTo(unit string) (Quantidade, error) {
	if unit == q.unit {
		return q, nil
	}
	switch {
	case q.unit == UnidadeG && unit == UnidadeKG:
		return NewQuantidade(q.value.Div(mil), UnidadeKG)
	case q.unit == UnidadeKG && unit == UnidadeG:
		return NewQuantidade(q.value.Mul(mil), UnidadeG)
	case q.unit == UnidadeML && unit == UnidadeL:
		return NewQuantidade(q.value.Div(mil), UnidadeL)
	case q.unit == UnidadeL && unit == UnidadeML:
		return NewQuantidade(q.value.Mul(mil), UnidadeML)
	}
	return Quantidade{}, shared.NewValidationError(fmt.Sprintf("conversão de %s para %s não suportada", q.unit, unit))
}

// Equals returns true for same unit and same value.
func (q Quantidade) Equals(other Quantidade) bool {
	return q.unit == other.unit && q.value.Equal(other.value)
}

// GreaterThanOrEqual compares values; fails on mixed units.
func (q Quantidade) GreaterThanOrEqual(other Quantidade) (bool, error) {
	if err := q.sameUnit(other); err != nil {
		return false, err
	}
	return q.value.GreaterThanOrEqual(other.value), nil
}

// String returns a fixed three-decimal representation with the unit.
func (q Quantidade) String() string {
	return fmt.Sprintf("%s %s", q.value.StringFixed(quantidadeDecimalPlaces), q.unit)
}

func (q Quantidade) sameUnit(other Quantidade) error {
	if q.unit != other.unit {
		return shared.NewValidationError(fmt.Sprintf("não é possível operar unidades diferentes: %s e %s", q.unit, other.unit))
	}
	return nil
}
