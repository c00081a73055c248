package valueobject

import (
	"fmt"

	"github.com/restoerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var cem = decimal.NewFromInt(100)

// Percentual is a percentage bounded to [0,100], rounded to 2 decimal
// places. Immutable.
type Percentual struct {
	value decimal.Decimal
}

// NewPercentual creates a Percentual from a decimal in [0,100].
func NewPercentual(value decimal.Decimal) (Percentual, error) {
	if value.IsNegative() {
		return Percentual{}, shared.NewValidationError("percentual não pode ser negativo")
	}
	if value.GreaterThan(cem) {
		return Percentual{}, shared.NewValidationError("percentual não pode exceder 100")
	}
	return Percentual{value: value.Round(2)}, nil
}

// NewPercentualFromString creates a Percentual from a decimal string.
func NewPercentualFromString(value string) (Percentual, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Percentual{}, shared.NewValidationError("percentual em formato inválido")
	}
	return NewPercentual(d)
}

// MustNewPercentual creates a Percentual and panics on error. Test helper.
func MustNewPercentual(value string) Percentual {
	p, err := NewPercentualFromString(value)
	if err != nil {
		panic(err)
	}
	return p
}

// PercentualOf computes the percentage that part represents of whole.
// Fails on non-positive whole, negative part, or part greater than
// whole (the result must stay within [0,100]).
func PercentualOf(part, whole decimal.Decimal) (Percentual, error) {
	if !whole.IsPositive() {
		return Percentual{}, shared.NewValidationError("total deve ser maior que zero")
	}
	if part.IsNegative() {
		return Percentual{}, shared.NewValidationError("parcela não pode ser negativa")
	}
	return NewPercentual(part.Div(whole).Mul(cem))
}

// Value returns the percentage as a decimal in [0,100].
func (p Percentual) Value() decimal.Decimal {
	return p.value
}

// IsZero returns true if the percentage is zero.
func (p Percentual) IsZero() bool {
	return p.value.IsZero()
}

// ApplyTo returns value multiplied by the percentage, rounded to 2
// decimal places.
func (p Percentual) ApplyTo(value decimal.Decimal) decimal.Decimal {
	return value.Mul(p.value).Div(cem).Round(2)
}

// ApplyToMoeda returns the given share of a monetary amount. The
// result never exceeds the original, so the monetary ceiling holds.
func (p Percentual) ApplyToMoeda(m Moeda) Moeda {
	share, _ := NewMoeda(p.ApplyTo(m.ToDecimal()), m.Currency())
	return share
}

// ApplyToQuantidade returns the given share of a quantity, rounded to
// the quantity scale.
func (p Percentual) ApplyToQuantidade(q Quantidade) Quantidade {
	share, _ := NewQuantidade(q.ToDecimal().Mul(p.value).Div(cem), q.Unidade())
	return share
}

// Equals returns true for equal percentage values.
func (p Percentual) Equals(other Percentual) bool {
	return p.value.Equal(other.value)
}

// String returns a fixed two-decimal representation with a % suffix.
func (p Percentual) String() string {
	return fmt.Sprintf("%s%%", p.value.StringFixed(2))
}
