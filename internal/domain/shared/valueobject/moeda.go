package valueobject

import (
	"fmt"

	"github.com/restoerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	BRL Currency = "BRL" // Brazilian Real (default)
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
)

// DefaultCurrency is the default currency for the system
const DefaultCurrency = BRL

// moedaDecimalPlaces is the scale of every monetary amount.
const moedaDecimalPlaces = 2

// MaxMoedaValue is the ceiling for any monetary amount in the domain.
var MaxMoedaValue = decimal.RequireFromString("999999999.99")

// Moeda is the monetary value object: non-negative, capped at
// MaxMoedaValue, always rounded to 2 decimal places and tagged with a
// currency. It is immutable - all arithmetic returns new instances -
// and currency-checked: operations mixing currencies fail.
type Moeda struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoeda creates a Moeda from a decimal amount and currency. An
// empty currency defaults to BRL. The explicit decimal constructor is
// the only way into the type; there are no silent coercions from
// primitives.
func NewMoeda(amount decimal.Decimal, currency Currency) (Moeda, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	if amount.IsNegative() {
		return Moeda{}, shared.NewValidationError("valor monetário não pode ser negativo")
	}
	rounded := amount.Round(moedaDecimalPlaces)
	if rounded.GreaterThan(MaxMoedaValue) {
		return Moeda{}, shared.NewValidationError(fmt.Sprintf("valor monetário não pode exceder %s", MaxMoedaValue.StringFixed(2)))
	}
	return Moeda{amount: rounded, currency: currency}, nil
}

// NewMoedaBRL creates a Moeda in BRL.
func NewMoedaBRL(amount decimal.Decimal) (Moeda, error) {
	return NewMoeda(amount, BRL)
}

// NewMoedaFromString creates a Moeda from a decimal string.
func NewMoedaFromString(amount string, currency Currency) (Moeda, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Moeda{}, shared.NewValidationError("valor monetário em formato inválido")
	}
	return NewMoeda(d, currency)
}

// MustNewMoeda creates a Moeda and panics on error. Test helper.
func MustNewMoeda(amount string, currency Currency) Moeda {
	m, err := NewMoedaFromString(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoeda returns a zero-value Moeda in the given currency.
func ZeroMoeda(currency Currency) Moeda {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Moeda{amount: decimal.Zero.Round(moedaDecimalPlaces), currency: currency}
}

// ToDecimal returns the amount as a decimal. The named conversion is
// deliberate: monetary amounts leave the type only explicitly.
func (m Moeda) ToDecimal() decimal.Decimal {
	return m.amount
}

// Currency returns the currency tag.
func (m Moeda) Currency() Currency {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

// IsZero returns true if the amount is zero.
func (m Moeda) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive returns true if the amount is greater than zero.
func (m Moeda) IsPositive() bool {
	return m.amount.IsPositive()
}

// Add returns the sum of both amounts. Fails on mixed currencies or if
// the sum exceeds the ceiling.
func (m Moeda) Add(other Moeda) (Moeda, error) {
	if err := m.sameCurrency(other); err != nil {
		return Moeda{}, err
	}
	return NewMoeda(m.amount.Add(other.amount), m.Currency())
}

// Subtract returns the difference, flooring at zero: subtracting more
// than the available amount yields zero, never a negative value.
func (m Moeda) Subtract(other Moeda) (Moeda, error) {
	if err := m.sameCurrency(other); err != nil {
		return Moeda{}, err
	}
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return ZeroMoeda(m.Currency()), nil
	}
	return NewMoeda(diff, m.Currency())
}

// Multiply returns the amount multiplied by a non-negative factor.
func (m Moeda) Multiply(factor decimal.Decimal) (Moeda, error) {
	if factor.IsNegative() {
		return Moeda{}, shared.NewValidationError("fator de multiplicação não pode ser negativo")
	}
	return NewMoeda(m.amount.Mul(factor), m.Currency())
}

// Divide returns the amount divided by a positive divisor.
func (m Moeda) Divide(divisor decimal.Decimal) (Moeda, error) {
	if divisor.IsZero() {
		return Moeda{}, shared.NewValidationError("divisão por zero")
	}
	if divisor.IsNegative() {
		return Moeda{}, shared.NewValidationError("divisor não pode ser negativo")
	}
	return NewMoeda(m.amount.Div(divisor), m.Currency())
}

// ApplyDiscount returns the amount reduced by the given percentage.
func (m Moeda) ApplyDiscount(desconto Percentual) Moeda {
	discounted := m.amount.Sub(desconto.ApplyTo(m.amount))
	if discounted.IsNegative() {
		return ZeroMoeda(m.Currency())
	}
	return Moeda{amount: discounted.Round(moedaDecimalPlaces), currency: m.Currency()}
}

// ApplyMarkup returns the amount increased by the given percentage.
// Fails if the marked-up amount exceeds the ceiling.
func (m Moeda) ApplyMarkup(acrescimo Percentual) (Moeda, error) {
	return NewMoeda(m.amount.Add(acrescimo.ApplyTo(m.amount)), m.Currency())
}

// Equals returns true for same currency and same amount.
func (m Moeda) Equals(other Moeda) bool {
	return m.Currency() == other.Currency() && m.amount.Equal(other.amount)
}

// GreaterThan compares amounts; fails on mixed currencies.
func (m Moeda) GreaterThan(other Moeda) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// LessThan compares amounts; fails on mixed currencies.
func (m Moeda) LessThan(other Moeda) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

// String returns a fixed two-decimal representation with the currency.
func (m Moeda) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(moedaDecimalPlaces), m.Currency())
}

func (m Moeda) sameCurrency(other Moeda) error {
	if m.Currency() != other.Currency() {
		return shared.NewValidationError(fmt.Sprintf("não é possível operar moedas diferentes: %s e %s", m.Currency(), other.Currency()))
	}
	return nil
}
