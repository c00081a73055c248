package valueobject

import (
	"fmt"

	"github.com/restoerp/backend/internal/domain/shared"
)

const cepLength = 8

// Cep is a Brazilian postal code. Immutable, validated at
// construction; equality on the digit string.
type Cep struct {
	digits string
}

// NewCep creates a Cep from a raw input, accepting "01310-100" or
// digit-only forms. All-equal-digit sequences are rejected.
func NewCep(input string) (Cep, error) {
	digits := onlyDigits(input)
	if len(digits) != cepLength {
		return Cep{}, shared.NewValidationError("CEP deve conter 8 dígitos")
	}
	if allSameDigits(digits) {
		return Cep{}, shared.NewValidationError("CEP inválido")
	}
	return Cep{digits: digits}, nil
}

// MustNewCep creates a Cep and panics on error. Test helper.
func MustNewCep(input string) Cep {
	c, err := NewCep(input)
	if err != nil {
		panic(err)
	}
	return c
}

// OnlyDigits returns the canonical 8-digit string.
func (c Cep) OnlyDigits() string {
	return c.digits
}

// Formatted returns the display form NNNNN-NNN.
func (c Cep) Formatted() string {
	if c.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s-%s", c.digits[0:5], c.digits[5:8])
}

// IsZero returns true for the zero value (no CEP set).
func (c Cep) IsZero() bool {
	return c.digits == ""
}

// Equals compares two CEPs by their digit strings.
func (c Cep) Equals(other Cep) bool {
	return c.digits == other.digits
}

// String returns the formatted display form.
func (c Cep) String() string {
	return c.Formatted()
}
