package valueobject

import (
	"fmt"

	"github.com/restoerp/backend/internal/domain/shared"
)

// Telefone is a Brazilian phone number: a two-digit area code (DDD)
// followed by an 8-digit landline or 9-digit mobile number. Immutable,
// equality on the digit string.
type Telefone struct {
	digits string
}

// NewTelefone creates a Telefone from a raw input, accepting
// "(11) 98765-4321" or digit-only forms.
func NewTelefone(input string) (Telefone, error) {
	digits := onlyDigits(input)
	if len(digits) != 10 && len(digits) != 11 {
		return Telefone{}, shared.NewValidationError("telefone deve conter 10 ou 11 dígitos com DDD")
	}
	ddd := int(digits[0]-'0')*10 + int(digits[1]-'0')
	if ddd < 11 {
		return Telefone{}, shared.NewValidationError("DDD inválido")
	}
	// Mobile numbers carry a leading 9 after the DDD.
	if len(digits) == 11 && digits[2] != '9' {
		return Telefone{}, shared.NewValidationError("telefone celular deve iniciar com 9 após o DDD")
	}
	return Telefone{digits: digits}, nil
}

// MustNewTelefone creates a Telefone and panics on error. Test helper.
func MustNewTelefone(input string) Telefone {
	t, err := NewTelefone(input)
	if err != nil {
		panic(err)
	}
	return t
}

// OnlyDigits returns the canonical digit string.
func (t Telefone) OnlyDigits() string {
	return t.digits
}

// DDD returns the two-digit area code.
func (t Telefone) DDD() string {
	if t.IsZero() {
		return ""
	}
	return t.digits[:2]
}

// IsCelular returns true for 9-digit mobile numbers.
func (t Telefone) IsCelular() bool {
	return len(t.digits) == 11
}

// Formatted returns (NN) NNNN-NNNN or (NN) NNNNN-NNNN.
func (t Telefone) Formatted() string {
	if t.IsZero() {
		return ""
	}
	local := t.digits[2:]
	split := len(local) - 4
	return fmt.Sprintf("(%s) %s-%s", t.digits[:2], local[:split], local[split:])
}

// IsZero returns true for the zero value (no number set).
func (t Telefone) IsZero() bool {
	return t.digits == ""
}

// Equals compares two phone numbers by digit string.
func (t Telefone) Equals(other Telefone) bool {
	return t.digits == other.digits
}

// String returns the formatted display form.
func (t Telefone) String() string {
	return t.Formatted()
}
