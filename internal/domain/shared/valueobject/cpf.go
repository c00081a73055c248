package valueobject

import (
	"fmt"

	"github.com/restoerp/backend/internal/domain/shared"
)

const cpfLength = 11

// Cpf is the Brazilian individual taxpayer number (Cadastro de Pessoas
// Físicas). Immutable, validated at construction; equality on the
// digit string.
type Cpf struct {
	digits string
}

// NewCpf creates a Cpf from a raw input, accepting punctuated
// ("529.982.247-25") or digit-only forms. The 11 canonical
// repeated-digit sequences (00000000000 ... 99999999999) are rejected
// outright regardless of checksum; otherwise both modulo-11 check
// digits must match.
func NewCpf(input string) (Cpf, error) {
	digits := onlyDigits(input)
	if len(digits) != cpfLength {
		return Cpf{}, shared.NewValidationError("CPF deve conter 11 dígitos")
	}
	if allSameDigits(digits) {
		return Cpf{}, shared.NewValidationError("CPF inválido")
	}
	if !cpfChecksumValid(digits) {
		return Cpf{}, shared.NewValidationError("CPF inválido: dígitos verificadores não conferem")
	}
	return Cpf{digits: digits}, nil
}

// MustNewCpf creates a Cpf and panics on error. Test helper.
func MustNewCpf(input string) Cpf {
	c, err := NewCpf(input)
	if err != nil {
		panic(err)
	}
	return c
}

// OnlyDigits returns the canonical 11-digit string.
func (c Cpf) OnlyDigits() string {
	return c.digits
}

// Formatted returns the display form NNN.NNN.NNN-NN.
func (c Cpf) Formatted() string {
	if c.IsZero() {
		return ""
	}
	d := c.digits
	return fmt.Sprintf("%s.%s.%s-%s", d[0:3], d[3:6], d[6:9], d[9:11])
}

// IsZero returns true for the zero value (no CPF set).
func (c Cpf) IsZero() bool {
	return c.digits == ""
}

// Equals compares two CPFs by their digit strings.
func (c Cpf) Equals(other Cpf) bool {
	return c.digits == other.digits
}

// String returns the formatted display form.
func (c Cpf) String() string {
	return c.Formatted()
}

// cpfChecksumValid verifies both check digits. Digit 10 is computed
// over the first 9 digits with weights 10..2, digit 11 over the first
// 10 digits with weights 11..2; a raw remainder < 2 clamps to 0.
func cpfChecksumValid(digits string) bool {
	first := cpfDigit(digits, 9)
	if first != int(digits[9]-'0') {
		return false
	}
	second := cpfDigit(digits, 10)
	return second == int(digits[10]-'0')
}

func cpfDigit(digits string, length int) int {
	sum := 0
	for i := 0; i < length; i++ {
		sum += int(digits[i]-'0') * (length + 1 - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}
