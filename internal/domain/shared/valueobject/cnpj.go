package valueobject

import (
	"fmt"

	"github.com/restoerp/backend/internal/domain/shared"
)

const cnpjLength = 14

// Check-digit weights defined by the Receita Federal algorithm.
var (
	cnpjFirstDigitWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondDigitWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Cnpj is the Brazilian company registration number (Cadastro Nacional
// da Pessoa Jurídica). It is immutable and validated at construction:
// an invalid instance cannot exist. Equality is defined on the digit
// string, so differently punctuated inputs compare equal.
type Cnpj struct {
	digits string
}

// NewCnpj creates a Cnpj from a raw input, accepting punctuated
// ("11.222.333/0001-81") or digit-only forms. It fails unless the input
// has exactly 14 digits and both modulo-11 check digits match.
func NewCnpj(input string) (Cnpj, error) {
	digits := onlyDigits(input)
	if len(digits) != cnpjLength {
		return Cnpj{}, shared.NewValidationError("CNPJ deve conter 14 dígitos")
	}
	if allSameDigits(digits) {
		return Cnpj{}, shared.NewValidationError("CNPJ inválido")
	}
	if !cnpjChecksumValid(digits) {
		return Cnpj{}, shared.NewValidationError("CNPJ inválido: dígitos verificadores não conferem")
	}
	return Cnpj{digits: digits}, nil
}

// MustNewCnpj creates a Cnpj and panics on error. Test helper.
func MustNewCnpj(input string) Cnpj {
	c, err := NewCnpj(input)
	if err != nil {
		panic(err)
	}
	return c
}

// OnlyDigits returns the canonical 14-digit string.
func (c Cnpj) OnlyDigits() string {
	return c.digits
}

// Formatted returns the display form NN.NNN.NNN/NNNN-NN.
func (c Cnpj) Formatted() string {
	if c.IsZero() {
		return ""
	}
	d := c.digits
	return fmt.Sprintf("%s.%s.%s/%s-%s", d[0:2], d[2:5], d[5:8], d[8:12], d[12:14])
}

// IsZero returns true for the zero value (no CNPJ set).
func (c Cnpj) IsZero() bool {
	return c.digits == ""
}

// Equals compares two CNPJs by their digit strings.
func (c Cnpj) Equals(other Cnpj) bool {
	return c.digits == other.digits
}

// String returns the formatted display form.
func (c Cnpj) String() string {
	return c.Formatted()
}

func cnpjChecksumValid(digits string) bool {
	first := moduloElevenDigit(digits[:12], cnpjFirstDigitWeights)
	if first != int(digits[12]-'0') {
		return false
	}
	second := moduloElevenDigit(digits[:13], cnpjSecondDigitWeights)
	return second == int(digits[13]-'0')
}

// moduloElevenDigit computes a check digit over the given digit string
// with positional weights: remainder < 2 yields 0, otherwise
// 11 - remainder.
func moduloElevenDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func onlyDigits(input string) string {
	out := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		if input[i] >= '0' && input[i] <= '9' {
			out = append(out, input[i])
		}
	}
	return string(out)
}

func allSameDigits(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return len(digits) > 0
}
