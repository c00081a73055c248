package valueobject

import (
	"regexp"
	"strings"

	"github.com/restoerp/backend/internal/domain/shared"
)

// maxEmailLength follows RFC 5321's practical address limit.
const maxEmailLength = 254

var emailPattern = regexp.MustCompile(`^[a-z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?)+$`)

// Email is a normalized e-mail address: trimmed, lowercased and
// pattern-checked at construction. Equality on the normalized value.
type Email struct {
	value string
}

// NewEmail creates an Email from a raw input.
func NewEmail(input string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Email{}, shared.NewValidationError("e-mail não pode ser vazio")
	}
	if len(normalized) > maxEmailLength {
		return Email{}, shared.NewValidationError("e-mail não pode exceder 254 caracteres")
	}
	if !emailPattern.MatchString(normalized) {
		return Email{}, shared.NewValidationError("e-mail em formato inválido")
	}
	return Email{value: normalized}, nil
}

// MustNewEmail creates an Email and panics on error. Test helper.
func MustNewEmail(input string) Email {
	e, err := NewEmail(input)
	if err != nil {
		panic(err)
	}
	return e
}

// Value returns the normalized address.
func (e Email) Value() string {
	return e.value
}

// Domain returns the part after the "@".
func (e Email) Domain() string {
	at := strings.LastIndex(e.value, "@")
	if at < 0 {
		return ""
	}
	return e.value[at+1:]
}

// IsZero returns true for the zero value (no address set).
func (e Email) IsZero() bool {
	return e.value == ""
}

// Equals compares two e-mails by normalized value.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// String returns the normalized address.
func (e Email) String() string {
	return e.value
}
