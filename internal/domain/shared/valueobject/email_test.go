package valueobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		e, err := NewEmail("  Contato@Restaurante.COM.BR ")

		require.NoError(t, err)
		assert.Equal(t, "contato@restaurante.com.br", e.Value())
		assert.Equal(t, "restaurante.com.br", e.Domain())
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, input := range []string{
			"",
			"sem-arroba.com",
			"@dominio.com",
			"usuario@",
			"usuario@dominio",
			"usuario @dominio.com",
		} {
			_, err := NewEmail(input)
			assert.Error(t, err, input)
		}
	})

	t.Run("rejects overlong addresses", func(t *testing.T) {
		_, err := NewEmail(strings.Repeat("a", 250) + "@x.com")
		assert.Error(t, err)
	})
}

func TestEmailEquality(t *testing.T) {
	a := MustNewEmail("Contato@Empresa.com")
	b := MustNewEmail("contato@empresa.com")

	assert.True(t, a.Equals(b))

	var zero Email
	assert.True(t, zero.IsZero())
	assert.False(t, a.IsZero())
}
