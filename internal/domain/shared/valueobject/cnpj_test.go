package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCnpj(t *testing.T) {
	t.Run("accepts punctuated form", func(t *testing.T) {
		cnpj, err := NewCnpj("11.222.333/0001-81")

		require.NoError(t, err)
		assert.Equal(t, "11222333000181", cnpj.OnlyDigits())
		assert.Equal(t, "11.222.333/0001-81", cnpj.Formatted())
	})

	t.Run("accepts digit-only form", func(t *testing.T) {
		cnpj, err := NewCnpj("11222333000181")

		require.NoError(t, err)
		assert.Equal(t, "11222333000181", cnpj.OnlyDigits())
	})

	t.Run("rejects wrong check digits", func(t *testing.T) {
		_, err := NewCnpj("11.222.333/0001-80")
		assert.Error(t, err)

		_, err = NewCnpj("11.222.333/0001-71")
		assert.Error(t, err)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := NewCnpj("1122233300018")
		assert.Error(t, err)

		_, err = NewCnpj("")
		assert.Error(t, err)
	})

	t.Run("rejects repeated digit sequences", func(t *testing.T) {
		for _, input := range []string{"00000000000000", "11111111111111", "99999999999999"} {
			_, err := NewCnpj(input)
			assert.Error(t, err, input)
		}
	})

	t.Run("rejects non-digit garbage", func(t *testing.T) {
		_, err := NewCnpj("abc.def.ghi/jklm-no")
		assert.Error(t, err)
	})
}

func TestCnpjEquality(t *testing.T) {
	t.Run("punctuation does not matter", func(t *testing.T) {
		a := MustNewCnpj("11.222.333/0001-81")
		b := MustNewCnpj("11222333000181")

		assert.True(t, a.Equals(b))
	})

	t.Run("zero value", func(t *testing.T) {
		var zero Cnpj

		assert.True(t, zero.IsZero())
		assert.Empty(t, zero.Formatted())
		assert.False(t, zero.Equals(MustNewCnpj("11222333000181")))
	})
}
