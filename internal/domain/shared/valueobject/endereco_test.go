package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCep(t *testing.T) {
	t.Run("accepts punctuated and digit-only forms", func(t *testing.T) {
		a, err := NewCep("01310-100")
		require.NoError(t, err)

		b, err := NewCep("01310100")
		require.NoError(t, err)

		assert.True(t, a.Equals(b))
		assert.Equal(t, "01310100", a.OnlyDigits())
		assert.Equal(t, "01310-100", a.Formatted())
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := NewCep("0131010")
		assert.Error(t, err)
	})

	t.Run("rejects repeated digit sequences", func(t *testing.T) {
		_, err := NewCep("11111111")
		assert.Error(t, err)
	})
}

func TestNewEndereco(t *testing.T) {
	cep := MustNewCep("01310-100")

	t.Run("creates a full address", func(t *testing.T) {
		e, err := NewEndereco("Av. Paulista", "1000", "Sala 42", cep, "Bela Vista", "São Paulo", "sp")

		require.NoError(t, err)
		assert.Equal(t, "SP", e.UF())
		assert.Equal(t, "Av. Paulista, 1000 - Sala 42 - Bela Vista, São Paulo/SP - CEP 01310-100", e.FullAddress())
	})

	t.Run("complemento is optional", func(t *testing.T) {
		e, err := NewEndereco("Rua das Flores", "12", "", cep, "Centro", "Curitiba", "PR")

		require.NoError(t, err)
		assert.Equal(t, "Rua das Flores, 12 - Centro, Curitiba/PR - CEP 01310-100", e.FullAddress())
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		_, err := NewEndereco("", "1000", "", cep, "Bela Vista", "São Paulo", "SP")
		assert.Error(t, err)

		_, err = NewEndereco("Av. Paulista", "", "", cep, "Bela Vista", "São Paulo", "SP")
		assert.Error(t, err)

		_, err = NewEndereco("Av. Paulista", "1000", "", Cep{}, "Bela Vista", "São Paulo", "SP")
		assert.Error(t, err)

		_, err = NewEndereco("Av. Paulista", "1000", "", cep, "", "São Paulo", "SP")
		assert.Error(t, err)

		_, err = NewEndereco("Av. Paulista", "1000", "", cep, "Bela Vista", "", "SP")
		assert.Error(t, err)
	})

	t.Run("rejects unknown UF", func(t *testing.T) {
		_, err := NewEndereco("Av. Paulista", "1000", "", cep, "Bela Vista", "São Paulo", "XX")
		assert.Error(t, err)
	})
}

func TestEnderecoEquality(t *testing.T) {
	cep := MustNewCep("01310-100")
	a := MustNewEndereco("Av. Paulista", "1000", "", cep, "Bela Vista", "São Paulo", "SP")
	b := MustNewEndereco("Av. Paulista", "1000", "", cep, "Bela Vista", "São Paulo", "SP")
	c := MustNewEndereco("Av. Paulista", "1001", "", cep, "Bela Vista", "São Paulo", "SP")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))

	var zero Endereco
	assert.True(t, zero.IsZero())
	assert.False(t, a.IsZero())
	assert.Empty(t, zero.FullAddress())
}
