package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPercentual(t *testing.T) {
	t.Run("accepts the bounds", func(t *testing.T) {
		zero, err := NewPercentualFromString("0")
		require.NoError(t, err)
		assert.True(t, zero.IsZero())

		full, err := NewPercentualFromString("100")
		require.NoError(t, err)
		assert.Equal(t, "100.00%", full.String())
	})

	t.Run("rounds to two decimal places", func(t *testing.T) {
		p, err := NewPercentualFromString("33.335")

		require.NoError(t, err)
		assert.Equal(t, "33.34%", p.String())
	})

	t.Run("rejects values outside [0,100]", func(t *testing.T) {
		_, err := NewPercentualFromString("-0.01")
		assert.Error(t, err)

		_, err = NewPercentualFromString("100.01")
		assert.Error(t, err)
	})
}

func TestPercentualOf(t *testing.T) {
	t.Run("computes the share", func(t *testing.T) {
		p, err := PercentualOf(decimal.NewFromInt(50), decimal.NewFromInt(200))

		require.NoError(t, err)
		assert.True(t, p.Equals(MustNewPercentual("25")))
	})

	t.Run("rejects part greater than whole", func(t *testing.T) {
		_, err := PercentualOf(decimal.NewFromInt(300), decimal.NewFromInt(200))
		assert.Error(t, err)
	})

	t.Run("rejects non-positive whole", func(t *testing.T) {
		_, err := PercentualOf(decimal.NewFromInt(1), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects negative part", func(t *testing.T) {
		_, err := PercentualOf(decimal.NewFromInt(-1), decimal.NewFromInt(10))
		assert.Error(t, err)
	})
}

func TestPercentualApplyTo(t *testing.T) {
	t.Run("applies to a decimal", func(t *testing.T) {
		got := MustNewPercentual("10").ApplyTo(decimal.NewFromInt(200))
		assert.Equal(t, "20.00", got.StringFixed(2))
	})

	t.Run("applies to a monetary amount", func(t *testing.T) {
		share := MustNewPercentual("50").ApplyToMoeda(MustNewMoeda("99.99", BRL))
		assert.True(t, share.Equals(MustNewMoeda("50.00", BRL)))
	})

	t.Run("applies to a quantity", func(t *testing.T) {
		share := MustNewPercentual("25").ApplyToQuantidade(MustNewQuantidade("2", UnidadeKG))
		assert.True(t, share.Equals(MustNewQuantidade("0.5", UnidadeKG)))
	})
}
