package valueobject

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCpf(t *testing.T) {
	t.Run("accepts punctuated form", func(t *testing.T) {
		cpf, err := NewCpf("529.982.247-25")

		require.NoError(t, err)
		assert.Equal(t, "52998224725", cpf.OnlyDigits())
		assert.Equal(t, "529.982.247-25", cpf.Formatted())
	})

	t.Run("accepts digit-only form", func(t *testing.T) {
		cpf, err := NewCpf("11144477735")

		require.NoError(t, err)
		assert.Equal(t, "111.444.777-35", cpf.Formatted())
	})

	t.Run("rejects wrong check digits", func(t *testing.T) {
		_, err := NewCpf("529.982.247-24")
		assert.Error(t, err)

		_, err = NewCpf("111.444.777-36")
		assert.Error(t, err)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := NewCpf("5299822472")
		assert.Error(t, err)

		_, err = NewCpf("529982247255")
		assert.Error(t, err)
	})

	t.Run("rejects all eleven repeated digit sequences", func(t *testing.T) {
		for d := 0; d <= 9; d++ {
			input := strings.Repeat(fmt.Sprintf("%d", d), 11)
			_, err := NewCpf(input)
			assert.Error(t, err, input)
		}
	})
}

func TestCpfEquality(t *testing.T) {
	a := MustNewCpf("529.982.247-25")
	b := MustNewCpf("52998224725")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(MustNewCpf("111.444.777-35")))

	var zero Cpf
	assert.True(t, zero.IsZero())
	assert.False(t, a.IsZero())
}
