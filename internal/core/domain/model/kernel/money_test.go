package kernel_test

import (
	"testing"

	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		for _, amount := range []string{"0", "0.5", "65", "1234.25"} {
			m, err := kernel.NewMoney(decimal.RequireFromString(amount))

			require.NoError(t, err)
			require.NoError(t, m.Validate())
			assert.Equal(t, amount, m.String())
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m kernel.Money

		require.ErrorIs(t, m.Validate(), errs.ErrValueIsRequired)
	})
}

func TestMoney_Add(t *testing.T) {
	kebab, err := kernel.MoneyFromFloat(65)
	require.NoError(t, err)
	glass, err := kernel.MoneyFromFloat(30)
	require.NoError(t, err)

	total := kebab.Add(glass)

	assert.Equal(t, "95", total.String())
	assert.InDelta(t, 95.0, total.Float64(), 0.0001)
	assert.True(t, total.Equal(kernel.ZeroMoney().Add(total)))
	require.NoError(t, total.Validate())
}

func TestMoney_FloatsStayExact(t *testing.T) {
	a, _ := kernel.MoneyFromFloat(0.1)
	b, _ := kernel.MoneyFromFloat(0.2)

	assert.Equal(t, "0.3", a.Add(b).String())
}

func TestZeroMoney(t *testing.T) {
	z := kernel.ZeroMoney()

	assert.True(t, z.IsZero())
	require.NoError(t, z.Validate())
	assert.Equal(t, "0", z.String())
}
