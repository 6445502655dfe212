//go:build unit

package money_test

import (
	"testing"

	"find-my-space/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	m, err := money.FromRupees(99.999)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), m.Paise())

	_, err = money.FromPaise(-1)
	require.ErrorIs(t, err, money.ErrNegativeAmount)

	total, _ := money.FromPaise(15000)
	fee := total.Fraction(0.15)
	assert.Equal(t, int64(2250), fee.Paise())
	assert.Equal(t, int64(12750), total.Sub(fee).Paise())
	assert.True(t, fee.Sub(total).IsZero())
	assert.InDelta(t, 150.0, total.Rupees(), 1e-9)
}
