package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEvenlyThreeWays(t *testing.T) {
	shares, err := SplitEvenly(dec("100.00"), []string{"A", "B", "C"})
	require.NoError(t, err)
	require.Len(t, shares, 3)

	sum := decimal.Zero
	for name, amount := range shares {
		assert.True(t, dec("33.33").Equal(amount), "%s got %s", name, amount)
		sum = sum.Add(amount)
	}
	// The rounding remainder is not redistributed: parts sum to 99.99.
	assert.True(t, dec("99.99").Equal(sum))
	assert.False(t, sum.Equal(dec("100.00")))
}

func TestSplitEvenlyExactDivision(t *testing.T) {
	shares, err := SplitEvenly(dec("90.00"), []string{"A", "B", "C"})
	require.NoError(t, err)
	for _, amount := range shares {
		assert.True(t, dec("30.00").Equal(amount))
	}
}

func TestSplitEvenlyExcludesBlankNames(t *testing.T) {
	shares, err := SplitEvenly(dec("50.00"), []string{"A", "", "  ", "B"})
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.True(t, dec("25.00").Equal(shares["A"]))
	assert.True(t, dec("25.00").Equal(shares["B"]))
}

func TestSplitEvenlyNeedsTwoNames(t *testing.T) {
	_, err := SplitEvenly(dec("50.00"), nil)
	assert.ErrorIs(t, err, ErrTooFewParticipants)

	_, err = SplitEvenly(dec("50.00"), []string{"OnlyOne"})
	assert.ErrorIs(t, err, ErrTooFewParticipants)

	_, err = SplitEvenly(dec("50.00"), []string{"A", "   "})
	assert.ErrorIs(t, err, ErrTooFewParticipants)
}

func TestSplitEvenlyRejectsBadTotal(t *testing.T) {
	_, err := SplitEvenly(decimal.Zero, []string{"A", "B"})
	assert.ErrorIs(t, err, ErrInvalidTotal)

	_, err = SplitEvenly(dec("-10.00"), []string{"A", "B"})
	assert.ErrorIs(t, err, ErrInvalidTotal)
}
