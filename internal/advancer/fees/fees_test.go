package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAdvanceAmount(t *testing.T) {
	schedule := Schedule{Denom: "uusdc", FlatFee: 10_000, VariableBps: 20}

	t.Run("net equals gross minus fee", func(t *testing.T) {
		gross := uint64(150_000_000)
		amount, err := ComputeAdvanceAmount(gross, schedule)
		require.NoError(t, err)

		wantFee := uint64(10_000) + gross*20/10_000
		assert.Equal(t, gross-wantFee, amount.Value)
		assert.Equal(t, "uusdc", amount.Denom)
	})

	t.Run("deterministic for equal inputs", func(t *testing.T) {
		a, err := ComputeAdvanceAmount(42_000_000, schedule)
		require.NoError(t, err)
		b, err := ComputeAdvanceAmount(42_000_000, schedule)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("gross below fee floor errors", func(t *testing.T) {
		_, err := ComputeAdvanceAmount(9_999, schedule)
		assert.Error(t, err)
	})

	t.Run("gross exactly at fee errors", func(t *testing.T) {
		// fee(10020) = 10000 + 10020*20/10000 = 10020
		_, err := ComputeAdvanceAmount(10_020, schedule)
		assert.Error(t, err)
	})

	t.Run("zero variable component", func(t *testing.T) {
		flat := Schedule{Denom: "uusdc", FlatFee: 500}
		amount, err := ComputeAdvanceAmount(1_000, flat)
		require.NoError(t, err)
		assert.Equal(t, uint64(500), amount.Value)
	})
}

func TestScheduleFee(t *testing.T) {
	schedule := Schedule{Denom: "uusdc", FlatFee: 10_000, VariableBps: 20}

	for _, tc := range []struct {
		gross uint64
		want  uint64
	}{
		{0, 10_000},
		{10_000, 10_020},
		{150_000_000, 310_000},
		{1_000_000_000, 2_010_000},
	} {
		assert.Equal(t, tc.want, schedule.Fee(tc.gross), "gross=%d", tc.gross)
	}
}
