package reputation

import (
	"math"
	"testing"

	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func award(t *testing.T, rating, total, partner float64) int {
	t.Helper()
	got, err := ComputeAward(AwardInput{Rating: rating, TotalTradesUser: total, TradesWithPartner: partner})
	require.NoError(t, err, "rating=%v total=%v partner=%v", rating, total, partner)
	return got
}

func TestComputeAward_Scenarios(t *testing.T) {
	testCases := []struct {
		name     string
		rating   float64
		total    float64
		partner  float64
		expected int
	}{
		{"First trade with first partner", 5, 1, 1, 10},
		{"Second trade with same partner", 5, 2, 2, 5},
		{"Four trades below penalty threshold", 5, 4, 4, 4},
		{"Half of ten trades with one partner", 5, 10, 5, 2},
		{"Concentration at eighty percent", 5, 5, 4, 0},
		{"Concentration above eighty percent", 5, 11, 9, 0},
		{"Large history still earns a point", 5, 2000, 1024, 1},
		{"New partner with small history", 5, 3, 1, 10},
		{"Lowest rating", 1, 1, 1, 2},
		{"Middle rating", 3, 1, 1, 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, award(t, tc.rating, tc.total, tc.partner))
		})
	}
}

func TestComputeAward_InvalidTradeHistory(t *testing.T) {
	for _, rating := range []float64{1, 3, 5} {
		got, err := ComputeAward(AwardInput{Rating: rating, TotalTradesUser: 3, TradesWithPartner: 4})

		assert.Equal(t, 0, got)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTradeHistory)
		assert.False(t, errs.IsRetryableError(err))

		var detailed *errs.InvalidTradeHistoryError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, int64(3), detailed.TotalTrades)
		assert.Equal(t, int64(4), detailed.TradesWithPartner)
	}

	// violation is judged after normalization
	_, err := ComputeAward(AwardInput{Rating: 5, TotalTradesUser: 2.9, TradesWithPartner: 3.1})
	assert.ErrorIs(t, err, errs.ErrInvalidTradeHistory)
}

func TestComputeAward_Normalization(t *testing.T) {
	assert.Equal(t, 10, award(t, 5, 0.9, 0.9))
	assert.Equal(t, 10, award(t, 5, -5, -3))
	assert.Equal(t, 10, award(t, 5, 0, 0))
	assert.Equal(t, 10, award(t, 5, math.NaN(), math.NaN()))
	assert.Equal(t, award(t, 5, 10, 5), award(t, 5, 10.9, 5.9))

	for _, rating := range []float64{1, 2, 3, 4, 5} {
		for total := 1.0; total <= 30; total++ {
			for partner := 1.0; partner <= total; partner++ {
				assert.Equal(t,
					award(t, rating, total, partner),
					award(t, rating, total+0.75, partner+0.25),
					"rating=%v total=%v partner=%v", rating, total, partner)
			}
		}
	}
}

func TestComputeAward_Bounds(t *testing.T) {
	for _, rating := range []float64{1, 2, 3, 4, 5} {
		for total := 1.0; total <= 60; total++ {
			for partner := 1.0; partner <= total; partner++ {
				got := award(t, rating, total, partner)
				assert.GreaterOrEqual(t, got, 0)
				assert.LessOrEqual(t, got, 10)
			}
		}
	}
}

func TestComputeAward_FirstPairing(t *testing.T) {
	for _, rating := range []float64{1, 2, 3, 4, 5} {
		assert.Equal(t, int(math.Ceil(10*rating/5)), award(t, rating, 1, 1))
	}
}

func TestComputeAward_MonotonicInPartner(t *testing.T) {
	for _, rating := range []float64{1, 3, 5} {
		for total := 1.0; total <= 50; total++ {
			previous := award(t, rating, total, 1)
			for partner := 2.0; partner <= total; partner++ {
				current := award(t, rating, total, partner)
				assert.LessOrEqual(t, current, previous,
					"rating=%v total=%v partner=%v", rating, total, partner)
				previous = current
			}
		}
	}
}

func TestComputeAward_ConcentrationThreshold(t *testing.T) {
	for total := 5.0; total <= 100; total++ {
		for partner := 1.0; partner <= total; partner++ {
			got := award(t, 5, total, partner)
			if partner/total >= ConcentrationEnd {
				assert.Equal(t, 0, got, "total=%v partner=%v", total, partner)
			} else {
				assert.Greater(t, got, 0, "total=%v partner=%v", total, partner)
			}
		}
	}
}

func TestComputeAward_NoPenaltyForNewUsers(t *testing.T) {
	for total := 1.0; total <= ConcentrationMinTrades; total++ {
		for partner := 1.0; partner <= total; partner++ {
			expected := int(math.Ceil(BaseScore / (1 + math.Log2(partner))))
			assert.Equal(t, expected, award(t, 5, total, partner))
		}
	}
}

func TestBreakdown(t *testing.T) {
	f, err := Breakdown(AwardInput{Rating: 5, TotalTradesUser: 10, TradesWithPartner: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(10), f.SafeTotal)
	assert.Equal(t, int64(5), f.SafePartner)
	assert.InDelta(t, 1.0, f.RatingMultiplier, 1e-9)
	assert.InDelta(t, 1/(1+math.Log2(5)), f.DiminishingFactor, 1e-9)
	assert.InDelta(t, 0.5, f.ConcentrationRatio, 1e-9)
	assert.InDelta(t, 0.6, f.ConcentrationFactor, 1e-9)
	assert.InDelta(t, 1.806, f.RawScore, 1e-3)
	assert.Equal(t, 2, f.Award)

	small, err := Breakdown(AwardInput{Rating: 4, TotalTradesUser: 2, TradesWithPartner: 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, small.ConcentrationFactor)
}

func TestScorer_ImplementsAwardCalculator(t *testing.T) {
	var calc AwardCalculator = NewScorer()

	got, err := calc.Award(AwardInput{Rating: 5, TotalTradesUser: 2, TradesWithPartner: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = calc.Breakdown(AwardInput{Rating: 5, TotalTradesUser: 1, TradesWithPartner: 2})
	assert.ErrorIs(t, err, errs.ErrInvalidTradeHistory)
}
