// Package reputation turns a rated trade and its history into a reputation award.
package reputation

import (
	"math"

	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
)

// Scoring constants
const (
	BaseScore = 10.0

	// MaxRatingValue divides the rating into a multiplier
	MaxRatingValue = 5.0

	// ConcentrationMinTrades is the total trade count at or below which no concentration penalty applies
	ConcentrationMinTrades = 4

	// ConcentrationStart is the partner share above which the penalty begins
	ConcentrationStart = 0.3

	// ConcentrationEnd is the partner share at which the award drops to zero
	ConcentrationEnd = 0.8

	// maxCount caps counts at the largest float64 that still holds every integer exactly
	maxCount = 1 << 53
)

// AwardInput names the scorer inputs so counts cannot be transposed
type AwardInput struct {
	Rating            float64
	TotalTradesUser   float64 // all trades of the user, including the scored one
	TradesWithPartner float64 // trades with this partner, including the scored one
}

// Factors is the breakdown behind an award
type Factors struct {
	SafeTotal           int64   `json:"safe_total"`
	SafePartner         int64   `json:"safe_partner"`
	RatingMultiplier    float64 `json:"rating_multiplier"`
	DiminishingFactor   float64 `json:"diminishing_factor"`
	ConcentrationRatio  float64 `json:"concentration_ratio"`
	ConcentrationFactor float64 `json:"concentration_factor"`
	RawScore            float64 `json:"raw_score"`
	Award               int     `json:"award"`
}

// AwardCalculator computes awards for the orchestration layer
type AwardCalculator interface {
	Award(in AwardInput) (int, error)
	Breakdown(in AwardInput) (Factors, error)
}

// Scorer is the default AwardCalculator. It holds no state.
type Scorer struct{}

// NewScorer creates a scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Award implements AwardCalculator
func (s *Scorer) Award(in AwardInput) (int, error) {
	return ComputeAward(in)
}

// Breakdown implements AwardCalculator
func (s *Scorer) Breakdown(in AwardInput) (Factors, error) {
	return Breakdown(in)
}

// ComputeAward returns the points granted for one rated trade
func ComputeAward(in AwardInput) (int, error) {
	factors, err := Breakdown(in)
	if err != nil {
		return 0, err
	}
	return factors.Award, nil
}

// Breakdown computes the award together with every intermediate factor.
// It fails with an InvalidTradeHistoryError when the normalized partner
// count exceeds the normalized total.
func Breakdown(in AwardInput) (Factors, error) {
	safeTotal := normalizeCount(in.TotalTradesUser)
	safePartner := normalizeCount(in.TradesWithPartner)

	if safePartner > safeTotal {
		return Factors{}, errs.NewInvalidTradeHistoryError(int64(safeTotal), int64(safePartner))
	}

	f := Factors{
		SafeTotal:           int64(safeTotal),
		SafePartner:         int64(safePartner),
		RatingMultiplier:    in.Rating / MaxRatingValue,
		DiminishingFactor:   1.0 / (1.0 + math.Log2(safePartner)),
		ConcentrationRatio:  safePartner / safeTotal,
		ConcentrationFactor: 1.0,
	}

	if safeTotal > ConcentrationMinTrades {
		f.ConcentrationFactor = concentrationFactor(f.ConcentrationRatio)
	}

	f.RawScore = BaseScore * f.RatingMultiplier * f.DiminishingFactor * f.ConcentrationFactor
	// Ratings outside 1..5 are not rejected here, but an award never subtracts points
	f.Award = int(math.Max(0, math.Ceil(f.RawScore)))
	return f, nil
}

// normalizeCount floors a count and treats anything below one as one
func normalizeCount(v float64) float64 {
	// NaN compares false everywhere, so it falls through to 1 as well
	if !(v >= 1) {
		return 1
	}
	return math.Min(math.Floor(v), maxCount)
}

func concentrationFactor(ratio float64) float64 {
	switch {
	case ratio <= ConcentrationStart:
		return 1.0
	case ratio >= ConcentrationEnd:
		return 0.0
	}
	factor := 1.0 - (ratio-ConcentrationStart)/(ConcentrationEnd-ConcentrationStart)
	return math.Max(0.0, math.Min(1.0, factor))
}
