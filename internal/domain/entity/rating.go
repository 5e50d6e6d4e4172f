package entity

import (
	"fmt"
	"math"

	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
)

// Rating bounds accepted from trade participants
const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a participant's 1..5 score for a completed trade
type Rating int

// IsValid reports whether the rating is within bounds
func (r Rating) IsValid() bool {
	return r >= MinRating && r <= MaxRating
}

// Float returns the rating as the scorer input
func (r Rating) Float() float64 {
	return float64(r)
}

// ParseRating accepts whole numbers between MinRating and MaxRating
func ParseRating(value float64) (Rating, error) {
	if math.IsNaN(value) || math.Trunc(value) != value {
		return 0, fmt.Errorf("%w: got %v", errs.ErrInvalidRating, value)
	}
	rating := Rating(value)
	if !rating.IsValid() {
		return 0, fmt.Errorf("%w: got %v", errs.ErrInvalidRating, value)
	}
	return rating, nil
}
