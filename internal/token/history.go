package token

import "math/rand"

const (
	// SeedStepScale is the random-walk step scale used when seeding a history.
	SeedStepScale = 0.05
	// LiveStepScale is the random-walk step scale used for live ticks.
	LiveStepScale = 0.02
	// HistoryWindow is the maximum number of points kept in a live history.
	HistoryWindow = 100
)

// step draws a multiplicative random-walk delta. The range is slightly
// asymmetric: 52% of it sits on the positive side of zero.
func step(rng *rand.Rand, scale float64) float64 {
	return (rng.Float64() - 0.48) * scale
}

// GenerateHistory produces a synthetic price history of exactly length
// points, oldest first. The walk starts from a randomized value in
// [0.7, 1.0] x seedPrice and the final point is pinned to seedPrice so
// the history always agrees with the token's declared current price.
func GenerateHistory(rng *rand.Rand, seedPrice float64, length int) []float64 {
	if length <= 0 {
		return nil
	}

	history := make([]float64, length)
	price := seedPrice * (0.7 + rng.Float64()*0.3)
	for i := range history {
		price *= 1 + step(rng, SeedStepScale)
		history[i] = price
	}
	history[length-1] = seedPrice
	return history
}

// NextPoint computes one live tick from the last observed price.
func NextPoint(rng *rand.Rand, last float64) float64 {
	return last * (1 + step(rng, LiveStepScale))
}

// AppendPoint appends one live tick to history and windows it to the most
// recent HistoryWindow points. fallback seeds the walk when history is empty.
func AppendPoint(rng *rand.Rand, history []float64, fallback float64) []float64 {
	last := fallback
	if len(history) > 0 {
		last = history[len(history)-1]
	}
	history = append(history, NextPoint(rng, last))
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}
	return history
}
