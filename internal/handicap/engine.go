// Package handicap computes per-round differentials and the rolling
// handicap index from a player's round history.
package handicap

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/yourusername/fairway-ledger/internal/golf"
	"github.com/yourusername/fairway-ledger/internal/models"
)

const (
	// MinQualifyingRounds is the number of rounds that must have
	// produced a differential before any index is computed.
	MinQualifyingRounds = 5

	// MaxSelectedDifferentials caps how many of a player's best
	// differentials feed the index.
	MaxSelectedDifferentials = 8

	// SelectionRatio is the fraction of available differentials
	// considered "best" for averaging.
	SelectionRatio = 0.4
)

// Differential computes the handicap differential for one adjusted
// 18-hole-equivalent score against a course:
// (adjusted - rating) x 113 / slope. Course defaults (rating = sum of
// par, slope = 113) apply for unrated courses.
func Differential(adjustedScore int, course *models.Course) float64 {
	rating := course.RatingOrDefault()
	slope := course.SlopeOrDefault()
	return (float64(adjustedScore) - rating) * float64(models.DefaultSlope) / float64(slope)
}

// IndexFromDifferentials computes an index from a raw set of
// differentials: the best min(8, floor(0.4 x n)) are averaged and the
// result is rounded to one decimal. Returns nil when the selection is
// empty. The minimum-rounds rule is not applied here; callers that
// work from round history use ComputeIndex.
func IndexFromDifferentials(differentials []float64) *float64 {
	n := len(differentials)
	selected := int(math.Floor(SelectionRatio * float64(n)))
	if selected > MaxSelectedDifferentials {
		selected = MaxSelectedDifferentials
	}
	if selected == 0 {
		return nil
	}

	sorted := append([]float64{}, differentials...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, d := range sorted[:selected] {
		sum += d
	}
	index := math.Round(sum/float64(selected)*10) / 10
	return &index
}

// ComputeIndex computes the rolling handicap index for a player from
// their round history. Rounds without the player or without a
// resolvable course are skipped entirely; the >=5 round minimum is
// checked against rounds that actually produced a differential.
// Returns nil when there is not enough data - an expected "no answer"
// result, not an error.
func ComputeIndex(playerID uuid.UUID, rounds []*models.Round, courses map[uuid.UUID]*models.Course) *float64 {
	differentials := PlayerDifferentials(playerID, rounds, courses)
	if len(differentials) < MinQualifyingRounds {
		return nil
	}
	return IndexFromDifferentials(differentials)
}

// PlayerDifferentials computes one differential per round the player
// took part in whose course resolves. Unresolvable rounds produce no
// entry rather than a garbage differential.
func PlayerDifferentials(playerID uuid.UUID, rounds []*models.Round, courses map[uuid.UUID]*models.Course) []float64 {
	differentials := make([]float64, 0, len(rounds))
	for _, round := range rounds {
		pr, ok := round.PlayerRoundFor(playerID)
		if !ok {
			continue
		}
		course, ok := courses[round.CourseID]
		if !ok || course == nil {
			continue
		}
		adjusted := golf.EighteenHoleEquivalent(pr, round, course)
		differentials = append(differentials, Differential(adjusted, course))
	}
	return differentials
}
