package golf

import (
	"math"

	"github.com/yourusername/fairway-ledger/internal/models"
)

// UnratedNinePenalty is the fixed number of strokes added on top of
// the par baseline when projecting the unplayed nine for a player with
// no known handicap. The value is a policy choice kept for behavioral
// compatibility with historical data, not a derived standard.
const UnratedNinePenalty = 4

// EighteenHoleEquivalent converts a player's raw round total into an
// 18-hole-equivalent score so rounds of different lengths compare.
//
// 18-hole rounds pass through unchanged. For 9-hole rounds the
// unplayed nine is projected as the front-nine par baseline plus half
// the player's handicap, or plus a fixed penalty when the player has
// no handicap, and added to the actual total. Course may be nil; the
// baseline then falls back to 36.
func EighteenHoleEquivalent(pr *models.PlayerRound, round *models.Round, course *models.Course) int {
	total := pr.TotalScore()
	if round.ResolvedHoleCount() != models.NineHoles {
		return total
	}

	baseline := NewHoleIndex(course).FrontNinePar()

	var expected float64
	if pr.HandicapUsed != nil {
		expected = float64(baseline) + *pr.HandicapUsed/2
	} else {
		expected = float64(baseline + UnratedNinePenalty)
	}
	if expected < 0 {
		expected = 0
	}
	return total + int(math.Round(expected))
}
