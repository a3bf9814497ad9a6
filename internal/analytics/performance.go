// Package analytics aggregates a player's round history into
// performance views: per-par and per-difficulty scoring, blow-up rate,
// and a score trend with a moving average. All functions are pure and
// recomputed on demand; there is no cached state.
package analytics

import (
	"github.com/google/uuid"
	"github.com/yourusername/fairway-ledger/internal/golf"
	"github.com/yourusername/fairway-ledger/internal/models"
)

// Difficulty tier boundaries over the 1-18 difficulty rank.
const (
	hardRankMax   = 6
	mediumRankMax = 12
)

// BlowUpMargin is how many strokes over par make a blow-up hole
// (triple bogey or worse).
const BlowUpMargin = 3

// ParPerformance reports mean strokes-over-par for each par value.
// A nil bucket means no holes of that par were observed - distinct
// from a computed mean of exactly zero.
type ParPerformance struct {
	Par3 *float64 `json:"par_3"`
	Par4 *float64 `json:"par_4"`
	Par5 *float64 `json:"par_5"`
}

// DifficultyPerformance reports mean strokes-over-par by difficulty
// tier: hard [1,6], medium [7,12], easy [13,18]. Holes without a
// difficulty rank are excluded, not defaulted.
type DifficultyPerformance struct {
	Hard   *float64 `json:"hard"`
	Medium *float64 `json:"medium"`
	Easy   *float64 `json:"easy"`
}

// BlowUpRate reports how often a player blows up. A round counts in
// the denominator only when at least one of its holes resolved against
// the course.
type BlowUpRate struct {
	TotalBlowUps    int     `json:"total_blow_ups"`
	RoundsConsidered int    `json:"rounds_considered"`
	AveragePerRound float64 `json:"average_per_round"`
}

type bucket struct {
	sum   float64
	count int
}

func (b *bucket) add(overPar int) {
	b.sum += float64(overPar)
	b.count++
}

func (b *bucket) mean() *float64 {
	if b.count == 0 {
		return nil
	}
	m := b.sum / float64(b.count)
	return &m
}

// PerformanceByPar computes the mean strokes-over-par for par 3, 4 and
// 5 holes across all of the player's rounds with a resolvable course.
func PerformanceByPar(playerID uuid.UUID, rounds []*models.Round, courses map[uuid.UUID]*models.Course) ParPerformance {
	buckets := map[int]*bucket{3: {}, 4: {}, 5: {}}

	forEachResolvedHole(playerID, rounds, courses, func(score models.Score, hole models.Hole) {
		if b, ok := buckets[hole.Par]; ok {
			b.add(score.Strokes - hole.Par)
		}
	})

	return ParPerformance{
		Par3: buckets[3].mean(),
		Par4: buckets[4].mean(),
		Par5: buckets[5].mean(),
	}
}

// PerformanceByDifficulty computes the mean strokes-over-par by
// difficulty tier. Only holes carrying a difficulty rank participate.
func PerformanceByDifficulty(playerID uuid.UUID, rounds []*models.Round, courses map[uuid.UUID]*models.Course) DifficultyPerformance {
	hard, medium, easy := &bucket{}, &bucket{}, &bucket{}

	forEachResolvedHole(playerID, rounds, courses, func(score models.Score, hole models.Hole) {
		if hole.DifficultyRank == nil {
			return
		}
		overPar := score.Strokes - hole.Par
		switch rank := *hole.DifficultyRank; {
		case rank <= hardRankMax:
			hard.add(overPar)
		case rank <= mediumRankMax:
			medium.add(overPar)
		default:
			easy.add(overPar)
		}
	})

	return DifficultyPerformance{
		Hard:   hard.mean(),
		Medium: medium.mean(),
		Easy:   easy.mean(),
	}
}

// ComputeBlowUpRate counts holes scored at triple bogey or worse and
// averages them over the rounds that had at least one resolvable hole.
// Zero considered rounds yields a rate of exactly 0.
func ComputeBlowUpRate(playerID uuid.UUID, rounds []*models.Round, courses map[uuid.UUID]*models.Course) BlowUpRate {
	rate := BlowUpRate{}

	for _, round := range rounds {
		pr, ok := round.PlayerRoundFor(playerID)
		if !ok {
			continue
		}
		course := courses[round.CourseID]
		if course == nil {
			continue
		}
		idx := golf.NewHoleIndex(course)

		resolved := false
		for _, score := range pr.Scores {
			hole, ok := idx.Lookup(score.HoleNumber)
			if !ok {
				continue
			}
			resolved = true
			if score.Strokes >= hole.Par+BlowUpMargin {
				rate.TotalBlowUps++
			}
		}
		if resolved {
			rate.RoundsConsidered++
		}
	}

	if rate.RoundsConsidered > 0 {
		rate.AveragePerRound = float64(rate.TotalBlowUps) / float64(rate.RoundsConsidered)
	}
	return rate
}

// forEachResolvedHole visits every score of the player that resolves
// against its round's course. Rounds without the player or without a
// resolvable course are skipped silently.
func forEachResolvedHole(playerID uuid.UUID, rounds []*models.Round, courses map[uuid.UUID]*models.Course, visit func(models.Score, models.Hole)) {
	for _, round := range rounds {
		pr, ok := round.PlayerRoundFor(playerID)
		if !ok {
			continue
		}
		course := courses[round.CourseID]
		if course == nil {
			continue
		}
		idx := golf.NewHoleIndex(course)
		for _, score := range pr.Scores {
			if hole, ok := idx.Lookup(score.HoleNumber); ok {
				visit(score, hole)
			}
		}
	}
}
