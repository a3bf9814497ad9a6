package analytics

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/yourusername/fairway-ledger/internal/golf"
	"github.com/yourusername/fairway-ledger/internal/models"
)

// Trend defaults. The window is clamped so it never exceeds the number
// of rounds kept and, when two or more rounds exist, never drops below 2.
const (
	DefaultTrendMaxRounds = 10
	DefaultTrendWindow    = 5
	minTrendWindow        = 2
)

// trendLabelFormat is display-only; the dates carry no semantic
// meaning beyond ordering.
const trendLabelFormat = "Jan 2"

// TrendOptions controls how much history feeds the score trend.
type TrendOptions struct {
	MaxRounds int
	Window    int
}

// ScoreTrend is a series of 18-hole-equivalent scores over the
// player's most recent rounds with a trailing moving average. The
// three slices are parallel.
type ScoreTrend struct {
	Labels        []string  `json:"labels"`
	Scores        []int     `json:"scores"`
	MovingAverage []float64 `json:"moving_average"`
	RoundsUsed    int       `json:"rounds_used"`
}

// ComputeScoreTrend builds the player's score trend: rounds sorted by
// date ascending, at most MaxRounds most recent kept, each converted
// to its 18-hole equivalent, with a trailing moving average where each
// point is the mean of itself and up to window-1 preceding points,
// rounded to one decimal.
func ComputeScoreTrend(playerID uuid.UUID, rounds []*models.Round, courses map[uuid.UUID]*models.Course, opts TrendOptions) ScoreTrend {
	maxRounds := opts.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultTrendMaxRounds
	}

	played := make([]*models.Round, 0, len(rounds))
	for _, round := range rounds {
		if _, ok := round.PlayerRoundFor(playerID); ok {
			played = append(played, round)
		}
	}
	sort.Slice(played, func(i, j int) bool {
		return played[i].Date.Before(played[j].Date)
	})
	if len(played) > maxRounds {
		played = played[len(played)-maxRounds:]
	}

	trend := ScoreTrend{
		Labels:        make([]string, 0, len(played)),
		Scores:        make([]int, 0, len(played)),
		MovingAverage: make([]float64, 0, len(played)),
		RoundsUsed:    len(played),
	}
	if len(played) == 0 {
		return trend
	}

	window := clampWindow(opts.Window, len(played))

	for _, round := range played {
		pr, _ := round.PlayerRoundFor(playerID)
		score := golf.EighteenHoleEquivalent(pr, round, courses[round.CourseID])
		trend.Labels = append(trend.Labels, round.Date.Format(trendLabelFormat))
		trend.Scores = append(trend.Scores, score)
	}

	for i := range trend.Scores {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		sum := 0
		for _, s := range trend.Scores[start : i+1] {
			sum += s
		}
		mean := float64(sum) / float64(i+1-start)
		trend.MovingAverage = append(trend.MovingAverage, math.Round(mean*10)/10)
	}

	return trend
}

func clampWindow(window, roundCount int) int {
	if window <= 0 {
		window = DefaultTrendWindow
	}
	if window > roundCount {
		window = roundCount
	}
	if window < minTrendWindow && roundCount >= minTrendWindow {
		window = minTrendWindow
	}
	if window < 1 {
		window = 1
	}
	return window
}
