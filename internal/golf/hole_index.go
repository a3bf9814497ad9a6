// Package golf provides hole lookup and score normalization over raw
// round data.
package golf

import (
	"github.com/yourusername/fairway-ledger/internal/models"
)

// DefaultPar is assumed for holes the course does not describe.
const DefaultPar = 4

// FrontNineParDefault is the baseline front-nine par used when no
// course is available at all.
const FrontNineParDefault = 36

// HoleIndex provides by-number lookup of a course's holes with
// defaulting for missing data. A nil course yields pure defaults.
type HoleIndex struct {
	holes map[int]models.Hole
}

// NewHoleIndex builds an index over the course's holes. Course may be nil.
func NewHoleIndex(course *models.Course) *HoleIndex {
	idx := &HoleIndex{holes: make(map[int]models.Hole)}
	if course == nil {
		return idx
	}
	for _, h := range course.Holes {
		idx.holes[h.Number] = h
	}
	return idx
}

// Lookup returns the hole record for the given number.
func (idx *HoleIndex) Lookup(number int) (models.Hole, bool) {
	h, ok := idx.holes[number]
	return h, ok
}

// Par returns the par for the given hole, defaulting to 4 when the
// hole is unknown.
func (idx *HoleIndex) Par(number int) int {
	if h, ok := idx.holes[number]; ok {
		return h.Par
	}
	return DefaultPar
}

// Yardage returns the yardage for the given hole, or 0 when unknown.
func (idx *HoleIndex) Yardage(number int) int {
	if h, ok := idx.holes[number]; ok {
		return h.Yardage
	}
	return 0
}

// DifficultyRank returns the difficulty rank (1 = hardest) for the
// given hole. Holes without a rank report false; they are advisory
// data and never defaulted.
func (idx *HoleIndex) DifficultyRank(number int) (int, bool) {
	h, ok := idx.holes[number]
	if !ok || h.DifficultyRank == nil {
		return 0, false
	}
	return *h.DifficultyRank, true
}

// FrontNinePar sums par across holes 1-9, substituting the default par
// for holes the course does not describe. With no course data this is
// the 36-stroke baseline.
func (idx *HoleIndex) FrontNinePar() int {
	total := 0
	for number := 1; number <= 9; number++ {
		total += idx.Par(number)
	}
	return total
}
