package handicap

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/fairway-ledger/internal/models"
)

func flatCourse(rating *float64, slope *int) *models.Course {
	course := &models.Course{ID: uuid.New(), Name: "Flat 18", Rating: rating, Slope: slope}
	for n := 1; n <= 18; n++ {
		course.Holes = append(course.Holes, models.Hole{Number: n, Par: 4, Yardage: 380})
	}
	return course
}

func eighteenHoleRound(playerID uuid.UUID, courseID uuid.UUID, date time.Time, strokesPerHole int) *models.Round {
	pr := models.PlayerRound{PlayerID: playerID}
	for n := 1; n <= 18; n++ {
		pr.Scores = append(pr.Scores, models.Score{HoleNumber: n, Strokes: strokesPerHole})
	}
	return &models.Round{ID: uuid.New(), CourseID: courseID, Date: date, Players: []models.PlayerRound{pr}}
}

func TestDifferentialWithExplicitRatings(t *testing.T) {
	rating := 70.0
	slope := 130
	course := flatCourse(&rating, &slope)

	// (90 - 70) x 113 / 130
	got := Differential(90, course)
	assert.InDelta(t, 17.3846, got, 0.001)
}

func TestDifferentialDefaultPath(t *testing.T) {
	course := flatCourse(nil, nil)

	// Rating defaults to the 72 sum of pars, slope to 113, so the
	// differential collapses to strokes over par.
	got := Differential(80, course)
	assert.InDelta(t, 8.0, got, 0.0001)
}

func TestIndexFromDifferentialsSelection(t *testing.T) {
	tests := []struct {
		name  string
		diffs []float64
		want  *float64
	}{
		{name: "empty", diffs: nil, want: nil},
		{name: "two yields zero selected", diffs: []float64{10, 12}, want: nil},
		{name: "three selects the single best", diffs: []float64{10.0, 12.0, 8.0}, want: ptr(8.0)},
		{name: "five selects two", diffs: []float64{10, 6, 8, 12, 14}, want: ptr(7.0)},
		{name: "rounds to one decimal", diffs: []float64{5.55, 6.66, 7.77}, want: ptr(5.6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IndexFromDifferentials(tt.diffs)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 0.0001)
		})
	}
}

func TestIndexFromDifferentialsSelectionCount(t *testing.T) {
	// N = min(8, floor(0.4 x count)), and >= 1 whenever count >= 3.
	for count := 0; count <= 30; count++ {
		diffs := make([]float64, count)
		got := IndexFromDifferentials(diffs)
		expectSelected := count * 4 / 10
		if expectSelected > MaxSelectedDifferentials {
			expectSelected = MaxSelectedDifferentials
		}
		if expectSelected == 0 {
			assert.Nil(t, got, "count %d", count)
		} else {
			assert.NotNil(t, got, "count %d", count)
		}
		if count >= 3 {
			assert.NotNil(t, got, "count %d must select at least one", count)
		}
	}
}

func TestComputeIndexRequiresFiveResolvableRounds(t *testing.T) {
	playerID := uuid.New()
	course := flatCourse(nil, nil)
	courses := map[uuid.UUID]*models.Course{course.ID: course}

	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	rounds := make([]*models.Round, 0, 5)
	for i := 0; i < 4; i++ {
		rounds = append(rounds, eighteenHoleRound(playerID, course.ID, date.AddDate(0, 0, i), 5))
	}
	assert.Nil(t, ComputeIndex(playerID, rounds, courses), "4 rounds must not produce an index")

	rounds = append(rounds, eighteenHoleRound(playerID, course.ID, date.AddDate(0, 0, 5), 5))
	index := ComputeIndex(playerID, rounds, courses)
	require.NotNil(t, index, "5 resolvable rounds must produce an index")

	// All rounds score 90 on a par-72 default-rated course: every
	// differential is 18.0, so the index is 18.0.
	assert.InDelta(t, 18.0, *index, 0.0001)
}

func TestComputeIndexSkipsUnresolvableCourses(t *testing.T) {
	playerID := uuid.New()
	course := flatCourse(nil, nil)
	courses := map[uuid.UUID]*models.Course{course.ID: course}
	date := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	rounds := make([]*models.Round, 0, 8)
	for i := 0; i < 4; i++ {
		rounds = append(rounds, eighteenHoleRound(playerID, course.ID, date.AddDate(0, 0, i), 5))
	}
	// Rounds on unknown courses produce no differential and do not
	// count toward the minimum.
	for i := 0; i < 4; i++ {
		rounds = append(rounds, eighteenHoleRound(playerID, uuid.New(), date.AddDate(0, 0, 10+i), 5))
	}

	assert.Nil(t, ComputeIndex(playerID, rounds, courses))
}

func TestComputeIndexIgnoresOtherPlayers(t *testing.T) {
	playerID := uuid.New()
	course := flatCourse(nil, nil)
	courses := map[uuid.UUID]*models.Course{course.ID: course}
	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	rounds := make([]*models.Round, 0, 6)
	for i := 0; i < 6; i++ {
		rounds = append(rounds, eighteenHoleRound(uuid.New(), course.ID, date.AddDate(0, 0, i), 5))
	}

	assert.Nil(t, ComputeIndex(playerID, rounds, courses))
	assert.Empty(t, PlayerDifferentials(playerID, rounds, courses))
}

func ptr(v float64) *float64 { return &v }
