package golf

import (
	"testing"

	"github.com/google/uuid"
	"github.com/yourusername/fairway-ledger/internal/models"
)

func TestHoleIndexLookup(t *testing.T) {
	rank := 3
	course := &models.Course{
		ID:   uuid.New(),
		Name: "Lookup Test",
		Holes: []models.Hole{
			{Number: 2, Par: 5, Yardage: 510, DifficultyRank: &rank},
			{Number: 1, Par: 3, Yardage: 160},
		},
	}
	idx := NewHoleIndex(course)

	// Lookups are by hole number, not slice position.
	if got := idx.Par(2); got != 5 {
		t.Fatalf("expected par 5 for hole 2, got %d", got)
	}
	if got := idx.Yardage(1); got != 160 {
		t.Fatalf("expected yardage 160 for hole 1, got %d", got)
	}
	if r, ok := idx.DifficultyRank(2); !ok || r != 3 {
		t.Fatalf("expected rank 3 for hole 2, got %d (ok=%v)", r, ok)
	}
	if _, ok := idx.DifficultyRank(1); ok {
		t.Fatalf("hole 1 has no rank and must not report one")
	}
}

func TestHoleIndexDefaults(t *testing.T) {
	idx := NewHoleIndex(nil)

	if got := idx.Par(7); got != DefaultPar {
		t.Fatalf("expected default par %d, got %d", DefaultPar, got)
	}
	if got := idx.FrontNinePar(); got != FrontNineParDefault {
		t.Fatalf("expected front nine baseline %d, got %d", FrontNineParDefault, got)
	}
	if _, ok := idx.Lookup(1); ok {
		t.Fatalf("empty index must not resolve holes")
	}
}

func TestFrontNineParPartialCourse(t *testing.T) {
	course := &models.Course{
		ID:    uuid.New(),
		Name:  "Partial",
		Holes: []models.Hole{{Number: 1, Par: 3}, {Number: 2, Par: 5}},
	}
	idx := NewHoleIndex(course)

	// Described holes contribute their par; the rest default to 4.
	want := 3 + 5 + 7*DefaultPar
	if got := idx.FrontNinePar(); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}
