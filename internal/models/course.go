package models

import (
	"github.com/google/uuid"
)

// DefaultSlope is the neutral USGA slope rating used when a course has
// no published slope.
const DefaultSlope = 113

// Hole represents a single hole on a course.
type Hole struct {
	Number         int  `db:"number" json:"number" validate:"required,min=1,max=18"`
	Par            int  `db:"par" json:"par" validate:"required,min=3,max=5"`
	Yardage        int  `db:"yardage" json:"yardage" validate:"gte=0"`
	DifficultyRank *int `db:"difficulty_rank" json:"difficulty_rank,omitempty"` // 1 = hardest; advisory, may be absent
}

// Course represents a golf course where rounds are played.
// Rating and Slope are optional: unrated courses fall back to the sum
// of pars and the neutral slope via RatingOrDefault/SlopeOrDefault.
type Course struct {
	ID     uuid.UUID `db:"id" json:"id" validate:"required,uuid4"`
	Name   string    `db:"name" json:"name" validate:"required"`
	Holes  []Hole    `db:"holes" json:"holes"`
	Rating *float64  `db:"rating" json:"rating,omitempty"`
	Slope  *int      `db:"slope" json:"slope,omitempty"`
}

// TotalPar returns the sum of pars across all holes.
func (c *Course) TotalPar() int {
	total := 0
	for _, h := range c.Holes {
		total += h.Par
	}
	return total
}

// RatingOrDefault returns the course rating, defaulting to the sum of
// pars for unrated courses.
func (c *Course) RatingOrDefault() float64 {
	if c.Rating != nil {
		return *c.Rating
	}
	return float64(c.TotalPar())
}

// SlopeOrDefault returns the slope rating, defaulting to the neutral
// USGA slope of 113.
func (c *Course) SlopeOrDefault() int {
	if c.Slope != nil && *c.Slope > 0 {
		return *c.Slope
	}
	return DefaultSlope
}

// HoleByNumber looks up a hole by its number. Lookups are by number,
// not slice index, so sparse or unordered hole lists still resolve.
func (c *Course) HoleByNumber(number int) (Hole, bool) {
	for _, h := range c.Holes {
		if h.Number == number {
			return h, true
		}
	}
	return Hole{}, false
}
