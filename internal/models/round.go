package models

import (
	"time"

	"github.com/google/uuid"
)

// Hole counts a round can be played over.
const (
	NineHoles     = 9
	EighteenHoles = 18
)

// Score records one player's result on a single hole.
type Score struct {
	HoleNumber        int   `db:"hole_number" json:"hole_number" validate:"required,min=1,max=18"`
	Strokes           int   `db:"strokes" json:"strokes" validate:"required,min=1"`
	Putts             *int  `db:"putts" json:"putts,omitempty"`
	FairwayHit        *bool `db:"fairway_hit" json:"fairway_hit,omitempty"`
	GreenInRegulation *bool `db:"green_in_regulation" json:"green_in_regulation,omitempty"`
}

// PlayerRound holds one player's scores within a round.
// The round total is always derived from the hole scores via
// TotalScore; it is never stored alongside them, so it cannot drift.
type PlayerRound struct {
	PlayerID     uuid.UUID `db:"player_id" json:"player_id" validate:"required,uuid4"`
	Scores       []Score   `db:"scores" json:"scores"`
	HandicapUsed *float64  `db:"handicap_used" json:"handicap_used,omitempty"`
	NetScore     *float64  `db:"net_score" json:"net_score,omitempty"`
}

// TotalScore returns the sum of strokes across all scored holes.
func (pr *PlayerRound) TotalScore() int {
	total := 0
	for _, s := range pr.Scores {
		total += s.Strokes
	}
	return total
}

// Round represents one round of golf. Rounds are immutable history
// once created; edits replace the whole record.
type Round struct {
	ID        uuid.UUID     `db:"id" json:"id" validate:"required,uuid4"`
	CourseID  uuid.UUID     `db:"course_id" json:"course_id" validate:"required,uuid4"`
	Date      time.Time     `db:"date" json:"date" validate:"required"`
	Players   []PlayerRound `db:"players" json:"players"`
	HoleCount *int          `db:"hole_count" json:"hole_count,omitempty" validate:"omitempty,oneof=9 18"`
}

// ResolvedHoleCount returns the declared hole count, or infers it from
// the first player's scores: a maximum hole number of 9 or lower means
// a nine-hole round, anything else is treated as eighteen.
func (r *Round) ResolvedHoleCount() int {
	if r.HoleCount != nil {
		return *r.HoleCount
	}
	if len(r.Players) == 0 {
		return EighteenHoles
	}
	maxHole := 0
	for _, s := range r.Players[0].Scores {
		if s.HoleNumber > maxHole {
			maxHole = s.HoleNumber
		}
	}
	if maxHole > 0 && maxHole <= NineHoles {
		return NineHoles
	}
	return EighteenHoles
}

// PlayerRoundFor returns the PlayerRound for the given player, if the
// player took part in this round.
func (r *Round) PlayerRoundFor(playerID uuid.UUID) (*PlayerRound, bool) {
	for i := range r.Players {
		if r.Players[i].PlayerID == playerID {
			return &r.Players[i], true
		}
	}
	return nil, false
}
