package models

import (
	"github.com/google/uuid"
)

// Segment represents a scored portion of a Nassau wager.
type Segment string

const (
	SegmentFront   Segment = "front"
	SegmentBack    Segment = "back"
	SegmentOverall Segment = "overall"
)

// HoleSelection represents which holes a game session was played over.
type HoleSelection string

const (
	HoleSelectionEighteen HoleSelection = "18"
	HoleSelectionFront9   HoleSelection = "front9"
	HoleSelectionBack9    HoleSelection = "back9"
)

// Segments returns the wager segments relevant to this hole selection.
// A full eighteen settles front, back and overall; a nine-hole session
// settles only the nine that was played.
func (h HoleSelection) Segments() []Segment {
	switch h {
	case HoleSelectionFront9:
		return []Segment{SegmentFront}
	case HoleSelectionBack9:
		return []Segment{SegmentBack}
	default:
		return []Segment{SegmentFront, SegmentBack, SegmentOverall}
	}
}

// MatchOutcome represents the decided result of one pairing in one segment.
type MatchOutcome string

const (
	OutcomeSideAWins MatchOutcome = "side_a_wins"
	OutcomeSideBWins MatchOutcome = "side_b_wins"
	OutcomeTie       MatchOutcome = "tie"
)

// MatchContext distinguishes the base singles match from side bets.
// Only singles results enter the settlement math; presses are settled
// independently elsewhere.
type MatchContext string

const (
	ContextSingles MatchContext = "singles"
	ContextPress   MatchContext = "press"
	ContextTeam    MatchContext = "team"
)

// Participant identifies one player in a game session.
type Participant struct {
	PlayerID    uuid.UUID `db:"player_id" json:"player_id" validate:"required,uuid4"`
	DisplayName string    `db:"display_name" json:"display_name" validate:"required"`
}

// WagerAmounts holds the per-segment stakes for a session in integer
// cents. Front and back default to the unit amount; overall defaults
// to double the unit. Each can be overridden individually.
type WagerAmounts struct {
	UnitCents    int64  `db:"unit_cents" json:"unit_cents" validate:"gte=0"`
	FrontCents   *int64 `db:"front_cents" json:"front_cents,omitempty"`
	BackCents    *int64 `db:"back_cents" json:"back_cents,omitempty"`
	OverallCents *int64 `db:"overall_cents" json:"overall_cents,omitempty"`
}

// AmountFor returns the stake in cents for the given segment.
func (w WagerAmounts) AmountFor(segment Segment) int64 {
	switch segment {
	case SegmentFront:
		if w.FrontCents != nil {
			return *w.FrontCents
		}
		return w.UnitCents
	case SegmentBack:
		if w.BackCents != nil {
			return *w.BackCents
		}
		return w.UnitCents
	case SegmentOverall:
		if w.OverallCents != nil {
			return *w.OverallCents
		}
		return 2 * w.UnitCents
	}
	return 0
}

// GameSession represents one multi-player Nassau wager.
type GameSession struct {
	ID            uuid.UUID     `db:"id" json:"id" validate:"required,uuid4"`
	RoundID       uuid.UUID     `db:"round_id" json:"round_id"`
	Name          string        `db:"name" json:"name"`
	HoleSelection HoleSelection `db:"hole_selection" json:"hole_selection" validate:"required,oneof=18 front9 back9"`
	Participants  []Participant `db:"participants" json:"participants" validate:"min=2"`
	Wagers        WagerAmounts  `db:"wagers" json:"wagers"`
}

// ParticipantFor returns the participant with the given player ID.
func (s *GameSession) ParticipantFor(playerID uuid.UUID) (Participant, bool) {
	for _, p := range s.Participants {
		if p.PlayerID == playerID {
			return p, true
		}
	}
	return Participant{}, false
}

// SegmentMatchResult is a decided head-to-head outcome for one pairing
// in one segment, as produced by the game-scoring module. Records with
// a missing side or pairing ID, or a non-singles context, are dropped
// at the settlement boundary rather than failing the whole session.
type SegmentMatchResult struct {
	PairingID    uuid.UUID    `db:"pairing_id" json:"pairing_id"`
	Segment      Segment      `db:"segment" json:"segment" validate:"required,oneof=front back overall"`
	SideA        uuid.UUID    `db:"side_a" json:"side_a"`
	SideB        uuid.UUID    `db:"side_b" json:"side_b"`
	Outcome      MatchOutcome `db:"outcome" json:"outcome" validate:"required,oneof=side_a_wins side_b_wins tie"`
	HolesWonA    int          `db:"holes_won_a" json:"holes_won_a" validate:"gte=0"`
	HolesWonB    int          `db:"holes_won_b" json:"holes_won_b" validate:"gte=0"`
	MatchContext MatchContext `db:"match_context" json:"match_context"`
}

// LineItemTransaction is one signed payment obligation before netting:
// the losing player of a pairing/segment pays the winner the segment stake.
type LineItemTransaction struct {
	FromPlayerID uuid.UUID `json:"from_player_id"`
	ToPlayerID   uuid.UUID `json:"to_player_id"`
	AmountCents  int64     `json:"amount_cents"`
	Segment      Segment   `json:"segment"`
	PairingID    uuid.UUID `json:"pairing_id"`
}

// PairwiseSettlement is the single netted payment between one pair of
// players. AmountCents is always positive; direction is carried by the
// from/to fields.
type PairwiseSettlement struct {
	FromPlayerID uuid.UUID `json:"from_player_id"`
	ToPlayerID   uuid.UUID `json:"to_player_id"`
	AmountCents  int64     `json:"amount_cents"`
}

// NetBalanceRow is one player's overall position across all pairings.
// Positive NetCents means the player is owed money.
type NetBalanceRow struct {
	PlayerID    uuid.UUID `json:"player_id"`
	DisplayName string    `json:"display_name"`
	NetCents    int64     `json:"net_cents"`
}
