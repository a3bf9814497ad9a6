// Package settlement turns decided Nassau match outcomes into money:
// signed line items per segment and pairing, netted pairwise payments,
// and per-player net balances. It never decides who won a hole or a
// segment; that is the game-scoring module's job.
package settlement

import (
	"github.com/google/uuid"
	"github.com/yourusername/fairway-ledger/internal/models"
)

// settledMatch is the fully-typed, already-validated form of a match
// result with a decided winner. Raw results are converted exactly once
// at the boundary; the netting math never re-checks shapes.
type settledMatch struct {
	pairingID uuid.UUID
	segment   models.Segment
	winner    uuid.UUID
	loser     uuid.UUID
}

// View is the complete settlement of one game session.
type View struct {
	LineItems    []models.LineItemTransaction `json:"line_items"`
	Pairwise     []models.PairwiseSettlement  `json:"pairwise"`
	Balances     []models.NetBalanceRow       `json:"balances"`
	WagerSummary string                       `json:"wager_summary"`
	Standings    []StandingRow                `json:"standings"`
	LeaderLine   string                       `json:"leader_line"`
	Breakdowns   []PlayerBreakdown            `json:"breakdowns"`
}

// Settle produces the full settlement view for a session. A session
// with no settleable results is a valid terminal state: empty line
// items, no pairwise settlements, all-zero balances.
func Settle(session *models.GameSession, results []models.SegmentMatchResult) *View {
	included := includeResults(session, results)
	items := lineItemsFor(session, included)
	standings := computeStandings(session, included)

	return &View{
		LineItems:    items,
		Pairwise:     NetPairwise(items),
		Balances:     NetBalances(session.Participants, items),
		WagerSummary: wagerSummary(session),
		Standings:    standings,
		LeaderLine:   leaderLine(standings),
		Breakdowns:   playerBreakdowns(session, included),
	}
}

// GenerateLineItems emits one signed transaction per decided,
// settleable result: the loser pays the winner the segment stake.
func GenerateLineItems(session *models.GameSession, results []models.SegmentMatchResult) []models.LineItemTransaction {
	return lineItemsFor(session, includeResults(session, results))
}

// includeResults filters raw match results down to the settleable set:
// genuine singles matchups with both sides and a pairing ID, in a
// segment the session's hole selection actually covers. Malformed
// records degrade to fewer settled debts rather than an error.
func includeResults(session *models.GameSession, results []models.SegmentMatchResult) []models.SegmentMatchResult {
	relevant := make(map[models.Segment]bool)
	for _, seg := range session.HoleSelection.Segments() {
		relevant[seg] = true
	}

	included := make([]models.SegmentMatchResult, 0, len(results))
	for _, r := range results {
		if r.MatchContext == models.ContextPress || r.MatchContext == models.ContextTeam {
			continue
		}
		if r.SideA == uuid.Nil || r.SideB == uuid.Nil || r.PairingID == uuid.Nil {
			continue
		}
		if !relevant[r.Segment] {
			continue
		}
		included = append(included, r)
	}
	return included
}

func lineItemsFor(session *models.GameSession, included []models.SegmentMatchResult) []models.LineItemTransaction {
	items := make([]models.LineItemTransaction, 0, len(included))
	for _, m := range decidedMatches(included) {
		amount := session.Wagers.AmountFor(m.segment)
		if amount <= 0 {
			continue
		}
		items = append(items, models.LineItemTransaction{
			FromPlayerID: m.loser,
			ToPlayerID:   m.winner,
			AmountCents:  amount,
			Segment:      m.segment,
			PairingID:    m.pairingID,
		})
	}
	return items
}

// decidedMatches converts included results with a non-tie outcome into
// the typed winner/loser form. Ties carry no payment and drop here.
func decidedMatches(included []models.SegmentMatchResult) []settledMatch {
	matches := make([]settledMatch, 0, len(included))
	for _, r := range included {
		switch r.Outcome {
		case models.OutcomeSideAWins:
			matches = append(matches, settledMatch{
				pairingID: r.PairingID,
				segment:   r.Segment,
				winner:    r.SideA,
				loser:     r.SideB,
			})
		case models.OutcomeSideBWins:
			matches = append(matches, settledMatch{
				pairingID: r.PairingID,
				segment:   r.Segment,
				winner:    r.SideB,
				loser:     r.SideA,
			})
		}
	}
	return matches
}
