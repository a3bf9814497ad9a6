package settlement

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yourusername/fairway-ledger/internal/models"
)

// segmentLabels are the human-readable names used in summaries.
var segmentLabels = map[models.Segment]string{
	models.SegmentFront:   "Front",
	models.SegmentBack:    "Back",
	models.SegmentOverall: "Overall",
}

// StandingRow is one player's position in the session standings:
// how many settleable segments they won outright.
type StandingRow struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	SegmentWins int    `json:"segment_wins"`
}

// OpponentSegmentLine is one segment of one head-to-head matchup from
// a player's perspective.
type OpponentSegmentLine struct {
	Opponent  string         `json:"opponent"`
	Segment   models.Segment `json:"segment"`
	Result    string         `json:"result"` // "won", "lost" or "tied"
	HolesWon  int            `json:"holes_won"`
	HolesLost int            `json:"holes_lost"`
}

// PlayerBreakdown lists every settleable matchup outcome for one player.
type PlayerBreakdown struct {
	PlayerID    string                `json:"player_id"`
	DisplayName string                `json:"display_name"`
	Lines       []OpponentSegmentLine `json:"lines"`
}

// FormatCents renders integer cents as a dollar string, e.g. 500 -> "$5.00".
func FormatCents(cents int64) string {
	return "$" + decimal.NewFromInt(cents).Shift(-2).StringFixed(2)
}

// wagerSummary renders the stakes for the session's relevant segments,
// e.g. "Front $5.00, Back $5.00, Overall $10.00".
func wagerSummary(session *models.GameSession) string {
	parts := make([]string, 0, 3)
	for _, seg := range session.HoleSelection.Segments() {
		parts = append(parts, fmt.Sprintf("%s %s", segmentLabels[seg], FormatCents(session.Wagers.AmountFor(seg))))
	}
	return strings.Join(parts, ", ")
}

// computeStandings tallies outright segment wins per participant over
// the included results. Ties award nobody. Rows are ordered by wins
// descending, then display name for a stable presentation.
func computeStandings(session *models.GameSession, included []models.SegmentMatchResult) []StandingRow {
	wins := make(map[string]int, len(session.Participants))
	for _, m := range decidedMatches(included) {
		wins[m.winner.String()]++
	}

	rows := make([]StandingRow, 0, len(session.Participants))
	for _, p := range session.Participants {
		rows = append(rows, StandingRow{
			PlayerID:    p.PlayerID.String(),
			DisplayName: p.DisplayName,
			SegmentWins: wins[p.PlayerID.String()],
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].SegmentWins != rows[j].SegmentWins {
			return rows[i].SegmentWins > rows[j].SegmentWins
		}
		return rows[i].DisplayName < rows[j].DisplayName
	})
	return rows
}

// leaderLine turns the standings into a one-sentence summary. A single
// leader gets a winner sentence; tied leaders are reported together.
// No wins at all yields an empty string.
func leaderLine(standings []StandingRow) string {
	if len(standings) == 0 || standings[0].SegmentWins == 0 {
		return ""
	}

	top := standings[0].SegmentWins
	leaders := make([]string, 0, len(standings))
	for _, row := range standings {
		if row.SegmentWins == top {
			leaders = append(leaders, row.DisplayName)
		}
	}

	unit := "segments"
	if top == 1 {
		unit = "segment"
	}
	if len(leaders) == 1 {
		return fmt.Sprintf("%s leads with %d %s won.", leaders[0], top, unit)
	}
	return fmt.Sprintf("%s are tied with %d %s won each.", joinNames(leaders), top, unit)
}

// playerBreakdowns builds, for every participant, the per-opponent and
// per-segment outcome with the holes-won tally. Ties are included here
// even though they settle no money.
func playerBreakdowns(session *models.GameSession, included []models.SegmentMatchResult) []PlayerBreakdown {
	breakdowns := make([]PlayerBreakdown, 0, len(session.Participants))
	for _, p := range session.Participants {
		bd := PlayerBreakdown{
			PlayerID:    p.PlayerID.String(),
			DisplayName: p.DisplayName,
		}
		for _, r := range included {
			if r.SideA != p.PlayerID && r.SideB != p.PlayerID {
				continue
			}
			line := OpponentSegmentLine{Segment: r.Segment}
			var opponentID = r.SideB
			line.HolesWon, line.HolesLost = r.HolesWonA, r.HolesWonB
			won, lost := r.Outcome == models.OutcomeSideAWins, r.Outcome == models.OutcomeSideBWins
			if r.SideB == p.PlayerID {
				opponentID = r.SideA
				line.HolesWon, line.HolesLost = r.HolesWonB, r.HolesWonA
				won, lost = lost, won
			}
			switch {
			case won:
				line.Result = "won"
			case lost:
				line.Result = "lost"
			default:
				line.Result = "tied"
			}
			if opponent, ok := session.ParticipantFor(opponentID); ok {
				line.Opponent = opponent.DisplayName
			} else {
				line.Opponent = opponentID.String()
			}
			bd.Lines = append(bd.Lines, line)
		}
		breakdowns = append(breakdowns, bd)
	}
	return breakdowns
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
