package settlement

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/fairway-ledger/internal/models"
)

func i64(v int64) *int64 { return &v }

func twoPlayerSession(unitCents int64) (*models.GameSession, uuid.UUID, uuid.UUID) {
	alice := uuid.New()
	bob := uuid.New()
	session := &models.GameSession{
		ID:            uuid.New(),
		RoundID:       uuid.New(),
		Name:          "Saturday Nassau",
		HoleSelection: models.HoleSelectionEighteen,
		Participants: []models.Participant{
			{PlayerID: alice, DisplayName: "Alice"},
			{PlayerID: bob, DisplayName: "Bob"},
		},
		Wagers: models.WagerAmounts{UnitCents: unitCents},
	}
	return session, alice, bob
}

func singlesResult(pairingID uuid.UUID, segment models.Segment, a, b uuid.UUID, outcome models.MatchOutcome) models.SegmentMatchResult {
	return models.SegmentMatchResult{
		PairingID:    pairingID,
		Segment:      segment,
		SideA:        a,
		SideB:        b,
		Outcome:      outcome,
		MatchContext: models.ContextSingles,
	}
}

func TestSettleSweep(t *testing.T) {
	session, alice, bob := twoPlayerSession(500)
	pairing := uuid.New()

	// Alice wins front, back and overall at $5/$5/$10.
	results := []models.SegmentMatchResult{
		singlesResult(pairing, models.SegmentFront, alice, bob, models.OutcomeSideAWins),
		singlesResult(pairing, models.SegmentBack, alice, bob, models.OutcomeSideAWins),
		singlesResult(pairing, models.SegmentOverall, alice, bob, models.OutcomeSideAWins),
	}

	view := Settle(session, results)

	require.Len(t, view.LineItems, 3)
	var total int64
	for _, item := range view.LineItems {
		assert.Equal(t, bob, item.FromPlayerID)
		assert.Equal(t, alice, item.ToPlayerID)
		assert.Equal(t, pairing, item.PairingID)
		total += item.AmountCents
	}
	assert.Equal(t, int64(2000), total)

	require.Len(t, view.Pairwise, 1)
	assert.Equal(t, bob, view.Pairwise[0].FromPlayerID)
	assert.Equal(t, alice, view.Pairwise[0].ToPlayerID)
	assert.Equal(t, int64(2000), view.Pairwise[0].AmountCents)

	require.Len(t, view.Balances, 2)
	balances := map[uuid.UUID]int64{}
	for _, row := range view.Balances {
		balances[row.PlayerID] = row.NetCents
	}
	assert.Equal(t, int64(2000), balances[alice])
	assert.Equal(t, int64(-2000), balances[bob])

	assert.Equal(t, "Front $5.00, Back $5.00, Overall $10.00", view.WagerSummary)
	assert.Equal(t, "Alice leads with 3 segments won.", view.LeaderLine)
}

func TestSettleSplitNetsToNothing(t *testing.T) {
	session, alice, bob := twoPlayerSession(500)
	pairing := uuid.New()

	// Alice takes the front, Bob the back, overall is tied: equal
	// stakes cancel out.
	results := []models.SegmentMatchResult{
		singlesResult(pairing, models.SegmentFront, alice, bob, models.OutcomeSideAWins),
		singlesResult(pairing, models.SegmentBack, alice, bob, models.OutcomeSideBWins),
		singlesResult(pairing, models.SegmentOverall, alice, bob, models.OutcomeTie),
	}

	view := Settle(session, results)

	require.Len(t, view.LineItems, 2)
	assert.Empty(t, view.Pairwise, "a zero net pair must not be displayed")
	for _, row := range view.Balances {
		assert.Zero(t, row.NetCents)
	}
}

func TestSettleNoResults(t *testing.T) {
	session, alice, bob := twoPlayerSession(500)

	view := Settle(session, nil)

	assert.Empty(t, view.LineItems)
	assert.Empty(t, view.Pairwise)
	assert.Empty(t, view.LeaderLine)
	require.Len(t, view.Balances, 2)
	for _, row := range view.Balances {
		assert.Contains(t, []uuid.UUID{alice, bob}, row.PlayerID)
		assert.Zero(t, row.NetCents)
	}
}

func TestSettleExcludesNonSinglesAndMalformedResults(t *testing.T) {
	session, alice, bob := twoPlayerSession(500)
	pairing := uuid.New()

	press := singlesResult(pairing, models.SegmentBack, alice, bob, models.OutcomeSideAWins)
	press.MatchContext = models.ContextPress

	missingSide := singlesResult(pairing, models.SegmentOverall, alice, uuid.Nil, models.OutcomeSideAWins)
	missingPairing := singlesResult(uuid.Nil, models.SegmentOverall, alice, bob, models.OutcomeSideAWins)

	results := []models.SegmentMatchResult{
		singlesResult(pairing, models.SegmentFront, alice, bob, models.OutcomeSideAWins),
		press,
		missingSide,
		missingPairing,
	}

	items := GenerateLineItems(session, results)

	require.Len(t, items, 1)
	assert.Equal(t, models.SegmentFront, items[0].Segment)
	assert.Equal(t, int64(500), items[0].AmountCents)
}

func TestSettleIgnoresIrrelevantSegments(t *testing.T) {
	session, alice, bob := twoPlayerSession(500)
	session.HoleSelection = models.HoleSelectionFront9
	pairing := uuid.New()

	// Only the front segment exists for a front-nine session.
	results := []models.SegmentMatchResult{
		singlesResult(pairing, models.SegmentFront, alice, bob, models.OutcomeSideAWins),
		singlesResult(pairing, models.SegmentBack, alice, bob, models.OutcomeSideBWins),
		singlesResult(pairing, models.SegmentOverall, alice, bob, models.OutcomeSideBWins),
	}

	view := Settle(session, results)

	require.Len(t, view.LineItems, 1)
	assert.Equal(t, models.SegmentFront, view.LineItems[0].Segment)
	assert.Equal(t, "Front $5.00", view.WagerSummary)
}

func TestSettleSegmentOverrides(t *testing.T) {
	session, alice, bob := twoPlayerSession(500)
	session.Wagers.BackCents = i64(700)
	session.Wagers.OverallCents = i64(1500)
	pairing := uuid.New()

	results := []models.SegmentMatchResult{
		singlesResult(pairing, models.SegmentFront, alice, bob, models.OutcomeSideBWins),
		singlesResult(pairing, models.SegmentBack, alice, bob, models.OutcomeSideBWins),
		singlesResult(pairing, models.SegmentOverall, alice, bob, models.OutcomeSideBWins),
	}

	view := Settle(session, results)

	require.Len(t, view.Pairwise, 1)
	assert.Equal(t, alice, view.Pairwise[0].FromPlayerID)
	assert.Equal(t, bob, view.Pairwise[0].ToPlayerID)
	assert.Equal(t, int64(500+700+1500), view.Pairwise[0].AmountCents)
	assert.Equal(t, "Front $5.00, Back $7.00, Overall $15.00", view.WagerSummary)
}

func TestSettleZeroStakeSegmentsProduceNoItems(t *testing.T) {
	session, alice, bob := twoPlayerSession(0)
	pairing := uuid.New()

	results := []models.SegmentMatchResult{
		singlesResult(pairing, models.SegmentFront, alice, bob, models.OutcomeSideAWins),
	}

	view := Settle(session, results)

	assert.Empty(t, view.LineItems)
	// The win still counts in the standings even with nothing staked.
	assert.Equal(t, "Alice leads with 1 segment won.", view.LeaderLine)
}

func TestSettleFourPlayerRoundRobin(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	names := []string{"Alice", "Bob", "Carol", "Dave"}
	session := &models.GameSession{
		ID:            uuid.New(),
		RoundID:       uuid.New(),
		Name:          "Foursome",
		HoleSelection: models.HoleSelectionEighteen,
		Wagers:        models.WagerAmounts{UnitCents: 500},
	}
	for i, id := range ids {
		session.Participants = append(session.Participants, models.Participant{PlayerID: id, DisplayName: names[i]})
	}

	// Player 0 sweeps every opponent on every segment.
	var results []models.SegmentMatchResult
	for _, opp := range ids[1:] {
		pairing := uuid.New()
		for _, seg := range []models.Segment{models.SegmentFront, models.SegmentBack, models.SegmentOverall} {
			results = append(results, singlesResult(pairing, seg, ids[0], opp, models.OutcomeSideAWins))
		}
	}

	view := Settle(session, results)

	require.Len(t, view.LineItems, 9)
	require.Len(t, view.Pairwise, 3)
	for _, p := range view.Pairwise {
		assert.Equal(t, ids[0], p.ToPlayerID)
		assert.Equal(t, int64(2000), p.AmountCents)
	}

	balances := map[uuid.UUID]int64{}
	for _, row := range view.Balances {
		balances[row.PlayerID] = row.NetCents
	}
	assert.Equal(t, int64(6000), balances[ids[0]])
	for _, opp := range ids[1:] {
		assert.Equal(t, int64(-2000), balances[opp])
	}

	require.NotEmpty(t, view.Standings)
	assert.Equal(t, "Alice", view.Standings[0].DisplayName)
	assert.Equal(t, 9, view.Standings[0].SegmentWins)
	assert.Equal(t, "Alice leads with 9 segments won.", view.LeaderLine)
}
