package settlement

import (
	"sort"

	"github.com/google/uuid"
	"github.com/yourusername/fairway-ledger/internal/models"
)

// pairKey identifies an unordered player pair. The two IDs are always
// ordered lexicographically so a pairing's ledger does not depend on
// which transaction listed which player as "from".
type pairKey struct {
	first  uuid.UUID
	second uuid.UUID
}

func newPairKey(a, b uuid.UUID) pairKey {
	if a.String() > b.String() {
		a, b = b, a
	}
	return pairKey{first: a, second: b}
}

// NetPairwise collapses all line items between each unordered pair
// into a single payment. Amounts flowing from the lexicographically
// first player to the second count positive, the reverse negative;
// the sign of the sum picks the net payer and the absolute value the
// amount. Pairs netting to exactly zero are dropped from display;
// their line items remain part of the audit trail.
func NetPairwise(items []models.LineItemTransaction) []models.PairwiseSettlement {
	nets := make(map[pairKey]int64)
	for _, item := range items {
		key := newPairKey(item.FromPlayerID, item.ToPlayerID)
		if item.FromPlayerID == key.first {
			nets[key] += item.AmountCents
		} else {
			nets[key] -= item.AmountCents
		}
	}

	keys := make([]pairKey, 0, len(nets))
	for key := range nets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].first != keys[j].first {
			return keys[i].first.String() < keys[j].first.String()
		}
		return keys[i].second.String() < keys[j].second.String()
	})

	settlements := make([]models.PairwiseSettlement, 0, len(keys))
	for _, key := range keys {
		net := nets[key]
		switch {
		case net > 0:
			settlements = append(settlements, models.PairwiseSettlement{
				FromPlayerID: key.first,
				ToPlayerID:   key.second,
				AmountCents:  net,
			})
		case net < 0:
			settlements = append(settlements, models.PairwiseSettlement{
				FromPlayerID: key.second,
				ToPlayerID:   key.first,
				AmountCents:  -net,
			})
		}
	}
	return settlements
}

// NetBalances sums every flow touching a player, signed from that
// player's perspective (received = positive). It works from the raw
// line items, independently of the pairwise display, so the two can
// cross-check each other; the rows always sum to zero.
func NetBalances(participants []models.Participant, items []models.LineItemTransaction) []models.NetBalanceRow {
	nets := make(map[uuid.UUID]int64, len(participants))
	for _, item := range items {
		nets[item.ToPlayerID] += item.AmountCents
		nets[item.FromPlayerID] -= item.AmountCents
	}

	rows := make([]models.NetBalanceRow, 0, len(participants))
	for _, p := range participants {
		rows = append(rows, models.NetBalanceRow{
			PlayerID:    p.PlayerID,
			DisplayName: p.DisplayName,
			NetCents:    nets[p.PlayerID],
		})
	}
	return rows
}
