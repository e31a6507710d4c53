package advisor

import (
	"github.com/talgya/dominion/internal/polity"
)

// scanInfluence finds tiered gift opportunities toward minor polities.
//
// A minor with very low standing gets the large-gift tier; one merely
// cool gets the small tier; anyone warmer gets nothing. Tiers also check
// the current budget at scan time, so an unaffordable tier is simply
// never offered. The cheaper small gifts sort ahead of large ones.
func scanInfluence(p *polity.Polity, deps *Deps, budget int64) []Opportunity {
	t := deps.Rules.Tuning

	var opps []Opportunity
	for _, rival := range deps.Rivals {
		if rival.Kind != polity.KindMinor || rival.ID == p.ID {
			continue
		}
		standing := rival.InfluenceWith(p.ID)
		switch {
		case standing < t.GiftLargeThreshold && budget >= t.GiftLargeCost:
			opps = append(opps, Opportunity{
				Category: CategoryInfluence,
				Cost:     t.GiftLargeCost,
				Rival:    rival,
			})
		case standing < t.GiftSmallThreshold && budget >= t.GiftSmallCost:
			opps = append(opps, Opportunity{
				Category: CategoryInfluence,
				Cost:     t.GiftSmallCost,
				Rival:    rival,
			})
		}
	}
	sortByCost(opps)
	return opps
}
