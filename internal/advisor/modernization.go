package advisor

import (
	"github.com/talgya/dominion/internal/polity"
)

// scanModernization finds every unit with a defined successor type.
//
// The upgrade price is the base-cost difference, floored at zero (a
// cheaper successor is a free upgrade, never a refund). Opportunities keep
// unit discovery order; there is no meaningful sort key here. Whether the
// unit can actually upgrade right now is the executor's call — a failed
// capability check at execution time spends nothing.
func scanModernization(p *polity.Polity, deps *Deps) []Opportunity {
	var opps []Opportunity
	for _, u := range p.Units {
		cost, ok := deps.Rules.UpgradeCost(u.Type)
		if !ok {
			continue
		}
		opps = append(opps, Opportunity{
			Category: CategoryModernization,
			Cost:     cost,
			Unit:     u,
		})
	}
	return opps
}
