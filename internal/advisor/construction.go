package advisor

import (
	"sort"

	"github.com/talgya/dominion/internal/polity"
)

// productiveByPopulation returns the polity's productive settlements in
// descending population order. Larger settlements come first so that when
// two purchases tie on cost, the bigger settlement wins the budget.
func productiveByPopulation(p *polity.Polity) []*polity.Settlement {
	out := make([]*polity.Settlement, 0, len(p.Settlements))
	for _, s := range p.Settlements {
		if s.Productive() {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Population > out[j].Population
	})
	return out
}

// sortByCost orders opportunities cheapest-first. The sort is stable, so
// the settlement traversal order breaks cost ties. Cheapest-first
// maximizes the number of completed purchases per cycle rather than total
// value.
func sortByCost(opps []Opportunity) {
	sort.SliceStable(opps, func(i, j int) bool {
		return opps[i].Cost < opps[j].Cost
	})
}

// scanConstruction finds every building the polity could buy outright this
// cycle: one opportunity per available, currency-priced building per
// productive settlement.
func scanConstruction(p *polity.Polity, deps *Deps) []Opportunity {
	var opps []Opportunity
	for _, s := range productiveByPopulation(p) {
		for _, b := range deps.Rules.AvailableBuildings(s) {
			if b.Cost <= 0 {
				continue // no currency price defined
			}
			opps = append(opps, Opportunity{
				Category:   CategoryConstruction,
				Cost:       b.Cost,
				Settlement: s,
				Building:   b,
			})
		}
	}
	sortByCost(opps)
	return opps
}

// scanRecruitment is the construction traversal restricted to military
// unit types.
func scanRecruitment(p *polity.Polity, deps *Deps) []Opportunity {
	var opps []Opportunity
	for _, s := range productiveByPopulation(p) {
		for _, u := range deps.Rules.AvailableUnits(s) {
			if !u.Military {
				continue
			}
			if u.Cost <= 0 {
				continue
			}
			opps = append(opps, Opportunity{
				Category:   CategoryRecruitment,
				Cost:       u.Cost,
				Settlement: s,
				UnitType:   u,
			})
		}
	}
	sortByCost(opps)
	return opps
}
