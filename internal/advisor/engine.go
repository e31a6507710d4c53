package advisor

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/talgya/dominion/internal/polity"
	"github.com/talgya/dominion/internal/treasury"
)

// Allocate runs one full budget-allocation cycle for a polity: rank the
// categories, scan each exactly once in rank order, and greedily execute
// affordable opportunities until the budget or the categories run out.
//
// The loop is single-pass per category. A category is never revisited
// within a cycle, even if later categories leave budget unspent. The
// polity's treasury is debited per executed transaction; the returned
// report mirrors the final remaining amount.
func Allocate(p *polity.Polity, deps *Deps) *treasury.AllocationReport {
	report := treasury.NewReport(uint64(p.ID), deps.Cycle, p.Treasury)
	report.Remaining = p.Treasury

	budget := treasury.Budget(p.Treasury)
	if budget.Exhausted() {
		return report
	}

	supply := SupplyState{Current: p.MilitaryCount(), Max: p.MaxSupply}
	ranking := Rank(p.Traits, supply, deps.Rules.Tuning)
	exec := &Executor{deps: deps}

	for _, cat := range ranking {
		if budget.Exhausted() {
			break
		}
		opps := scan(cat, p, deps, int64(budget))
		for _, opp := range opps {
			if budget.Exhausted() {
				break
			}
			if !budget.CanAfford(opp.Cost) {
				continue
			}
			if !exec.Execute(p, opp) {
				continue
			}
			budget.Spend(opp.Cost)
			tx := report.Record(cat.String(), opp.TargetLabel(), opp.Cost)
			deps.notify(cat.String(), opp.TargetLabel(), map[string]any{
				"transaction_id": tx.ID.String(),
				"polity_id":      p.ID,
				"polity_name":    p.Name,
				"cost":           opp.Cost,
				"remaining":      int64(budget),
			})
		}
	}

	report.Remaining = int64(budget)

	slog.Debug("allocation complete",
		"polity", p.Name,
		"cycle", deps.Cycle,
		"transactions", len(report.Transactions),
		"spent", humanize.Comma(report.Spent()),
		"remaining", humanize.Comma(report.Remaining),
	)

	return report
}

// scan dispatches to the category's opportunity scanner. The switch is
// exhaustive over the closed category set.
func scan(cat Category, p *polity.Polity, deps *Deps, budget int64) []Opportunity {
	switch cat {
	case CategoryRecruitment:
		return scanRecruitment(p, deps)
	case CategoryInfluence:
		return scanInfluence(p, deps, budget)
	case CategoryConstruction:
		return scanConstruction(p, deps)
	case CategoryExpansion:
		return scanExpansion(p, deps, budget)
	case CategoryModernization:
		return scanModernization(p, deps)
	}
	return nil
}
