package advisor

import (
	"sort"

	"github.com/talgya/dominion/internal/polity"
	"github.com/talgya/dominion/internal/ruleset"
)

// SupplyState is the polity's military capacity snapshot at ranking time.
type SupplyState struct {
	Current int // Military units fielded
	Max     int // Units the polity can support
}

// Ratio returns current/max supply, 0 when max is 0.
func (s SupplyState) Ratio() float64 {
	if s.Max <= 0 {
		return 0
	}
	return float64(s.Current) / float64(s.Max)
}

// Ranking is the descending category order for one cycle. Recomputed fresh
// every cycle, never persisted.
type Ranking [NumCategories]Category

// Rank derives the cycle's category order from the polity's traits and its
// military supply state.
//
// Base weights are fixed linear combinations of traits. Recruitment then
// gets a dynamic nudge: under-supplied polities boost it, saturated ones
// damp it. Modernization shares the militaristic source but keeps an
// independent, unadjusted weight slot. Ties resolve by category
// declaration order, so the result is deterministic for equal weights.
func Rank(traits polity.TraitWeights, supply SupplyState, t ruleset.Tuning) Ranking {
	mil := traits.Get(polity.TraitMilitaristic)

	var weights [NumCategories]float64
	weights[CategoryRecruitment] = mil
	weights[CategoryInfluence] = (traits.Get(polity.TraitDiplomatic) + traits.Get(polity.TraitCommercial)) / 2
	weights[CategoryConstruction] = (traits.Get(polity.TraitIndustrial) +
		traits.Get(polity.TraitScientific) +
		traits.Get(polity.TraitCultural)) / 3
	weights[CategoryExpansion] = traits.Get(polity.TraitExpansive)
	weights[CategoryModernization] = mil

	targetRatio := t.SupplyTargetBase + t.SupplyTargetSlope*(mil/polity.TraitMax)
	if supply.Ratio() < targetRatio {
		weights[CategoryRecruitment] *= t.RecruitBoost
	} else {
		weights[CategoryRecruitment] *= t.RecruitDamp
	}

	ranking := Ranking{
		CategoryRecruitment,
		CategoryInfluence,
		CategoryConstruction,
		CategoryExpansion,
		CategoryModernization,
	}
	sort.SliceStable(ranking[:], func(i, j int) bool {
		return weights[ranking[i]] > weights[ranking[j]]
	})
	return ranking
}
