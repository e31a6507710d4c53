package advisor

import (
	"github.com/talgya/dominion/internal/polity"
	"github.com/talgya/dominion/internal/ruleset"
	"github.com/talgya/dominion/internal/world"
)

// scoreParcel rates how much the polity wants an unclaimed parcel.
//
// Additive scheme: a natural wonder is always worth claiming; a luxury
// the polity lacks or a strategic resource it is short on is worth a lot;
// any other resource is a modest baseline gain. A bare parcel scores 0
// and is never proposed.
func scoreParcel(p *polity.Polity, parcel *world.Parcel, t ruleset.Tuning) int {
	score := 0
	if parcel.Wonder {
		score += t.ScoreWonder
	}

	res := parcel.Resource
	if res == world.ResourceNone {
		return score
	}

	switch res.Class() {
	case world.ClassLuxury:
		if p.ResourceCount(res) == 0 {
			score += t.ScoreNewLuxury
		} else {
			score += t.ScoreStocked
		}
	case world.ClassStrategic:
		if p.ResourceCount(res) <= t.StrategicStockFloor {
			score += t.ScoreScarceStrategic
		} else {
			score += t.ScoreStocked
		}
	default:
		score += t.ScoreStocked
	}
	return score
}

// candidateParcels walks the claim ring around a settlement in fixed
// coordinate order and returns the scored, visible, unclaimed parcels.
func candidateParcels(p *polity.Polity, s *polity.Settlement, deps *Deps) []*world.Parcel {
	radius := deps.Rules.Tuning.ClaimRadius
	var out []*world.Parcel
	for q := s.Position.Q - radius; q <= s.Position.Q+radius; q++ {
		for r := s.Position.R - radius; r <= s.Position.R+radius; r++ {
			coord := world.HexCoord{Q: q, R: r}
			d := world.Distance(s.Position, coord)
			if d == 0 || d > radius {
				continue
			}
			parcel := deps.World.Get(coord)
			if parcel == nil || !parcel.Claimable() {
				continue
			}
			if !p.CanSee(coord) {
				continue
			}
			if scoreParcel(p, parcel, deps.Rules.Tuning) <= 0 {
				continue
			}
			out = append(out, parcel)
		}
	}
	return out
}

// scanExpansion proposes at most one territory claim per productive
// settlement: its highest-scored reachable parcel, priced by distance and
// era, and only if currently affordable.
//
// A parcel reachable from several of the polity's settlements is assigned
// to the nearest one before proposals are chosen, so two settlements never
// compete for the same ground. Contention across different polities is the
// outer simulation's problem, not the advisor's.
func scanExpansion(p *polity.Polity, deps *Deps, budget int64) []Opportunity {
	settlements := productiveByPopulation(p)

	// First pass: assign every candidate parcel to its nearest settlement.
	// Distance ties keep the earlier settlement in traversal order.
	type claim struct {
		settlement *polity.Settlement
		dist       int
	}
	assigned := make(map[world.HexCoord]claim)
	reachable := make(map[*polity.Settlement][]*world.Parcel)

	for _, s := range settlements {
		reachable[s] = candidateParcels(p, s, deps)
		for _, parcel := range reachable[s] {
			d := world.Distance(s.Position, parcel.Coord)
			if prev, ok := assigned[parcel.Coord]; ok && prev.dist <= d {
				continue
			}
			assigned[parcel.Coord] = claim{settlement: s, dist: d}
		}
	}
	candidates := make(map[*polity.Settlement][]*world.Parcel)
	for _, s := range settlements {
		for _, parcel := range reachable[s] {
			if assigned[parcel.Coord].settlement == s {
				candidates[s] = append(candidates[s], parcel)
			}
		}
	}

	// Second pass: each settlement proposes its single best parcel.
	var opps []Opportunity
	for _, s := range settlements {
		var best *world.Parcel
		bestScore := 0
		for _, parcel := range candidates[s] {
			score := scoreParcel(p, parcel, deps.Rules.Tuning)
			if score > bestScore {
				best = parcel
				bestScore = score
			}
		}
		if best == nil {
			continue
		}
		cost := deps.Rules.ParcelCost(world.Distance(s.Position, best.Coord), p.Era)
		if cost > budget {
			continue
		}
		opps = append(opps, Opportunity{
			Category:   CategoryExpansion,
			Cost:       cost,
			Settlement: s,
			Parcel:     best,
		})
	}
	sortByCost(opps)
	return opps
}
