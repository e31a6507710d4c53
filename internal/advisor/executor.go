package advisor

import (
	"github.com/talgya/dominion/internal/polity"
	"github.com/talgya/dominion/internal/world"
)

// Executor performs the actual purchase mutations against external state.
// Every Execute path either completes the purchase and debits the treasury,
// or leaves everything untouched and reports failure.
type Executor struct {
	deps *Deps
}

// Execute attempts one opportunity for the polity. Returns false without
// spending when the purchase cannot go through.
func (e *Executor) Execute(p *polity.Polity, opp Opportunity) bool {
	switch opp.Category {
	case CategoryConstruction:
		return e.executeConstruction(p, opp)
	case CategoryRecruitment:
		return e.executeRecruitment(p, opp)
	case CategoryInfluence:
		return e.executeInfluence(p, opp)
	case CategoryExpansion:
		return e.executeExpansion(p, opp)
	case CategoryModernization:
		return e.executeModernization(p, opp)
	}
	return false
}

func (e *Executor) executeConstruction(p *polity.Polity, opp Opportunity) bool {
	s := opp.Settlement
	if s.Has(opp.Building.ID) {
		return false
	}
	s.Complete(opp.Building.ID)
	p.Treasury -= opp.Cost
	return true
}

func (e *Executor) executeRecruitment(p *polity.Polity, opp Opportunity) bool {
	u := &polity.Unit{
		ID:       nextUnitID(p),
		Type:     opp.UnitType.ID,
		OwnerID:  p.ID,
		Position: opp.Settlement.Position,
		Military: opp.UnitType.Military,
	}
	p.Units = append(p.Units, u)
	p.Treasury -= opp.Cost
	return true
}

func (e *Executor) executeInfluence(p *polity.Polity, opp Opportunity) bool {
	t := e.deps.Rules.Tuning
	gain := t.GiftSmallGain
	if opp.Cost >= t.GiftLargeCost {
		gain = t.GiftLargeGain
	}
	opp.Rival.RaiseInfluence(p.ID, gain)
	p.Treasury -= opp.Cost
	return true
}

func (e *Executor) executeExpansion(p *polity.Polity, opp Opportunity) bool {
	parcel := opp.Parcel
	// The outer state layer may have handed the parcel to another polity
	// since scanning; claims on owned ground fail cleanly.
	if !parcel.Claimable() {
		return false
	}
	owner := uint64(p.ID)
	parcel.OwnerID = &owner
	p.AddResource(parcel.Resource)
	p.Reveal(parcel.Coord)
	p.Treasury -= opp.Cost
	return true
}

func (e *Executor) executeModernization(p *polity.Polity, opp Opportunity) bool {
	u := opp.Unit
	succ, ok := e.deps.Rules.Successor(u.Type)
	if !ok {
		return false
	}
	// Capability check, independent of cost: units only refit inside the
	// polity's own territory.
	if !e.canUpgradeAt(p, u.Position) {
		return false
	}
	u.Type = succ.ID
	p.Treasury -= opp.Cost
	return true
}

// canUpgradeAt reports whether the coordinate is inside territory the
// polity owns.
func (e *Executor) canUpgradeAt(p *polity.Polity, coord world.HexCoord) bool {
	parcel := e.deps.World.Get(coord)
	return parcel != nil && parcel.OwnerID != nil && *parcel.OwnerID == uint64(p.ID)
}

// nextUnitID returns an ID above every unit the polity currently holds.
func nextUnitID(p *polity.Polity) polity.UnitID {
	var max polity.UnitID
	for _, u := range p.Units {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
