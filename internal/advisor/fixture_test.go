package advisor

import (
	"github.com/talgya/dominion/internal/polity"
	"github.com/talgya/dominion/internal/ruleset"
	"github.com/talgya/dominion/internal/world"
)

// testRules builds a small, fully controlled catalog so scanner tests are
// not coupled to the stock ruleset.
func testRules() *ruleset.Ruleset {
	rs := &ruleset.Ruleset{
		Buildings: map[string]ruleset.Building{
			"shrine":  {ID: "shrine", Name: "Shrine", Cost: 200},
			"granary": {ID: "granary", Name: "Granary", Cost: 150},
			"palace":  {ID: "palace", Name: "Palace", Cost: 0}, // not purchasable
			"keep":    {ID: "keep", Name: "Keep", Cost: 400, MinPopulation: 500},
		},
		BuildingOrder: []string{"shrine", "granary", "palace", "keep"},
		Units: map[string]ruleset.UnitType{
			"militia":    {ID: "militia", Name: "Militia", Cost: 300, Military: true},
			"levy":       {ID: "levy", Name: "Levy", Cost: 180, Military: true, Successor: "halberdier"},
			"halberdier": {ID: "halberdier", Name: "Halberdier", Cost: 260, Military: true},
			"caravan":    {ID: "caravan", Name: "Caravan", Cost: 120, Military: false},
		},
		UnitOrder: []string{"militia", "levy", "halberdier", "caravan"},
		Tuning:    ruleset.DefaultTuning(),
	}
	return rs
}

// flatWorld builds a map of the given radius, all plains, no resources.
func flatWorld(radius int) *world.Map {
	m := world.NewMap(radius)
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			coord := world.HexCoord{Q: q, R: r}
			if !m.InBounds(coord) {
				continue
			}
			m.Set(&world.Parcel{Coord: coord, Terrain: world.TerrainPlains})
		}
	}
	return m
}

// newMajor builds a polity with the given treasury and uniform traits.
func newMajor(id polity.PolityID, crowns int64) *polity.Polity {
	return &polity.Polity{
		ID:        id,
		Name:      "Testland",
		Kind:      polity.KindMajor,
		Treasury:  crowns,
		MaxSupply: 10,
		Traits: polity.TraitWeights{
			polity.TraitMilitaristic: 5,
			polity.TraitDiplomatic:   5,
			polity.TraitCommercial:   5,
			polity.TraitIndustrial:   5,
			polity.TraitScientific:   5,
			polity.TraitCultural:     5,
			polity.TraitExpansive:    5,
		},
	}
}

// addSettlement appends a productive settlement and claims its parcel.
func addSettlement(m *world.Map, p *polity.Polity, id uint64, name string, pos world.HexCoord, pop uint32) *polity.Settlement {
	s := &polity.Settlement{
		ID:         id,
		Name:       name,
		OwnerID:    p.ID,
		Position:   pos,
		Population: pop,
	}
	p.Settlements = append(p.Settlements, s)
	if parcel := m.Get(pos); parcel != nil && parcel.Claimable() {
		owner := uint64(p.ID)
		parcel.OwnerID = &owner
	}
	p.Reveal(pos)
	return s
}

// revealAround marks everything within radius of pos as scouted.
func revealAround(m *world.Map, p *polity.Polity, pos world.HexCoord, radius int) {
	for q := pos.Q - radius; q <= pos.Q+radius; q++ {
		for r := pos.R - radius; r <= pos.R+radius; r++ {
			coord := world.HexCoord{Q: q, R: r}
			if world.Distance(pos, coord) <= radius && m.Get(coord) != nil {
				p.Reveal(coord)
			}
		}
	}
}

// testDeps bundles standard deps for one polity under test.
func testDeps(rs *ruleset.Ruleset, m *world.Map, rivals ...*polity.Polity) *Deps {
	return &Deps{
		Rules:  rs,
		World:  m,
		Rivals: rivals,
		Cycle:  1,
	}
}
