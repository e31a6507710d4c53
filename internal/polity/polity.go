// Package polity provides the polity (AI player) data model: settlements,
// units, traits, and diplomatic standing.
package polity

import (
	"github.com/talgya/dominion/internal/world"
)

// PolityID is a unique identifier for a polity.
type PolityID uint64

// Kind distinguishes full AI players from minor city-states.
type Kind uint8

const (
	KindMajor Kind = iota // Full player — runs the treasury advisor each cycle
	KindMinor             // Minor polity — gift target, never allocates
)

// String returns the kind's name.
func (k Kind) String() string {
	if k == KindMinor {
		return "minor"
	}
	return "major"
}

// Polity is one AI-controlled participant in the simulation.
type Polity struct {
	ID      PolityID `json:"id"`
	Name    string   `json:"name"`
	Kind    Kind     `json:"kind"`
	Persona string   `json:"persona,omitempty"`

	// Traits drive spending priorities. Immutable during a decision cycle.
	Traits TraitWeights `json:"traits"`

	// Treasury is the spendable currency stock, in crowns.
	Treasury int64 `json:"treasury"`

	// Era scales territory costs as the polity advances.
	Era int `json:"era"`

	// MaxSupply is the number of military units the polity can support.
	MaxSupply int `json:"max_supply"`

	Settlements []*Settlement `json:"settlements"`
	Units       []*Unit       `json:"units"`

	// Revealed marks map parcels this polity has scouted.
	Revealed map[world.HexCoord]bool `json:"-"`

	// Resources counts units of each resource held via claimed parcels.
	Resources map[world.Resource]int `json:"resources"`

	// Influence is a minor polity's standing with each major polity (0–100).
	// Only populated when Kind is KindMinor.
	Influence map[PolityID]int `json:"influence,omitempty"`
}

// MilitaryCount returns the number of military units the polity fields.
func (p *Polity) MilitaryCount() int {
	n := 0
	for _, u := range p.Units {
		if u.Military {
			n++
		}
	}
	return n
}

// ResourceCount returns how many units of a resource the polity holds.
func (p *Polity) ResourceCount(r world.Resource) int {
	if p.Resources == nil {
		return 0
	}
	return p.Resources[r]
}

// AddResource records a newly claimed resource unit.
func (p *Polity) AddResource(r world.Resource) {
	if r == world.ResourceNone {
		return
	}
	if p.Resources == nil {
		p.Resources = make(map[world.Resource]int)
	}
	p.Resources[r]++
}

// Reveal marks a parcel as scouted.
func (p *Polity) Reveal(coord world.HexCoord) {
	if p.Revealed == nil {
		p.Revealed = make(map[world.HexCoord]bool)
	}
	p.Revealed[coord] = true
}

// CanSee reports whether the polity has scouted the coordinate.
func (p *Polity) CanSee(coord world.HexCoord) bool {
	return p.Revealed[coord]
}

// InfluenceWith returns a minor polity's standing with the given major.
func (p *Polity) InfluenceWith(major PolityID) int {
	if p.Influence == nil {
		return 0
	}
	return p.Influence[major]
}

// RaiseInfluence increases a minor polity's standing with a major, capped at 100.
func (p *Polity) RaiseInfluence(major PolityID, amount int) {
	if p.Influence == nil {
		p.Influence = make(map[PolityID]int)
	}
	v := p.Influence[major] + amount
	if v > 100 {
		v = 100
	}
	p.Influence[major] = v
}
