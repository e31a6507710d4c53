package main

import (
	"fmt"
	"math/rand"

	"github.com/talgya/dominion/internal/polity"
	"github.com/talgya/dominion/internal/ruleset"
	"github.com/talgya/dominion/internal/world"
)

// minorNames are flavor names for city-states.
var minorNames = []string{
	"Vel Arath", "Korim", "Sel Dune", "Tharvan", "Ostreya", "Qal Ressa",
}

// seedPolities founds majors and minors at placed capital sites, claims
// each capital's home ring, reveals scouting range, and hands out starting
// units and treasury.
func seedPolities(m *world.Map, rules *ruleset.Ruleset, seed int64, majors, minors int) []*polity.Polity {
	rng := rand.New(rand.NewSource(seed + 300))
	total := majors + minors
	capitals := world.PlaceCapitals(m, seed, total, 6)
	if len(capitals) < total {
		total = len(capitals)
		if majors > total {
			majors = total
			minors = 0
		} else {
			minors = total - majors
		}
	}

	var polities []*polity.Polity
	var settlementID uint64
	var unitID uint64

	for i := 0; i < total; i++ {
		cap := capitals[i]
		id := polity.PolityID(i + 1)

		p := &polity.Polity{
			ID:        id,
			Kind:      polity.KindMajor,
			Treasury:  800 + int64(rng.Intn(5))*100,
			MaxSupply: 10,
		}

		if i < majors {
			p.Persona = polity.PersonaNames[i%len(polity.PersonaNames)]
			p.Traits = polity.TraitsForPersona(p.Persona)
			p.Name = fmt.Sprintf("Dominion of %s", cap.Name)
		} else {
			p.Kind = polity.KindMinor
			p.Name = minorNames[(i-majors)%len(minorNames)]
			p.Traits = polity.TraitsForPersona("")
			p.Treasury = 0
			p.Influence = make(map[polity.PolityID]int)
		}

		settlementID++
		capital := &polity.Settlement{
			ID:         settlementID,
			Name:       cap.Name,
			OwnerID:    id,
			Position:   cap.Coord,
			Population: 400 + uint32(rng.Intn(600)),
		}
		p.Settlements = append(p.Settlements, capital)

		// Claim the capital parcel and its first ring.
		claim(m, p, cap.Coord)
		for _, nc := range cap.Coord.Neighbors() {
			claim(m, p, nc)
		}

		// Reveal scouting range around the capital.
		radius := rules.Tuning.ClaimRadius + 1
		for q := cap.Coord.Q - radius; q <= cap.Coord.Q+radius; q++ {
			for r := cap.Coord.R - radius; r <= cap.Coord.R+radius; r++ {
				coord := world.HexCoord{Q: q, R: r}
				if world.Distance(cap.Coord, coord) <= radius && m.Get(coord) != nil {
					p.Reveal(coord)
				}
			}
		}

		// Starting garrison for majors.
		if p.Kind == polity.KindMajor {
			for _, unitType := range []string{"warrior", "scout"} {
				u, ok := rules.Units[unitType]
				if !ok {
					continue
				}
				unitID++
				p.Units = append(p.Units, &polity.Unit{
					ID:       unitID,
					Type:     u.ID,
					OwnerID:  id,
					Position: cap.Coord,
					Military: u.Military,
				})
			}
		}

		polities = append(polities, p)
	}

	return polities
}

// claim marks a parcel as owned by the polity and records its resource.
func claim(m *world.Map, p *polity.Polity, coord world.HexCoord) {
	parcel := m.Get(coord)
	if parcel == nil || !parcel.Claimable() {
		return
	}
	owner := uint64(p.ID)
	parcel.OwnerID = &owner
	p.AddResource(parcel.Resource)
	p.Reveal(coord)
}
