// Package ruleset provides the building and unit catalogs, cost and
// eligibility rules, and the tunable constants the treasury advisor
// consumes. Catalogs are code-defined with YAML overrides.
package ruleset

import (
	"fmt"

	"github.com/talgya/dominion/internal/polity"
)

// Building is one purchasable construction item.
type Building struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	// Cost in crowns. Zero means the building has no currency price and
	// can only be produced, never bought.
	Cost int64 `yaml:"cost"`

	// MinPopulation gates availability to sufficiently large settlements.
	MinPopulation uint32 `yaml:"min_population"`

	// Requires names a building that must already stand in the settlement.
	Requires string `yaml:"requires,omitempty"`
}

// UnitType is one recruitable unit kind.
type UnitType struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	// Cost in crowns; also the base cost used in upgrade pricing.
	Cost int64 `yaml:"cost"`

	// Military units count against supply and come from recruitment.
	Military bool `yaml:"military"`

	// Successor is the unit type this one modernizes into ("" = none).
	Successor string `yaml:"successor,omitempty"`

	// MinPopulation gates recruitment to sufficiently large settlements.
	MinPopulation uint32 `yaml:"min_population"`
}

// Ruleset bundles the catalogs and tuning for one simulation.
// Order slices fix catalog iteration order: scanners must produce identical
// opportunity lists for identical world state.
type Ruleset struct {
	Buildings     map[string]Building
	BuildingOrder []string
	Units         map[string]UnitType
	UnitOrder     []string
	Tuning        Tuning
}

// Default returns the stock ruleset.
func Default() *Ruleset {
	rs := &Ruleset{
		Buildings: make(map[string]Building),
		Units:     make(map[string]UnitType),
		Tuning:    DefaultTuning(),
	}
	for _, b := range defaultBuildings {
		rs.Buildings[b.ID] = b
		rs.BuildingOrder = append(rs.BuildingOrder, b.ID)
	}
	for _, u := range defaultUnits {
		rs.Units[u.ID] = u
		rs.UnitOrder = append(rs.UnitOrder, u.ID)
	}
	return rs
}

// Validate checks catalog integrity: positive costs where defined,
// successor references that resolve, and requirement references that resolve.
func (rs *Ruleset) Validate() error {
	for id, b := range rs.Buildings {
		if b.Cost < 0 {
			return fmt.Errorf("building %s: negative cost %d", id, b.Cost)
		}
		if b.Requires != "" {
			if _, ok := rs.Buildings[b.Requires]; !ok {
				return fmt.Errorf("building %s: unknown requirement %q", id, b.Requires)
			}
		}
	}
	for id, u := range rs.Units {
		if u.Cost <= 0 {
			return fmt.Errorf("unit %s: non-positive cost %d", id, u.Cost)
		}
		if u.Successor != "" {
			succ, ok := rs.Units[u.Successor]
			if !ok {
				return fmt.Errorf("unit %s: unknown successor %q", id, u.Successor)
			}
			if succ.Military != u.Military {
				return fmt.Errorf("unit %s: successor %s changes military flag", id, u.Successor)
			}
		}
	}
	return nil
}

// AvailableBuildings returns the buildings a settlement could start right
// now, in stable catalog order.
func (rs *Ruleset) AvailableBuildings(s *polity.Settlement) []Building {
	var out []Building
	for _, b := range rs.BuildingOrder {
		item, ok := rs.Buildings[b]
		if !ok {
			continue
		}
		if s.Has(item.ID) {
			continue
		}
		if s.Population < item.MinPopulation {
			continue
		}
		if item.Requires != "" && !s.Has(item.Requires) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// AvailableUnits returns the unit types a settlement could recruit right
// now, in stable catalog order.
func (rs *Ruleset) AvailableUnits(s *polity.Settlement) []UnitType {
	var out []UnitType
	for _, id := range rs.UnitOrder {
		u, ok := rs.Units[id]
		if !ok {
			continue
		}
		if s.Population < u.MinPopulation {
			continue
		}
		// Obsolete types (those with an ancestor replaced by a successor
		// chain) stay recruitable; modernization handles upgrades.
		out = append(out, u)
	}
	return out
}

// Successor returns the upgrade target for a unit type, or false if the
// type has no successor or is unknown.
func (rs *Ruleset) Successor(unitType string) (UnitType, bool) {
	u, ok := rs.Units[unitType]
	if !ok || u.Successor == "" {
		return UnitType{}, false
	}
	succ, ok := rs.Units[u.Successor]
	return succ, ok
}

// UpgradeCost prices the modernization of one unit type into its successor:
// the base-cost difference, floored at zero so a cheaper successor never
// refunds crowns.
func (rs *Ruleset) UpgradeCost(unitType string) (int64, bool) {
	u, ok := rs.Units[unitType]
	if !ok {
		return 0, false
	}
	succ, ok := rs.Successor(unitType)
	if !ok {
		return 0, false
	}
	cost := succ.Cost - u.Cost
	if cost < 0 {
		cost = 0
	}
	return cost, true
}

// ParcelCost prices a territory claim. Cost grows with distance from the
// claiming settlement and with the polity's era.
func (rs *Ruleset) ParcelCost(distance, era int) int64 {
	t := rs.Tuning
	cost := t.ParcelBaseCost + int64(distance)*t.ParcelRingCost
	for i := 0; i < era; i++ {
		cost = cost * int64(100+t.ParcelEraPct) / 100
	}
	return cost
}
