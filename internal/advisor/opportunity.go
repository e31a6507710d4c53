package advisor

import (
	"fmt"

	"github.com/talgya/dominion/internal/polity"
	"github.com/talgya/dominion/internal/ruleset"
	"github.com/talgya/dominion/internal/world"
)

// Opportunity is one concrete, costed, eligibility-checked spend candidate.
// Scanners verify eligibility at creation time; the struct is immutable
// once produced. Which target fields are set depends on the category.
type Opportunity struct {
	Category Category
	Cost     int64

	Settlement *polity.Settlement // construction, recruitment, expansion
	Building   ruleset.Building   // construction
	UnitType   ruleset.UnitType   // recruitment
	Unit       *polity.Unit       // modernization
	Rival      *polity.Polity     // influence
	Parcel     *world.Parcel      // expansion
}

// TargetLabel describes the opportunity's target for reports and logs.
func (o Opportunity) TargetLabel() string {
	switch o.Category {
	case CategoryConstruction:
		return fmt.Sprintf("%s in %s", o.Building.Name, o.Settlement.Name)
	case CategoryRecruitment:
		return fmt.Sprintf("%s in %s", o.UnitType.Name, o.Settlement.Name)
	case CategoryInfluence:
		return fmt.Sprintf("gift to %s", o.Rival.Name)
	case CategoryExpansion:
		return fmt.Sprintf("parcel (%d,%d) for %s", o.Parcel.Coord.Q, o.Parcel.Coord.R, o.Settlement.Name)
	case CategoryModernization:
		return fmt.Sprintf("upgrade %s", o.Unit.Type)
	}
	return "unknown"
}

// NotifyFunc receives a best-effort notification after each executed
// transaction. Failures (including panics) never abort allocation.
type NotifyFunc func(category, description string, meta map[string]any)

// Deps bundles the external collaborators one allocation run reads and
// mutates through. The advisor owns none of them.
type Deps struct {
	Rules  *ruleset.Ruleset
	World  *world.Map
	Rivals []*polity.Polity // Known rival polities; minors are gift targets
	Cycle  uint64
	Notify NotifyFunc // Optional; may be nil
}

// notify invokes the hook, absorbing panics so a broken observer cannot
// break the allocation loop.
func (d *Deps) notify(category, description string, meta map[string]any) {
	if d.Notify == nil {
		return
	}
	defer func() { _ = recover() }()
	d.Notify(category, description, meta)
}
