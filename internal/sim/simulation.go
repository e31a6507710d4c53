// Simulation ties the world, polities, and treasury advisor together and
// runs them each decision cycle.
package sim

import (
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/talgya/dominion/internal/advisor"
	"github.com/talgya/dominion/internal/polity"
	"github.com/talgya/dominion/internal/ruleset"
	"github.com/talgya/dominion/internal/treasury"
	"github.com/talgya/dominion/internal/world"
)

// Event is a notable occurrence in the simulation.
type Event struct {
	Cycle       uint64         `json:"cycle"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Meta        map[string]any `json:"meta,omitempty"`
}

// Simulation holds the complete simulation state and wires systems together.
type Simulation struct {
	World    *world.Map
	Rules    *ruleset.Ruleset
	Polities []*polity.Polity
	Events   []Event
	Reports  []*treasury.AllocationReport // Reports from the most recent cycle
	LastTick uint64                       // Most recent cycle processed

	// OnReport, when set, receives each allocation report as it is produced.
	OnReport func(*treasury.AllocationReport)
}

// NewSimulation creates a Simulation from generated components.
func NewSimulation(m *world.Map, rules *ruleset.Ruleset, polities []*polity.Polity) *Simulation {
	return &Simulation{
		World:    m,
		Rules:    rules,
		Polities: polities,
	}
}

// EmitEvent records a notable occurrence.
func (s *Simulation) EmitEvent(e Event) {
	s.Events = append(s.Events, e)
}

// Majors returns the full AI players, in declaration order.
func (s *Simulation) Majors() []*polity.Polity {
	var out []*polity.Polity
	for _, p := range s.Polities {
		if p.Kind == polity.KindMajor {
			out = append(out, p)
		}
	}
	return out
}

// RunCycle runs one decision cycle: accrue income, then let each major
// polity allocate its treasury, in declaration order. Each polity reads and
// mutates only its own treasury, settlements, and units.
func (s *Simulation) RunCycle(cycle uint64) {
	s.LastTick = cycle
	s.Reports = s.Reports[:0]

	s.accrueIncome()

	for _, p := range s.Majors() {
		deps := &advisor.Deps{
			Rules:  s.Rules,
			World:  s.World,
			Rivals: s.rivalsOf(p),
			Cycle:  cycle,
			Notify: func(category, description string, meta map[string]any) {
				s.EmitEvent(Event{
					Cycle:       cycle,
					Description: description,
					Category:    category,
					Meta:        meta,
				})
			},
		}

		report := advisor.Allocate(p, deps)
		s.Reports = append(s.Reports, report)
		if s.OnReport != nil {
			s.OnReport(report)
		}

		slog.Info("cycle report",
			"cycle", cycle,
			"polity", p.Name,
			"persona", p.Persona,
			"transactions", len(report.Transactions),
			"spent", humanize.Comma(report.Spent()),
			"treasury", humanize.Comma(p.Treasury),
			"military", p.MilitaryCount(),
			"supply_cap", p.MaxSupply,
		)
	}

	// Trim old events to prevent unbounded growth (keep last 1000).
	if len(s.Events) > 1000 {
		s.Events = s.Events[len(s.Events)-1000:]
	}
}

// rivalsOf returns every other polity, majors and minors alike. The
// influence scanner filters to minors itself.
func (s *Simulation) rivalsOf(p *polity.Polity) []*polity.Polity {
	var out []*polity.Polity
	for _, other := range s.Polities {
		if other.ID != p.ID {
			out = append(out, other)
		}
	}
	return out
}

// accrueIncome tops up each polity's treasury from its settlements.
// Puppets pay half; razing settlements pay nothing.
func (s *Simulation) accrueIncome() {
	for _, p := range s.Polities {
		var income int64
		for _, st := range p.Settlements {
			if st.Razing {
				continue
			}
			base := int64(st.Population)/20 + 10
			if st.Puppet {
				base /= 2
			}
			income += base
		}
		p.Treasury += income
	}
}
