package polity

import (
	"testing"

	"github.com/talgya/dominion/internal/world"
)

func TestMilitaryCount(t *testing.T) {
	p := &Polity{
		Units: []*Unit{
			{ID: 1, Type: "warrior", Military: true},
			{ID: 2, Type: "worker"},
			{ID: 3, Type: "archer", Military: true},
		},
	}
	if got := p.MilitaryCount(); got != 2 {
		t.Errorf("military count = %d, want 2", got)
	}
}

func TestResourceTracking(t *testing.T) {
	p := &Polity{}

	if p.ResourceCount(world.ResourceIron) != 0 {
		t.Error("fresh polity should hold nothing")
	}
	p.AddResource(world.ResourceIron)
	p.AddResource(world.ResourceIron)
	p.AddResource(world.ResourceNone) // never counted
	if got := p.ResourceCount(world.ResourceIron); got != 2 {
		t.Errorf("iron count = %d, want 2", got)
	}
	if p.ResourceCount(world.ResourceNone) != 0 {
		t.Error("ResourceNone should never be stocked")
	}
}

func TestRevealAndCanSee(t *testing.T) {
	p := &Polity{}
	c := world.HexCoord{Q: 2, R: -1}

	if p.CanSee(c) {
		t.Error("unscouted parcel visible")
	}
	p.Reveal(c)
	if !p.CanSee(c) {
		t.Error("revealed parcel not visible")
	}
}

func TestRaiseInfluenceCap(t *testing.T) {
	minor := &Polity{ID: 10, Kind: KindMinor}

	if minor.InfluenceWith(1) != 0 {
		t.Error("unknown standing should read 0")
	}
	minor.RaiseInfluence(1, 30)
	if got := minor.InfluenceWith(1); got != 30 {
		t.Errorf("standing = %d, want 30", got)
	}
	minor.RaiseInfluence(1, 90)
	if got := minor.InfluenceWith(1); got != 100 {
		t.Errorf("standing = %d, want the 100 cap", got)
	}
}

func TestSettlementProductive(t *testing.T) {
	s := &Settlement{ID: 1, Name: "Haven"}
	if !s.Productive() {
		t.Error("ordinary settlement should be productive")
	}
	s.Puppet = true
	if s.Productive() {
		t.Error("puppet should not be productive")
	}
	s.Puppet = false
	s.Razing = true
	if s.Productive() {
		t.Error("razing settlement should not be productive")
	}
}

func TestTraitWeightsGetClamps(t *testing.T) {
	w := TraitWeights{
		TraitMilitaristic: 15,
		TraitDiplomatic:   -3,
	}
	if got := w.Get(TraitMilitaristic); got != TraitMax {
		t.Errorf("overweight trait = %v, want %v", got, TraitMax)
	}
	if got := w.Get(TraitDiplomatic); got != 0 {
		t.Errorf("negative trait = %v, want 0", got)
	}
	if got := w.Get(TraitExpansive); got != 0 {
		t.Errorf("missing trait = %v, want 0", got)
	}
}

func TestPersonaPresets(t *testing.T) {
	allTraits := []Trait{
		TraitMilitaristic, TraitDiplomatic, TraitCommercial,
		TraitIndustrial, TraitScientific, TraitCultural, TraitExpansive,
	}
	for _, name := range PersonaNames {
		w := TraitsForPersona(name)
		for _, tr := range allTraits {
			v := w.Get(tr)
			if v <= 0 || v > TraitMax {
				t.Errorf("%s: %s = %v, outside (0, %v]", name, TraitName(tr), v, TraitMax)
			}
		}
	}

	if TraitsForPersona("Warlord").Get(TraitMilitaristic) <= TraitsForPersona("Sage").Get(TraitMilitaristic) {
		t.Error("a warlord should out-soldier a sage")
	}
}

func TestTraitsForPersonaReturnsCopies(t *testing.T) {
	a := TraitsForPersona(PersonaWarlord)
	a[TraitMilitaristic] = 1
	b := TraitsForPersona(PersonaWarlord)
	if b.Get(TraitMilitaristic) == 1 {
		t.Error("mutating one persona copy leaked into the preset")
	}
}

func TestTraitsForPersonaUnknownIsBalanced(t *testing.T) {
	w := TraitsForPersona("Nonesuch")
	if w.Get(TraitMilitaristic) != 5 || w.Get(TraitExpansive) != 5 {
		t.Errorf("unknown persona should be balanced, got %v", w)
	}
}
