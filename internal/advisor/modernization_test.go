package advisor

import (
	"testing"

	"github.com/talgya/dominion/internal/polity"
	"github.com/talgya/dominion/internal/world"
)

func TestScanModernizationOnlyUnitsWithSuccessors(t *testing.T) {
	rs := testRules()
	m := flatWorld(5)
	p := newMajor(1, 1000)
	p.Units = []*polity.Unit{
		{ID: 1, Type: "militia", OwnerID: p.ID, Military: true},
		{ID: 2, Type: "levy", OwnerID: p.ID, Military: true},
		{ID: 3, Type: "caravan", OwnerID: p.ID},
	}

	opps := scanModernization(p, testDeps(rs, m))

	if len(opps) != 1 {
		t.Fatalf("got %d opportunities, want 1", len(opps))
	}
	if opps[0].Unit.ID != 2 {
		t.Errorf("unit = %d, want the levy (2)", opps[0].Unit.ID)
	}
	// Halberdier 260 minus levy 180.
	if opps[0].Cost != 80 {
		t.Errorf("cost = %d, want 80", opps[0].Cost)
	}
}

func TestScanModernizationCheaperSuccessorIsFree(t *testing.T) {
	rs := testRules()
	levy := rs.Units["levy"]
	levy.Cost = 300 // now pricier than its 260-crown successor
	rs.Units["levy"] = levy

	m := flatWorld(5)
	p := newMajor(1, 1000)
	p.Units = []*polity.Unit{{ID: 1, Type: "levy", OwnerID: p.ID, Military: true}}

	opps := scanModernization(p, testDeps(rs, m))

	if len(opps) != 1 {
		t.Fatalf("got %d opportunities, want 1", len(opps))
	}
	if opps[0].Cost != 0 {
		t.Errorf("cost = %d, want 0 (never a refund)", opps[0].Cost)
	}
}

func TestScanModernizationKeepsDiscoveryOrder(t *testing.T) {
	rs := testRules()
	m := flatWorld(5)
	p := newMajor(1, 1000)
	p.Units = []*polity.Unit{
		{ID: 5, Type: "levy", OwnerID: p.ID, Military: true, Position: world.HexCoord{Q: 1}},
		{ID: 2, Type: "levy", OwnerID: p.ID, Military: true, Position: world.HexCoord{Q: 2}},
		{ID: 9, Type: "levy", OwnerID: p.ID, Military: true, Position: world.HexCoord{Q: 3}},
	}

	opps := scanModernization(p, testDeps(rs, m))

	want := []polity.UnitID{5, 2, 9}
	if len(opps) != len(want) {
		t.Fatalf("got %d opportunities, want %d", len(opps), len(want))
	}
	for i, id := range want {
		if opps[i].Unit.ID != id {
			t.Errorf("opps[%d].Unit.ID = %d, want %d", i, opps[i].Unit.ID, id)
		}
	}
}
