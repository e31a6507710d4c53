package ruleset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRuleset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ruleset.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesAndAppends(t *testing.T) {
	path := writeRuleset(t, `
tuning:
  supply_target_base: 0.3
  supply_target_slope: 0.6
  recruit_boost: 1.2
  recruit_damp: 0.8
  gift_large_threshold: 25
  gift_large_cost: 600
  gift_large_gain: 35
  gift_small_threshold: 45
  gift_small_cost: 300
  gift_small_gain: 20
  score_wonder: 60
  score_new_luxury: 30
  score_scarce_strategic: 40
  score_stocked: 20
  strategic_stock_floor: 3
  claim_radius: 4
  parcel_base_cost: 50
  parcel_ring_cost: 25
  parcel_era_pct: 25
buildings:
  - id: granary
    name: Great Granary
    cost: 220
  - id: bathhouse
    name: Bathhouse
    cost: 210
units:
  - id: catapult
    name: Catapult
    cost: 380
    military: true
`)

	rs, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if rs.Tuning.GiftLargeCost != 600 || rs.Tuning.ClaimRadius != 4 {
		t.Errorf("tuning not applied: %+v", rs.Tuning)
	}
	if b := rs.Buildings["granary"]; b.Cost != 220 || b.Name != "Great Granary" {
		t.Errorf("granary override not applied: %+v", b)
	}
	if _, ok := rs.Buildings["bathhouse"]; !ok {
		t.Error("bathhouse not appended")
	}
	if rs.BuildingOrder[len(rs.BuildingOrder)-1] != "bathhouse" {
		t.Errorf("new building should append to the order, got %v", rs.BuildingOrder)
	}
	if u := rs.Units["catapult"]; u.Cost != 380 || !u.Military {
		t.Errorf("catapult not appended: %+v", u)
	}

	// Overriding an existing ID must not duplicate it in the order.
	seen := 0
	for _, id := range rs.BuildingOrder {
		if id == "granary" {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("granary appears %d times in the order", seen)
	}
}

func TestLoadWithoutTuningKeepsDefaults(t *testing.T) {
	path := writeRuleset(t, "buildings:\n  - id: bathhouse\n    name: Bathhouse\n    cost: 210\n")

	rs, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if rs.Tuning != DefaultTuning() {
		t.Errorf("tuning changed without an override: %+v", rs.Tuning)
	}
}

func TestLoadRejectsInvalidCatalog(t *testing.T) {
	path := writeRuleset(t, "units:\n  - id: catapult\n    name: Catapult\n    cost: 380\n    military: true\n    successor: nonesuch\n")

	if _, err := Load(path); err == nil {
		t.Error("broken successor reference should fail to load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should error")
	}
}
