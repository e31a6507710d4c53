package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the numeric constants the treasury advisor runs on.
type Tuning struct {
	// Supply targeting for the recruitment priority adjustment.
	SupplyTargetBase  float64 `yaml:"supply_target_base"`  // 0.2
	SupplyTargetSlope float64 `yaml:"supply_target_slope"` // 0.7
	RecruitBoost      float64 `yaml:"recruit_boost"`       // ×1.1 when under-supplied
	RecruitDamp       float64 `yaml:"recruit_damp"`        // ×0.9 when at/over target

	// Tiered influence gifts toward minor polities.
	GiftLargeThreshold int   `yaml:"gift_large_threshold"` // influence < 20
	GiftLargeCost      int64 `yaml:"gift_large_cost"`      // 500 crowns
	GiftLargeGain      int   `yaml:"gift_large_gain"`      // influence gained
	GiftSmallThreshold int   `yaml:"gift_small_threshold"` // influence < 40
	GiftSmallCost      int64 `yaml:"gift_small_cost"`      // 250 crowns
	GiftSmallGain      int   `yaml:"gift_small_gain"`

	// Parcel desirability scoring.
	ScoreWonder          int `yaml:"score_wonder"`           // +50
	ScoreNewLuxury       int `yaml:"score_new_luxury"`       // +30
	ScoreScarceStrategic int `yaml:"score_scarce_strategic"` // +40
	ScoreStocked         int `yaml:"score_stocked"`          // +20
	StrategicStockFloor  int `yaml:"strategic_stock_floor"`  // ≤3 held counts as scarce

	// Territory claim pricing and reach.
	ClaimRadius    int   `yaml:"claim_radius"` // rings a settlement can claim into
	ParcelBaseCost int64 `yaml:"parcel_base_cost"`
	ParcelRingCost int64 `yaml:"parcel_ring_cost"`
	ParcelEraPct   int   `yaml:"parcel_era_pct"` // percent cost growth per era
}

// DefaultTuning returns the stock tuning constants.
func DefaultTuning() Tuning {
	return Tuning{
		SupplyTargetBase:  0.2,
		SupplyTargetSlope: 0.7,
		RecruitBoost:      1.1,
		RecruitDamp:       0.9,

		GiftLargeThreshold: 20,
		GiftLargeCost:      500,
		GiftLargeGain:      30,
		GiftSmallThreshold: 40,
		GiftSmallCost:      250,
		GiftSmallGain:      15,

		ScoreWonder:          50,
		ScoreNewLuxury:       30,
		ScoreScarceStrategic: 40,
		ScoreStocked:         20,
		StrategicStockFloor:  3,

		ClaimRadius:    3,
		ParcelBaseCost: 50,
		ParcelRingCost: 25,
		ParcelEraPct:   25,
	}
}

// fileOverrides is the on-disk shape: tuning plus optional catalog additions.
type fileOverrides struct {
	Tuning    *Tuning    `yaml:"tuning"`
	Buildings []Building `yaml:"buildings"`
	Units     []UnitType `yaml:"units"`
}

// Load reads a YAML ruleset file and applies it over the defaults.
// Catalog entries in the file replace same-ID defaults or append new ones.
func Load(path string) (*Ruleset, error) {
	rs := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fileOverrides
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("ruleset %s: %w", path, err)
	}

	if f.Tuning != nil {
		rs.Tuning = *f.Tuning
	}
	for _, b := range f.Buildings {
		if _, ok := rs.Buildings[b.ID]; !ok {
			rs.BuildingOrder = append(rs.BuildingOrder, b.ID)
		}
		rs.Buildings[b.ID] = b
	}
	for _, u := range f.Units {
		if _, ok := rs.Units[u.ID]; !ok {
			rs.UnitOrder = append(rs.UnitOrder, u.ID)
		}
		rs.Units[u.ID] = u
	}

	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("ruleset %s: %w", path, err)
	}
	return rs, nil
}
