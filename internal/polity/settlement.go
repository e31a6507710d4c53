package polity

import "github.com/talgya/dominion/internal/world"

// SettlementID is a unique identifier for a settlement.
type SettlementID = uint64

// Settlement represents a population center owned by a polity.
type Settlement struct {
	ID       SettlementID   `json:"id"`
	Name     string         `json:"name"`
	OwnerID  PolityID       `json:"owner_id"`
	Position world.HexCoord `json:"position"`

	Population uint32 `json:"population"`

	// Puppet settlements are administered but not invested in.
	Puppet bool `json:"puppet"`
	// Razing settlements are being torn down and are skipped entirely.
	Razing bool `json:"razing"`

	// Built tracks completed buildings by catalog ID.
	Built map[string]bool `json:"built"`
}

// Productive reports whether the settlement is worth investing in.
func (s *Settlement) Productive() bool {
	return !s.Puppet && !s.Razing
}

// Has reports whether the settlement has completed the given building.
func (s *Settlement) Has(buildingID string) bool {
	return s.Built[buildingID]
}

// Complete records a finished building.
func (s *Settlement) Complete(buildingID string) {
	if s.Built == nil {
		s.Built = make(map[string]bool)
	}
	s.Built[buildingID] = true
}
