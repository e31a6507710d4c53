package polity

import "github.com/talgya/dominion/internal/world"

// UnitID is a unique identifier for a unit.
type UnitID = uint64

// Unit is a mobile piece owned by a polity. Type keys into the unit catalog.
type Unit struct {
	ID       UnitID         `json:"id"`
	Type     string         `json:"type"`
	OwnerID  PolityID       `json:"owner_id"`
	Position world.HexCoord `json:"position"`

	// Military units count against supply and qualify for modernization.
	Military bool `json:"military"`
}
