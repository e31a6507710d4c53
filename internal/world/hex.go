// Package world provides the hex grid, terrain, and parcel data structures.
// Uses axial coordinates (q, r) for the hex grid.
package world

// HexCoord represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// Terrain types for parcels.
type Terrain uint8

const (
	TerrainPlains  Terrain = iota // Fertile flatland — settlement heartland
	TerrainForest                 // Timber and furs
	TerrainHills                  // Mining country
	TerrainCoast                  // Shallow water, fishing
	TerrainDesert                 // Harsh, occasional oil and incense
	TerrainTundra                 // Cold margin
	TerrainOcean                  // Impassable, never claimable
)

// TerrainName returns a display name for a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainPlains:
		return "plains"
	case TerrainForest:
		return "forest"
	case TerrainHills:
		return "hills"
	case TerrainCoast:
		return "coast"
	case TerrainDesert:
		return "desert"
	case TerrainTundra:
		return "tundra"
	case TerrainOcean:
		return "ocean"
	}
	return "unknown"
}

// Resource enumerates the resources a parcel can carry.
type Resource uint8

const (
	ResourceNone    Resource = iota
	ResourceGrain            // Bonus — food
	ResourceFish             // Bonus — food
	ResourceSilk             // Luxury
	ResourceGems             // Luxury
	ResourceIncense          // Luxury
	ResourceIron             // Strategic
	ResourceHorses           // Strategic
	ResourceOil              // Strategic
)

// ResourceClass groups resources by how a polity values them.
type ResourceClass uint8

const (
	ClassNone      ResourceClass = iota
	ClassBonus                   // Plentiful yield boosters
	ClassLuxury                  // One copy satisfies a polity
	ClassStrategic               // Stockpiled for military use
)

// Class returns the resource's class.
func (r Resource) Class() ResourceClass {
	switch r {
	case ResourceGrain, ResourceFish:
		return ClassBonus
	case ResourceSilk, ResourceGems, ResourceIncense:
		return ClassLuxury
	case ResourceIron, ResourceHorses, ResourceOil:
		return ClassStrategic
	}
	return ClassNone
}

// ResourceName returns a display name for a resource.
func ResourceName(r Resource) string {
	switch r {
	case ResourceGrain:
		return "grain"
	case ResourceFish:
		return "fish"
	case ResourceSilk:
		return "silk"
	case ResourceGems:
		return "gems"
	case ResourceIncense:
		return "incense"
	case ResourceIron:
		return "iron"
	case ResourceHorses:
		return "horses"
	case ResourceOil:
		return "oil"
	}
	return "none"
}

// Parcel represents a single claimable tile on the world map.
type Parcel struct {
	Coord   HexCoord `json:"coord"`
	Terrain Terrain  `json:"terrain"`

	// Resource on this parcel, if any.
	Resource Resource `json:"resource"`

	// Wonder marks a unique natural feature (at most a handful per world).
	Wonder bool `json:"wonder"`

	// OwnerID is the polity that has claimed this parcel, nil if unclaimed.
	OwnerID *uint64 `json:"owner_id,omitempty"`
}

// Claimable reports whether the parcel is land and currently unowned.
func (p *Parcel) Claimable() bool {
	return p.Terrain != TerrainOcean && p.OwnerID == nil
}

// HexNeighborDirections defines the six neighbor offsets in axial coordinates.
var HexNeighborDirections = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent hex coordinates in fixed direction order.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for i, dir := range HexNeighborDirections {
		result[i] = HexCoord{Q: h.Q + dir.Q, R: h.R + dir.R}
	}
	return result
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	ds := a.S() - b.S()
	if dq < 0 {
		dq = -dq
	}
	if dr < 0 {
		dr = -dr
	}
	if ds < 0 {
		ds = -ds
	}
	// Max of the three absolute differences in cube coordinates.
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}
