package world

import "fmt"

// Map holds the complete hex grid world state.
type Map struct {
	Parcels map[HexCoord]*Parcel `json:"-"` // All parcels keyed by coordinate
	Radius  int                  `json:"radius"`
}

// NewMap creates an empty map with the given radius.
// A hex grid of radius R contains parcels where max(|q|, |r|, |s|) <= R.
func NewMap(radius int) *Map {
	return &Map{
		Parcels: make(map[HexCoord]*Parcel),
		Radius:  radius,
	}
}

// Get returns the parcel at the given coordinate, or nil if out of bounds.
func (m *Map) Get(coord HexCoord) *Parcel {
	return m.Parcels[coord]
}

// Set places a parcel at its coordinate.
func (m *Map) Set(p *Parcel) {
	m.Parcels[p.Coord] = p
}

// InBounds returns true if the coordinate is within the map radius.
func (m *Map) InBounds(coord HexCoord) bool {
	q := coord.Q
	r := coord.R
	s := coord.S()
	if q < 0 {
		q = -q
	}
	if r < 0 {
		r = -r
	}
	if s < 0 {
		s = -s
	}
	max := q
	if r > max {
		max = r
	}
	if s > max {
		max = s
	}
	return max <= m.Radius
}

// ParcelCount returns the total number of parcels in the map.
func (m *Map) ParcelCount() int {
	return len(m.Parcels)
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(radius=%d, parcels=%d)", m.Radius, m.ParcelCount())
}
