// Package advisor is the treasury allocation engine: once per decision
// cycle it ranks the five spending categories for a polity, scans each for
// concrete opportunities, and greedily executes purchases while budget
// remains.
package advisor

// Category is one of the five fixed spending domains. The set is closed.
// Declaration order doubles as the tie-break order when ranked weights are
// equal, so it must not be rearranged.
type Category uint8

const (
	CategoryRecruitment Category = iota
	CategoryInfluence
	CategoryConstruction
	CategoryExpansion
	CategoryModernization

	NumCategories = 5
)

// String returns the category's name.
func (c Category) String() string {
	switch c {
	case CategoryRecruitment:
		return "recruitment"
	case CategoryInfluence:
		return "influence"
	case CategoryConstruction:
		return "construction"
	case CategoryExpansion:
		return "expansion"
	case CategoryModernization:
		return "modernization"
	}
	return "unknown"
}
