package polity

// Trait identifies one personality axis of a polity.
type Trait uint8

const (
	TraitMilitaristic Trait = iota
	TraitDiplomatic
	TraitCommercial
	TraitIndustrial
	TraitScientific
	TraitCultural
	TraitExpansive
)

// TraitMax is the upper bound of the trait domain. Weights live in [0, TraitMax].
const TraitMax = 10.0

// TraitName returns a display name for a trait.
func TraitName(t Trait) string {
	switch t {
	case TraitMilitaristic:
		return "militaristic"
	case TraitDiplomatic:
		return "diplomatic"
	case TraitCommercial:
		return "commercial"
	case TraitIndustrial:
		return "industrial"
	case TraitScientific:
		return "scientific"
	case TraitCultural:
		return "cultural"
	case TraitExpansive:
		return "expansive"
	}
	return "unknown"
}

// TraitWeights maps traits to weights in [0, TraitMax].
// Immutable per polity per decision cycle.
type TraitWeights map[Trait]float64

// Get returns the weight for a trait, clamped into the valid domain.
// Missing traits read as 0.
func (w TraitWeights) Get(t Trait) float64 {
	v := w[t]
	if v < 0 {
		return 0
	}
	if v > TraitMax {
		return TraitMax
	}
	return v
}

// Clone returns an independent copy of the weights.
func (w TraitWeights) Clone() TraitWeights {
	out := make(TraitWeights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}
