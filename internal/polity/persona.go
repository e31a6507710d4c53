// Personas — preset trait bundles that give each AI polity a recognizable
// spending temperament.
package polity

// Persona constants — the 6 stock temperaments.
const (
	PersonaWarlord   = "Warlord"
	PersonaMagnate   = "Magnate"
	PersonaSage      = "Sage"
	PersonaPioneer   = "Pioneer"
	PersonaDiplomat  = "Diplomat"
	PersonaCustodian = "Custodian"
)

// personaTraits maps persona name to its trait preset.
var personaTraits = map[string]TraitWeights{
	PersonaWarlord: {
		TraitMilitaristic: 9,
		TraitDiplomatic:   2,
		TraitCommercial:   3,
		TraitIndustrial:   5,
		TraitScientific:   3,
		TraitCultural:     2,
		TraitExpansive:    6,
	},
	PersonaMagnate: {
		TraitMilitaristic: 3,
		TraitDiplomatic:   6,
		TraitCommercial:   9,
		TraitIndustrial:   6,
		TraitScientific:   5,
		TraitCultural:     4,
		TraitExpansive:    4,
	},
	PersonaSage: {
		TraitMilitaristic: 2,
		TraitDiplomatic:   5,
		TraitCommercial:   4,
		TraitIndustrial:   6,
		TraitScientific:   9,
		TraitCultural:     7,
		TraitExpansive:    3,
	},
	PersonaPioneer: {
		TraitMilitaristic: 4,
		TraitDiplomatic:   3,
		TraitCommercial:   5,
		TraitIndustrial:   5,
		TraitScientific:   4,
		TraitCultural:     3,
		TraitExpansive:    9,
	},
	PersonaDiplomat: {
		TraitMilitaristic: 2,
		TraitDiplomatic:   9,
		TraitCommercial:   7,
		TraitIndustrial:   4,
		TraitScientific:   5,
		TraitCultural:     6,
		TraitExpansive:    2,
	},
	PersonaCustodian: {
		TraitMilitaristic: 5,
		TraitDiplomatic:   5,
		TraitCommercial:   5,
		TraitIndustrial:   7,
		TraitScientific:   6,
		TraitCultural:     8,
		TraitExpansive:    3,
	},
}

// PersonaNames lists the stock personas in a stable order.
var PersonaNames = []string{
	PersonaWarlord, PersonaMagnate, PersonaSage,
	PersonaPioneer, PersonaDiplomat, PersonaCustodian,
}

// TraitsForPersona returns a copy of the preset for the named persona,
// or a balanced default when the persona is unknown.
func TraitsForPersona(name string) TraitWeights {
	if preset, ok := personaTraits[name]; ok {
		return preset.Clone()
	}
	return TraitWeights{
		TraitMilitaristic: 5,
		TraitDiplomatic:   5,
		TraitCommercial:   5,
		TraitIndustrial:   5,
		TraitScientific:   5,
		TraitCultural:     5,
		TraitExpansive:    5,
	}
}
