// Capital placement — finds suitable founding locations for polity settlements.
package world

import (
	"math/rand"
	"sort"
)

// CapitalSeed holds the parameters for an initial settlement placement.
type CapitalSeed struct {
	Coord HexCoord
	Score float64 // Founding desirability
	Name  string
}

// PlaceCapitals finds founding locations for count settlements on the map,
// enforcing a minimum spacing. Returns seeds sorted by desirability.
func PlaceCapitals(m *Map, seed int64, count, minDist int) []CapitalSeed {
	rng := rand.New(rand.NewSource(seed + 200))

	// Score every land parcel, walking coordinates in fixed order so the
	// result is reproducible for a given seed.
	type scored struct {
		coord HexCoord
		score float64
	}
	var candidates []scored

	for q := -m.Radius; q <= m.Radius; q++ {
		for r := -m.Radius; r <= m.Radius; r++ {
			coord := HexCoord{Q: q, R: r}
			p := m.Get(coord)
			if p == nil || p.Terrain == TerrainOcean || p.Terrain == TerrainCoast {
				continue
			}
			s := foundingScore(m, coord, p)
			if s > 0 {
				candidates = append(candidates, scored{coord, s})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	var seeds []CapitalSeed
	for _, c := range candidates {
		if len(seeds) >= count {
			break
		}
		if tooClose(c.coord, seeds, minDist) {
			continue
		}
		seeds = append(seeds, CapitalSeed{Coord: c.coord, Score: c.score})
	}

	names := generateNames(rng, len(seeds))
	for i := range seeds {
		seeds[i].Name = names[i]
	}

	return seeds
}

// foundingScore evaluates how desirable a parcel is for founding a settlement.
// Prefers fertile flatland with varied, resource-bearing surroundings.
func foundingScore(m *Map, coord HexCoord, p *Parcel) float64 {
	score := 0.0

	switch p.Terrain {
	case TerrainPlains:
		score += 3.0
	case TerrainForest:
		score += 2.0
	case TerrainHills:
		score += 1.5
	case TerrainDesert, TerrainTundra:
		score += 0.5
	default:
		return 0
	}

	terrainTypes := make(map[Terrain]bool)
	for _, nc := range coord.Neighbors() {
		np := m.Get(nc)
		if np == nil {
			continue
		}
		if np.Terrain != TerrainOcean {
			terrainTypes[np.Terrain] = true
		}
		if np.Resource != ResourceNone {
			score += 0.8
		}
		if np.Wonder {
			score += 1.0
		}
	}
	score += float64(len(terrainTypes)) * 0.3

	return score
}

func tooClose(coord HexCoord, existing []CapitalSeed, minDist int) bool {
	for _, s := range existing {
		if Distance(coord, s.Coord) < minDist {
			return true
		}
	}
	return false
}

// generateNames produces procedural settlement names by combining syllables.
func generateNames(rng *rand.Rand, count int) []string {
	prefixes := []string{
		"Iron", "Green", "Ash", "Stone", "Mill", "Cross", "Black",
		"Silver", "Red", "White", "Dark", "Bright", "High", "Low",
		"Old", "New", "Far", "Deep", "Long", "Broad", "Gold", "Frost",
		"Storm", "Thorn", "Elm", "Oak", "Pine", "Copper", "River",
	}
	suffixes := []string{
		"haven", "ford", "hollow", "wick", "bridge", "gate", "keep",
		"stead", "wood", "field", "dale", "crest", "vale", "port",
		"town", "bury", "marsh", "well", "brook", "cliff", "moor",
		"ridge", "watch", "fall", "rest", "point", "reach", "helm",
	}

	used := make(map[string]bool)
	names := make([]string, 0, count)

	for len(names) < count {
		name := prefixes[rng.Intn(len(prefixes))] + suffixes[rng.Intn(len(suffixes))]
		if !used[name] {
			used[name] = true
			names = append(names, name)
		}
	}

	return names
}
