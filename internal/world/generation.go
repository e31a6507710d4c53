// World generation using layered simplex noise.
// Generates elevation, rainfall, and temperature layers, derives terrain,
// then scatters resources and a handful of natural wonders.
package world

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds world generation parameters.
type GenConfig struct {
	Radius      int     // Hex grid radius
	Seed        int64   // Random seed (0 = random)
	SeaLevel    float64 // Elevation threshold for ocean (0.0–1.0)
	NumWonders  int     // Natural wonders to place
	ResourceOdd float64 // Chance a suitable parcel carries a resource
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Radius:      16,
		Seed:        0,
		SeaLevel:    0.25,
		NumWonders:  4,
		ResourceOdd: 0.18,
	}
}

// SmallTestConfig returns a tiny world for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Radius:      5,
		Seed:        42,
		SeaLevel:    0.30,
		NumWonders:  1,
		ResourceOdd: 0.3,
	}
}

// Generate creates a complete world map with terrain, resources, and wonders.
func Generate(cfg GenConfig) *Map {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Three noise generators for independent layers.
	elevNoise := opensimplex.NewNormalized(seed)
	rainNoise := opensimplex.NewNormalized(seed + 1)
	tempNoise := opensimplex.NewNormalized(seed + 2)

	m := NewMap(cfg.Radius)
	rng := rand.New(rand.NewSource(seed + 100))

	// Generate each parcel within radius, in fixed coordinate order so the
	// rng stream (and therefore resource placement) is reproducible.
	for q := -cfg.Radius; q <= cfg.Radius; q++ {
		for r := -cfg.Radius; r <= cfg.Radius; r++ {
			s := -q - r
			aq, ar, as := abs(q), abs(r), abs(s)
			maxCoord := aq
			if ar > maxCoord {
				maxCoord = ar
			}
			if as > maxCoord {
				maxCoord = as
			}
			if maxCoord > cfg.Radius {
				continue
			}

			coord := HexCoord{Q: q, R: r}

			// Hex axial → cartesian for noise sampling.
			x := float64(q) + float64(r)*0.5
			y := float64(r) * math.Sqrt(3.0) / 2.0

			elev := octaveNoise(elevNoise, x, y, 4, 0.08, 0.5)
			rain := octaveNoise(rainNoise, x, y, 3, 0.06, 0.5)
			temp := octaveNoise(tempNoise, x, y, 3, 0.05, 0.5)

			// Continental shaping: reduce elevation near edges for ocean border.
			distFromCenter := math.Sqrt(x*x+y*y) / float64(cfg.Radius)
			edgeFalloff := 1.0 - math.Pow(distFromCenter, 3.5)
			if edgeFalloff < 0 {
				edgeFalloff = 0
			}
			elev *= edgeFalloff

			// Temperature decreases toward the poles and with elevation.
			temp = temp*0.6 + (1.0-math.Abs(y)/float64(cfg.Radius))*0.3 + (1.0-elev)*0.1

			terrain := deriveTerrain(elev, rain, temp, cfg)

			parcel := &Parcel{
				Coord:    coord,
				Terrain:  terrain,
				Resource: rollResource(terrain, cfg.ResourceOdd, rng),
			}

			m.Set(parcel)
		}
	}

	placeWonders(m, cfg.NumWonders, rng)

	return m
}

// deriveTerrain determines terrain type from environmental parameters.
func deriveTerrain(elev, rain, temp float64, cfg GenConfig) Terrain {
	if elev < cfg.SeaLevel {
		return TerrainOcean
	}
	if elev < cfg.SeaLevel+0.05 {
		return TerrainCoast
	}
	if temp < 0.25 {
		return TerrainTundra
	}
	if rain < 0.25 && temp > 0.5 {
		return TerrainDesert
	}
	if elev > 0.6 {
		return TerrainHills
	}
	if rain > 0.45 {
		return TerrainForest
	}
	return TerrainPlains
}

// rollResource picks at most one resource appropriate to the terrain.
func rollResource(terrain Terrain, odds float64, rng *rand.Rand) Resource {
	if rng.Float64() >= odds {
		return ResourceNone
	}

	pick := func(choices ...Resource) Resource {
		return choices[rng.Intn(len(choices))]
	}

	switch terrain {
	case TerrainPlains:
		return pick(ResourceGrain, ResourceHorses, ResourceSilk)
	case TerrainForest:
		return pick(ResourceSilk, ResourceGems)
	case TerrainHills:
		return pick(ResourceIron, ResourceGems)
	case TerrainCoast:
		return ResourceFish
	case TerrainDesert:
		return pick(ResourceOil, ResourceIncense)
	case TerrainTundra:
		return pick(ResourceOil, ResourceIron)
	}
	return ResourceNone
}

// placeWonders marks a handful of land parcels as unique natural features.
func placeWonders(m *Map, count int, rng *rand.Rand) {
	// Collect candidates in deterministic order (map iteration is not stable).
	var candidates []HexCoord
	for q := -m.Radius; q <= m.Radius; q++ {
		for r := -m.Radius; r <= m.Radius; r++ {
			coord := HexCoord{Q: q, R: r}
			p := m.Get(coord)
			if p == nil || p.Terrain == TerrainOcean || p.Terrain == TerrainCoast {
				continue
			}
			if p.Resource == ResourceNone {
				candidates = append(candidates, coord)
			}
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if count > len(candidates) {
		count = len(candidates)
	}
	for _, coord := range candidates[:count] {
		m.Get(coord).Wonder = true
	}
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// TerrainCounts returns a summary of terrain type distribution.
func TerrainCounts(m *Map) map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, p := range m.Parcels {
		counts[p.Terrain]++
	}
	return counts
}
