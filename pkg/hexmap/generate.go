// pkg/hexmap/generate.go
package hexmap

// WeightedRegion — запись таблицы взвешенного выбора региона
type WeightedRegion struct {
	Region RegionType
	Weight int
}

// Rand is the randomness Generate needs. utils.PRNGService satisfies it.
type Rand interface {
	Intn(n int) int
	ChooseWeighted(entries []WeightedRegion) RegionType
}

// islandRegions — чем становится остров
var islandRegions = []WeightedRegion{
	{Region: Terrain, Weight: 6},
	{Region: Mangrove, Weight: 2},
	{Region: Reef, Weight: 2},
}

// Generate процедурно раскрашивает карту: порт в центре, кольца глубины,
// острова и особые зоны в углах. Все гексы карты будут закрашены.
func Generate(hm *HexMap, rng Rand) {
	hm.paintDepthRings()

	exclusion := make(map[Hex]struct{})
	for _, hex := range hm.GetHexesInRange(hm.Port, 2) {
		exclusion[hex] = struct{}{}
	}

	attempts := hm.Radius
	for i := 0; i < attempts; i++ {
		section := hm.randomSection(rng)
		if section == nil || hm.sectionIntersectsExclusion(section, exclusion) {
			continue
		}
		hm.placeIsland(section, rng.ChooseWeighted(islandRegions))
	}

	hm.processCorners(rng, exclusion)
	hm.postProcessMap()
}

func (hm *HexMap) paintDepthRings() {
	shallowEdge := hm.Radius/4 + 1
	oceanicEdge := hm.Radius * 2 / 3
	for hex, tile := range hm.Tiles {
		d := hex.Distance(hm.Port)
		switch {
		case d == 0:
			tile.Region = Port
		case d == 1:
			tile.Region = Coastal
		case d <= shallowEdge:
			tile.Region = Shallow
		case d <= oceanicEdge:
			tile.Region = Oceanic
		case d < hm.Radius:
			tile.Region = Abyssal
		default:
			tile.Region = Hadal
		}
		hm.Tiles[hex] = tile
	}
}

// randomSection выбирает три соседних гекса: центр и два смежных направления
func (hm *HexMap) randomSection(rng Rand) []Hex {
	if hm.Radius < 3 {
		return nil
	}
	q := rng.Intn(2*hm.Radius+1) - hm.Radius
	r := rng.Intn(2*hm.Radius+1) - hm.Radius
	center := Hex{q, r}
	if !hm.Contains(center) {
		return nil
	}
	k := rng.Intn(len(NeighborDirections))
	section := []Hex{
		center,
		center.Add(NeighborDirections[k]),
		center.Add(NeighborDirections[(k+1)%len(NeighborDirections)]),
	}
	for _, hex := range section {
		if !hm.Contains(hex) {
			return nil
		}
	}
	return section
}

func (hm *HexMap) sectionIntersectsExclusion(section []Hex, exclusion map[Hex]struct{}) bool {
	for _, hex := range section {
		if _, excluded := exclusion[hex]; excluded {
			return true
		}
	}
	return false
}

// placeIsland красит секцию и откатывает изменения, если порт теряет связь с углами карты
func (hm *HexMap) placeIsland(section []Hex, region RegionType) bool {
	previous := make([]Tile, len(section))
	for i, hex := range section {
		previous[i] = hm.Tiles[hex]
	}
	hm.Paint(section, region)
	if hm.portReachesCorners() {
		return true
	}
	for i, hex := range section {
		hm.Tiles[hex] = previous[i]
	}
	return false
}

func (hm *HexMap) portReachesCorners() bool {
	for _, corner := range hm.Corners() {
		if !hm.IsPassable(corner) {
			continue
		}
		if AStar(hm.Port, corner, hm) == nil {
			return false
		}
	}
	return true
}

func (hm *HexMap) processCorners(rng Rand, exclusion map[Hex]struct{}) {
	for _, corner := range hm.Corners() {
		if _, excluded := exclusion[corner]; excluded {
			continue
		}
		if !hm.IsPassable(corner) {
			continue
		}
		action := rng.Intn(10)
		if action < 3 {
			hm.Paint(hm.GetHexesInRange(corner, 1), Icy)
		} else if action < 5 {
			hm.Paint([]Hex{corner}, Volcanic)
		}
	}
}

// postProcessMap: глубокая вода у берега острова становится прибрежной
func (hm *HexMap) postProcessMap() {
	var shore []Hex
	for hex, tile := range hm.Tiles {
		switch tile.Region {
		case Shallow, Oceanic, Abyssal, Hadal:
		default:
			continue
		}
		for _, n := range hex.Neighbors(hm) {
			if hm.Tiles[n].Region == Terrain {
				shore = append(shore, hex)
				break
			}
		}
	}
	hm.Paint(shore, Coastal)
}
