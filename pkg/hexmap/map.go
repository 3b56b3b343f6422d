// pkg/hexmap/map.go
package hexmap

import (
	"sort"
)

type Tile struct {
	Region RegionType
}

type HexMap struct {
	Tiles  map[Hex]Tile
	Radius int
	Port   Hex
}

// Region — группа гексов одного типа, как её сохраняет редактор карт
type Region struct {
	Type          RegionType
	AvailableFish FishSchedule
	Coordinates   []Hex
}

// FishSchedule lists fish ids available in a region by time of day.
type FishSchedule struct {
	Day   []int `json:"day"`
	Night []int `json:"night"`
}

// NewHexMap создаёт шестиугольную карту заданного радиуса из незакрашенных гексов
func NewHexMap(radius int) *HexMap {
	if radius < 0 {
		radius = 0
	}
	tiles := make(map[Hex]Tile)
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			tiles[Hex{q, r}] = Tile{Region: Unpainted}
		}
	}
	return &HexMap{
		Tiles:  tiles,
		Radius: radius,
		Port:   Hex{0, 0},
	}
}

func (hm *HexMap) Contains(hex Hex) bool {
	_, exists := hm.Tiles[hex]
	return exists
}

// RegionAt возвращает тип региона гекса; false, если гекса нет на карте
func (hm *HexMap) RegionAt(hex Hex) (RegionType, bool) {
	tile, exists := hm.Tiles[hex]
	if !exists {
		return Unpainted, false
	}
	return tile.Region, true
}

// Paint assigns region to every cell that lies on the map and returns how many were painted.
func (hm *HexMap) Paint(cells []Hex, region RegionType) int {
	painted := 0
	for _, hex := range cells {
		if tile, exists := hm.Tiles[hex]; exists {
			tile.Region = region
			hm.Tiles[hex] = tile
			painted++
		}
	}
	return painted
}

// Erase снимает регион с гексов
func (hm *HexMap) Erase(cells []Hex) int {
	return hm.Paint(cells, Unpainted)
}

// FillUnpainted красит все незакрашенные гексы в region
func (hm *HexMap) FillUnpainted(region RegionType) int {
	filled := 0
	for hex, tile := range hm.Tiles {
		if tile.Region == Unpainted {
			tile.Region = region
			hm.Tiles[hex] = tile
			filled++
		}
	}
	return filled
}

// ApplyRegions paints every region of the layout onto the map.
// Cells outside the map are skipped.
func (hm *HexMap) ApplyRegions(regions []Region) {
	for _, region := range regions {
		hm.Paint(region.Coordinates, region.Type)
	}
}

// Regions группирует закрашенные гексы по типу региона.
// Порядок детерминирован: по типу, внутри — по (Q, R).
func (hm *HexMap) Regions() []Region {
	byType := make(map[RegionType][]Hex)
	for hex, tile := range hm.Tiles {
		if tile.Region == Unpainted {
			continue
		}
		byType[tile.Region] = append(byType[tile.Region], hex)
	}

	var regions []Region
	for _, t := range AllRegionTypes {
		cells, ok := byType[t]
		if !ok {
			continue
		}
		SortHexes(cells)
		regions = append(regions, Region{Type: t, Coordinates: cells})
	}
	return regions
}

// SortedHexes returns every hex of the map ordered by (Q, R).
func (hm *HexMap) SortedHexes() []Hex {
	hexes := make([]Hex, 0, len(hm.Tiles))
	for hex := range hm.Tiles {
		hexes = append(hexes, hex)
	}
	SortHexes(hexes)
	return hexes
}

// SortHexes sorts hexes in place by Q, then R.
func SortHexes(hexes []Hex) {
	sort.Slice(hexes, func(i, j int) bool {
		if hexes[i].Q != hexes[j].Q {
			return hexes[i].Q < hexes[j].Q
		}
		return hexes[i].R < hexes[j].R
	})
}

// IsPassable — по гексу можно плыть хоть на каком-нибудь судне
func (hm *HexMap) IsPassable(hex Hex) bool {
	if tile, exists := hm.Tiles[hex]; exists {
		return WaterRegions.Contains(tile.Region)
	}
	return false
}

// Navigable returns a Validator accepting on-map hexes whose region is in supported.
func (hm *HexMap) Navigable(supported RegionSet) Validator {
	return func(hex Hex) bool {
		tile, exists := hm.Tiles[hex]
		return exists && supported.Contains(tile.Region)
	}
}

func (hm *HexMap) GetHexesInRange(center Hex, radius int) []Hex {
	var result []Hex
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			hex := center.Add(Hex{Q: q, R: r})
			if hm.Contains(hex) {
				result = append(result, hex)
			}
		}
	}
	return result
}

// Corners возвращает шесть угловых гексов внешнего кольца
func (hm *HexMap) Corners() []Hex {
	return []Hex{
		{hm.Radius, 0}, {0, hm.Radius}, {-hm.Radius, hm.Radius},
		{-hm.Radius, 0}, {0, -hm.Radius}, {hm.Radius, -hm.Radius},
	}
}
