// pkg/hexmap/hex.go
package hexmap

import (
	"rising-tides/pkg/utils"
)

// DefaultHexSize используется, когда размер гекса не задан или некорректен.
const DefaultHexSize = 1.0

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Point — точка в мировом пространстве (плоскость XZ, высота задаётся снаружи)
type Point struct {
	X, Z float64
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Z: p.Z + o.Z} }

// Sub returns p - o.
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Z: p.Z - o.Z} }

// Scale multiplies both components by f.
func (p Point) Scale(f float64) Point { return Point{X: p.X * f, Z: p.Z * f} }

// DistanceTo returns the euclidean distance between two points.
func (p Point) DistanceTo(o Point) float64 { return utils.Hypot(o.X-p.X, o.Z-p.Z) }

// NeighborDirections defines the 6 possible directions from a hex, starting from East and going counter-clockwise.
// This order is also the tie-break order of FindPath, so it must not change.
var NeighborDirections = []Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// HexToWorld конвертирует осевые координаты в мировые (pointy top ориентация)
func HexToWorld(q, r int, hexSize float64) Point {
	if hexSize <= 0 {
		hexSize = DefaultHexSize
	}
	return Point{
		X: hexSize * Sqrt3 * (float64(q) + float64(r)/2),
		Z: hexSize * 1.5 * float64(r),
	}
}

// ToWorld — то же, что HexToWorld, в форме метода
func (h Hex) ToWorld(hexSize float64) Point {
	return HexToWorld(h.Q, h.R, hexSize)
}

// WorldToHex конвертирует мировые координаты в ближайший гекс
func WorldToHex(p Point, hexSize float64) Hex {
	if hexSize <= 0 {
		hexSize = DefaultHexSize
	}
	q := (Sqrt3/3*p.X - 1.0/3*p.Z) / hexSize
	r := (2.0 / 3 * p.Z) / hexSize
	return axialRound(q, r)
}

// Neighbors возвращает существующих соседей гекса
func (h Hex) Neighbors(hm *HexMap) []Hex {
	allNeighbors := h.AllPossibleNeighbors()
	validNeighbors := make([]Hex, 0, 6)
	for _, n := range allNeighbors {
		if _, exists := hm.Tiles[n]; exists {
			validNeighbors = append(validNeighbors, n)
		}
	}
	return validNeighbors
}

// AllPossibleNeighbors возвращает всех возможных соседей гекса в порядке NeighborDirections
func (h Hex) AllPossibleNeighbors() []Hex {
	neighbors := make([]Hex, len(NeighborDirections))
	for i, d := range NeighborDirections {
		neighbors[i] = h.Add(d)
	}
	return neighbors
}

// IsNeighbor reports whether other is one of the six hexes adjacent to h.
func (h Hex) IsNeighbor(other Hex) bool {
	d := other.Subtract(h)
	for _, dir := range NeighborDirections {
		if d == dir {
			return true
		}
	}
	return false
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Subtract возвращает разность двух гексов
func (h Hex) Subtract(other Hex) Hex {
	return Hex{
		Q: h.Q - other.Q,
		R: h.R - other.R,
	}
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (utils.Abs(dq) + utils.Abs(dq+dr) + utils.Abs(dr)) / 2
}

// Distance is the package-level form of Hex.Distance.
func Distance(a, b Hex) int {
	return a.Distance(b)
}
