// pkg/hexmap/region.go
package hexmap

import (
	"fmt"
	"strings"
)

// RegionType — тип морского региона, к которому относится гекс
type RegionType int

const (
	Unpainted RegionType = iota
	Port
	Terrain
	Coastal
	Shallow
	Oceanic
	Abyssal
	Hadal
	Volcanic
	Mangrove
	Icy
	Reef
)

var regionNames = map[RegionType]string{
	Unpainted: "unpainted",
	Port:      "port",
	Terrain:   "terrain",
	Coastal:   "coastal",
	Shallow:   "shallow",
	Oceanic:   "oceanic",
	Abyssal:   "abyssal",
	Hadal:     "hadal",
	Volcanic:  "volcanic",
	Mangrove:  "mangrove",
	Icy:       "icy",
	Reef:      "reef",
}

// AllRegionTypes lists every paintable region in id order.
var AllRegionTypes = []RegionType{
	Port, Terrain, Coastal, Shallow, Oceanic, Abyssal, Hadal, Volcanic, Mangrove, Icy, Reef,
}

func (t RegionType) String() string {
	if name, ok := regionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("region(%d)", int(t))
}

// Valid reports whether t is one of the paintable region types.
func (t RegionType) Valid() bool {
	return t >= Port && t <= Reef
}

// ParseRegionType возвращает тип региона по имени
func ParseRegionType(name string) (RegionType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range regionNames {
		if n == name && t != Unpainted {
			return t, nil
		}
	}
	return Unpainted, fmt.Errorf("unknown region type %q", name)
}

// RegionSet — набор типов регионов (битовая маска)
type RegionSet uint32

// NewRegionSet builds a set from the given types. Invalid types are ignored.
func NewRegionSet(types ...RegionType) RegionSet {
	var s RegionSet
	for _, t := range types {
		if t.Valid() {
			s |= 1 << uint(t)
		}
	}
	return s
}

// Contains reports whether t is in the set.
func (s RegionSet) Contains(t RegionType) bool {
	if !t.Valid() {
		return false
	}
	return s&(1<<uint(t)) != 0
}

// Types returns the members of the set in id order.
func (s RegionSet) Types() []RegionType {
	var out []RegionType
	for _, t := range AllRegionTypes {
		if s.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// WaterRegions — все регионы, по которым в принципе можно плыть
var WaterRegions = NewRegionSet(Port, Coastal, Shallow, Oceanic, Abyssal, Hadal, Volcanic, Mangrove, Icy, Reef)
