// component/ship.go
package component

import "rising-tides/pkg/hexmap"

// Ship — какое судно у сущности и по каким регионам оно ходит
type Ship struct {
	DefID            string
	Name             string
	SupportedRegions hexmap.RegionSet
}

// CanSail reports whether the ship may enter the given region.
func (s *Ship) CanSail(region hexmap.RegionType) bool {
	return s.SupportedRegions.Contains(region)
}
