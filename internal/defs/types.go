// internal/defs/types.go
package defs

import (
	"encoding/json"

	"rising-tides/pkg/hexmap"
)

// ShipDefinition describes a ship type as loaded from JSON.
type ShipDefinition struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	Speed                float64             `json:"speed"`
	SupportedRegionTypes []hexmap.RegionType `json:"supportedRegionTypes"`
}

// Regions возвращает набор регионов, по которым ходит судно
func (d ShipDefinition) Regions() hexmap.RegionSet {
	return hexmap.NewRegionSet(d.SupportedRegionTypes...)
}

// MapDefinition describes a hand-painted map.
type MapDefinition struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Radius  int             `json:"radius"`
	Regions json.RawMessage `json:"regions"`
	// Fill, если задан, закрашивает все оставшиеся гексы (как режим заливки в редакторе)
	Fill hexmap.RegionType `json:"fill,omitempty"`
}
