// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"rising-tides/pkg/hexmap"
)

// ShipLibrary is a map to hold all ship definitions, keyed by their ID.
var ShipLibrary map[string]ShipDefinition

// LoadShipDefinitions reads the ship configuration file and populates the ShipLibrary.
func LoadShipDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read ship definitions file: %w", err)
	}

	ships, err := ParseShipDefinitions(file)
	if err != nil {
		return err
	}

	ShipLibrary = ships
	fmt.Printf("Loaded %d ship definitions\n", len(ShipLibrary))
	return nil
}

// ParseShipDefinitions decodes and validates a JSON array of ships.
func ParseShipDefinitions(data []byte) (map[string]ShipDefinition, error) {
	var shipDefs []ShipDefinition
	if err := json.Unmarshal(data, &shipDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ship definitions: %w", err)
	}

	ships := make(map[string]ShipDefinition, len(shipDefs))
	for i, def := range shipDefs {
		if def.ID == "" {
			return nil, fmt.Errorf("ship definition %d has no id", i)
		}
		if def.Speed <= 0 {
			return nil, fmt.Errorf("ship %s: speed must be positive, got %v", def.ID, def.Speed)
		}
		if def.Regions() == 0 {
			return nil, fmt.Errorf("ship %s: no supported region types", def.ID)
		}
		ships[def.ID] = def
	}
	return ships, nil
}

// DefaultShips возвращает встроенный набор судов на случай, если файла нет
func DefaultShips() map[string]ShipDefinition {
	defs := []ShipDefinition{
		{
			ID: "DINGHY", Name: "Dinghy", Speed: 1.0,
			SupportedRegionTypes: []hexmap.RegionType{hexmap.Port, hexmap.Coastal, hexmap.Shallow},
		},
		{
			ID: "TRAWLER", Name: "Trawler", Speed: 1.5,
			SupportedRegionTypes: []hexmap.RegionType{
				hexmap.Port, hexmap.Coastal, hexmap.Shallow, hexmap.Oceanic, hexmap.Mangrove, hexmap.Reef,
			},
		},
		{
			ID: "ICEBREAKER", Name: "Icebreaker", Speed: 1.2,
			SupportedRegionTypes: []hexmap.RegionType{
				hexmap.Port, hexmap.Coastal, hexmap.Shallow, hexmap.Oceanic, hexmap.Abyssal, hexmap.Icy,
			},
		},
		{
			ID: "SUBMERSIBLE", Name: "Deep Submersible", Speed: 0.8,
			SupportedRegionTypes: hexmap.WaterRegions.Types(),
		},
	}
	ships := make(map[string]ShipDefinition, len(defs))
	for _, def := range defs {
		ships[def.ID] = def
	}
	return ships
}

// LoadMapDefinition reads a hand-painted map and builds the HexMap for it.
func LoadMapDefinition(path string) (*hexmap.HexMap, MapDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, MapDefinition{}, fmt.Errorf("failed to read map definition file: %w", err)
	}
	return ParseMapDefinition(file)
}

// ParseMapDefinition decodes a map definition and paints its regions.
func ParseMapDefinition(data []byte) (*hexmap.HexMap, MapDefinition, error) {
	var def MapDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, MapDefinition{}, fmt.Errorf("failed to unmarshal map definition: %w", err)
	}
	if def.Radius <= 0 {
		return nil, def, fmt.Errorf("map %q: radius must be positive, got %d", def.Name, def.Radius)
	}

	hm := hexmap.NewHexMap(def.Radius)
	if len(def.Regions) > 0 {
		regions, err := hexmap.UnmarshalRegions(def.Regions)
		if err != nil {
			return nil, def, fmt.Errorf("map %q: %w", def.Name, err)
		}
		hm.ApplyRegions(regions)
	}
	if def.Fill.Valid() {
		hm.FillUnpainted(def.Fill)
	}
	for _, region := range hm.Regions() {
		if region.Type == hexmap.Port {
			hm.Port = region.Coordinates[0]
			break
		}
	}
	return hm, def, nil
}
