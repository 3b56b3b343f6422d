// pkg/hexmap/layout.go
package hexmap

import (
	"encoding/json"
	"fmt"
)

// regionJSON mirrors one entry of the map editor export.
type regionJSON struct {
	Type          RegionType   `json:"type"`
	AvailableFish FishSchedule `json:"availableFishIds"`
	Coordinates   []Hex        `json:"coordinates"`
}

// MarshalRegions кодирует регионы в формат экспорта редактора
func MarshalRegions(regions []Region) ([]byte, error) {
	out := make([]regionJSON, 0, len(regions))
	for _, r := range regions {
		entry := regionJSON{
			Type:          r.Type,
			AvailableFish: r.AvailableFish,
			Coordinates:   r.Coordinates,
		}
		if entry.AvailableFish.Day == nil {
			entry.AvailableFish.Day = []int{}
		}
		if entry.AvailableFish.Night == nil {
			entry.AvailableFish.Night = []int{}
		}
		out = append(out, entry)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal regions: %w", err)
	}
	return data, nil
}

// UnmarshalRegions разбирает экспорт редактора. Неизвестный тип региона — ошибка.
func UnmarshalRegions(data []byte) ([]Region, error) {
	var raw []regionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal regions: %w", err)
	}
	regions := make([]Region, 0, len(raw))
	for i, r := range raw {
		if !r.Type.Valid() {
			return nil, fmt.Errorf("region %d: invalid region type %d", i, int(r.Type))
		}
		regions = append(regions, Region{
			Type:          r.Type,
			AvailableFish: r.AvailableFish,
			Coordinates:   r.Coordinates,
		})
	}
	return regions, nil
}
