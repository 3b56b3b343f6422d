// internal/app/setup.go
package app

import (
	"errors"
	"fmt"
	"log"
	"os"

	"rising-tides/internal/config"
	"rising-tides/internal/defs"
	"rising-tides/internal/utils"
	"rising-tides/pkg/hexmap"
)

// LoadOrGenerateMap загружает карту из path, а если файла нет — генерирует новую.
// Ошибка разбора существующего файла не скрывается.
func LoadOrGenerateMap(path string, rng *utils.PRNGService) (*hexmap.HexMap, error) {
	hm, def, err := defs.LoadMapDefinition(path)
	if err == nil {
		log.Printf("Loaded map %q (radius %d)", def.Name, def.Radius)
		return hm, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	hm = hexmap.NewHexMap(config.MapRadius)
	hexmap.Generate(hm, rng)
	log.Printf("Map file %s not found, generated radius %d map", path, config.MapRadius)
	return hm, nil
}

// LoadShips заполняет defs.ShipLibrary из файла или встроенными судами
func LoadShips(path string) error {
	err := defs.LoadShipDefinitions(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	defs.ShipLibrary = defs.DefaultShips()
	log.Printf("Ship file %s not found, using %d built-in ships", path, len(defs.ShipLibrary))
	return nil
}

// Ship returns the definition with the given id from defs.ShipLibrary.
func Ship(id string) (defs.ShipDefinition, error) {
	def, ok := defs.ShipLibrary[id]
	if !ok {
		return defs.ShipDefinition{}, fmt.Errorf("ship definition %q not found", id)
	}
	return def, nil
}
