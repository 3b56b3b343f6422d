// internal/app/voyage.go
package app

import (
	"errors"
	"fmt"
	"log"

	"rising-tides/internal/component"
	"rising-tides/internal/config"
	"rising-tides/internal/defs"
	"rising-tides/internal/entity"
	"rising-tides/internal/event"
	"rising-tides/internal/system"
	"rising-tides/internal/types"
	"rising-tides/internal/utils"
	"rising-tides/pkg/curve"
	"rising-tides/pkg/hexmap"
)

var (
	ErrUnknownBoat  = errors.New("unknown boat")
	ErrNoRoute      = errors.New("no route")
	ErrNotNavigable = errors.New("hex is not navigable for this ship")
)

// Voyage связывает карту, лодки и систему движения.
// Внешний цикл отрисовки вызывает Update раз в кадр.
type Voyage struct {
	HexMap          *hexmap.HexMap
	ECS             *entity.ECS
	MotionSystem    *system.MotionSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Mode            curve.Mode
	HexSize         float64
	Samples         int
}

// NewVoyage initializes a voyage over the given map.
func NewVoyage(hexMap *hexmap.HexMap, rng *utils.PRNGService) *Voyage {
	if hexMap == nil {
		panic("hexMap cannot be nil")
	}
	if rng == nil {
		rng = utils.NewPRNGService(config.Seed)
	}

	mode, err := curve.ParseMode(config.DefaultCurveMode)
	if err != nil {
		log.Printf("Voyage: %v, falling back to spline", err)
		mode = curve.Spline
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	v := &Voyage{
		HexMap:          hexMap,
		ECS:             ecs,
		MotionSystem:    system.NewMotionSystem(ecs, system.NewMotionController(), dispatcher),
		EventDispatcher: dispatcher,
		Rng:             rng,
		Mode:            mode,
		HexSize:         config.HexSize,
		Samples:         config.SplineSamples,
	}

	listener := &voyageEventListener{voyage: v}
	dispatcher.Subscribe(event.BoatDeparted, listener)
	dispatcher.Subscribe(event.BoatArrived, listener)
	return v
}

// SpawnBoat puts a new boat of the given ship type at rest on hex at.
func (v *Voyage) SpawnBoat(ship defs.ShipDefinition, at hexmap.Hex) (types.EntityID, error) {
	regions := ship.Regions()
	if !v.HexMap.Navigable(regions)(at) {
		return 0, fmt.Errorf("spawn %s at %v: %w", ship.ID, at, ErrNotNavigable)
	}

	id := v.ECS.NewEntity()
	v.ECS.Motions[id] = component.NewMotion(at, v.HexSize, ship.Speed)
	v.ECS.Bobbings[id] = &component.Bobbing{}
	v.ECS.Ships[id] = &component.Ship{
		DefID:            ship.ID,
		Name:             ship.Name,
		SupportedRegions: regions,
	}
	return id, nil
}

// TravelTo finds a route for boat id to goal and starts moving along it.
// The returned path excludes the starting hex. An empty path means the boat
// is already there and nothing changes.
func (v *Voyage) TravelTo(id types.EntityID, goal hexmap.Hex) ([]hexmap.Hex, error) {
	motion, hasMotion := v.ECS.Motions[id]
	ship, hasShip := v.ECS.Ships[id]
	if !hasMotion || !hasShip {
		return nil, fmt.Errorf("boat %d: %w", id, ErrUnknownBoat)
	}

	isValid := v.HexMap.Navigable(ship.SupportedRegions)
	start := v.startHex(motion, isValid)

	path := hexmap.FindPath(start, goal, isValid)
	if path == nil {
		log.Printf("Voyage: boat %d found no route from %v to %v", id, start, goal)
		v.EventDispatcher.Dispatch(event.Event{
			Type: event.RouteNotFound,
			Data: event.RouteNotFoundData{Entity: id, From: start, Target: goal},
		})
		return nil, fmt.Errorf("boat %d from %v to %v: %w", id, start, goal, ErrNoRoute)
	}

	c, ok := curve.BuildWithSamples(motion.Position, path, v.HexSize, v.Mode, v.Samples)
	if !ok {
		return path, nil
	}
	v.MotionSystem.Controller().AssignPath(motion, c, path)
	v.EventDispatcher.Dispatch(event.Event{
		Type: event.BoatDeparted,
		Data: event.BoatDepartedData{Entity: id, From: start, Target: goal, Path: path},
	})
	return path, nil
}

// startHex — гекс, из которого ищется путь: под лодкой, если она в пути и он допустим
func (v *Voyage) startHex(motion *component.Motion, isValid hexmap.Validator) hexmap.Hex {
	if !motion.IsMoving {
		return motion.Coord
	}
	under := hexmap.WorldToHex(motion.Position, v.HexSize)
	if isValid(under) {
		return under
	}
	return motion.Coord
}

// Update продвигает симуляцию на deltaTime секунд
func (v *Voyage) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	v.MotionSystem.Update(deltaTime)
}

// Sample returns the latest state of boat id for rendering.
func (v *Voyage) Sample(id types.EntityID) (system.Sample, bool) {
	motion, ok := v.ECS.Motions[id]
	if !ok {
		return system.Sample{}, false
	}
	return system.SampleOf(motion), true
}

// BobOffset возвращает вертикальное смещение покачивания лодки
func (v *Voyage) BobOffset(id types.EntityID) float64 {
	if bob, ok := v.ECS.Bobbings[id]; ok {
		return bob.Offset
	}
	return 0
}

// RandomDestination picks a random hex the boat's ship may enter, other than its current one.
// The hex is not guaranteed to be reachable.
func (v *Voyage) RandomDestination(id types.EntityID) (hexmap.Hex, bool) {
	motion, hasMotion := v.ECS.Motions[id]
	ship, hasShip := v.ECS.Ships[id]
	if !hasMotion || !hasShip {
		return hexmap.Hex{}, false
	}
	isValid := v.HexMap.Navigable(ship.SupportedRegions)
	var candidates []hexmap.Hex
	for _, hex := range v.HexMap.SortedHexes() {
		if hex != motion.Coord && isValid(hex) {
			candidates = append(candidates, hex)
		}
	}
	return v.Rng.Pick(candidates)
}

// Autopilot sends an idle boat to a random reachable destination.
// It gives up after attempts unreachable picks.
func (v *Voyage) Autopilot(id types.EntityID, attempts int) bool {
	motion, ok := v.ECS.Motions[id]
	if !ok || motion.IsMoving {
		return false
	}
	for i := 0; i < attempts; i++ {
		goal, ok := v.RandomDestination(id)
		if !ok {
			return false
		}
		if path, err := v.TravelTo(id, goal); err == nil && len(path) > 0 {
			return true
		}
	}
	return false
}

type voyageEventListener struct {
	voyage *Voyage
}

func (l *voyageEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.BoatDeparted:
		if data, ok := e.Data.(event.BoatDepartedData); ok {
			log.Printf("Boat %d departed %v for %v (%d hexes)", data.Entity, data.From, data.Target, len(data.Path))
		}
	case event.BoatArrived:
		if data, ok := e.Data.(event.BoatArrivedData); ok {
			log.Printf("Boat %d arrived at %v", data.Entity, data.Coord)
		}
	}
}
