package app

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"rising-tides/internal/config"
	"rising-tides/internal/defs"
	"rising-tides/internal/event"
	"rising-tides/internal/utils"
	"rising-tides/pkg/hexmap"
)

var dinghy = defs.ShipDefinition{
	ID:                   "DINGHY",
	Name:                 "Dinghy",
	Speed:                1,
	SupportedRegionTypes: []hexmap.RegionType{hexmap.Port, hexmap.Coastal, hexmap.Shallow},
}

// newTestMap: мелководье радиуса 3, порт в центре, остров к востоку и пятно глубокой воды на западе
func newTestMap() *hexmap.HexMap {
	hm := hexmap.NewHexMap(3)
	hm.FillUnpainted(hexmap.Shallow)
	hm.Paint([]hexmap.Hex{{Q: 0, R: 0}}, hexmap.Port)
	hm.Paint([]hexmap.Hex{{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 1, R: 1}}, hexmap.Terrain)
	hm.Paint([]hexmap.Hex{{Q: -3, R: 0}}, hexmap.Oceanic)
	return hm
}

type recorder struct {
	events []event.Event
}

func (r *recorder) subscribe(d *event.Dispatcher, types ...event.EventType) {
	for _, t := range types {
		d.Subscribe(t, event.ListenerFunc(func(e event.Event) {
			r.events = append(r.events, e)
		}))
	}
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestSpawnBoat(t *testing.T) {
	v := NewVoyage(newTestMap(), utils.NewPRNGService(1))

	id, err := v.SpawnBoat(dinghy, hexmap.Hex{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	sample, ok := v.Sample(id)
	if !ok || sample.Coord != (hexmap.Hex{}) || sample.Position != (hexmap.Point{}) {
		t.Errorf("Expected boat resting at the port, got %+v (%v)", sample, ok)
	}

	tests := []struct {
		name string
		at   hexmap.Hex
	}{
		{"Land", hexmap.Hex{Q: 1, R: 0}},
		{"Too deep", hexmap.Hex{Q: -3, R: 0}},
		{"Off map", hexmap.Hex{Q: 9, R: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := v.SpawnBoat(dinghy, tt.at); !errors.Is(err, ErrNotNavigable) {
				t.Errorf("Expected ErrNotNavigable, got %v", err)
			}
		})
	}
}

func TestTravelToErrors(t *testing.T) {
	v := NewVoyage(newTestMap(), utils.NewPRNGService(1))
	rec := &recorder{}
	rec.subscribe(v.EventDispatcher, event.RouteNotFound, event.BoatDeparted)

	if _, err := v.TravelTo(999, hexmap.Hex{Q: 0, R: 1}); !errors.Is(err, ErrUnknownBoat) {
		t.Errorf("Expected ErrUnknownBoat, got %v", err)
	}

	id, _ := v.SpawnBoat(dinghy, hexmap.Hex{})
	path, err := v.TravelTo(id, hexmap.Hex{Q: -3, R: 0})
	if !errors.Is(err, ErrNoRoute) || path != nil {
		t.Errorf("Expected ErrNoRoute and nil path, got %v, %v", path, err)
	}
	if rec.count(event.RouteNotFound) != 1 || rec.count(event.BoatDeparted) != 0 {
		t.Errorf("Expected a single RouteNotFound event, got %+v", rec.events)
	}
	if data := rec.events[0].Data.(event.RouteNotFoundData); data.Entity != id || data.Target != (hexmap.Hex{Q: -3, R: 0}) {
		t.Errorf("Unexpected event data %+v", data)
	}

	motion := v.ECS.Motions[id]
	if motion.IsMoving {
		t.Errorf("Expected boat to stay idle after a failed route")
	}
}

func TestTravelToSameHex(t *testing.T) {
	v := NewVoyage(newTestMap(), utils.NewPRNGService(1))
	rec := &recorder{}
	rec.subscribe(v.EventDispatcher, event.BoatDeparted)

	id, _ := v.SpawnBoat(dinghy, hexmap.Hex{})
	path, err := v.TravelTo(id, hexmap.Hex{})
	if err != nil || path == nil || len(path) != 0 {
		t.Errorf("Expected empty path and no error, got %v, %v", path, err)
	}
	if v.ECS.Motions[id].IsMoving || rec.count(event.BoatDeparted) != 0 {
		t.Errorf("Expected boat to stay idle without a departure")
	}
}

func TestTravelToArrives(t *testing.T) {
	v := NewVoyage(newTestMap(), utils.NewPRNGService(1))
	rec := &recorder{}
	rec.subscribe(v.EventDispatcher, event.BoatDeparted, event.BoatArrived)

	id, _ := v.SpawnBoat(dinghy, hexmap.Hex{})
	goal := hexmap.Hex{Q: 2, R: 0}
	path, err := v.TravelTo(id, goal)
	if err != nil {
		t.Fatalf("Expected a route, got %v", err)
	}
	if len(path) < hexmap.Distance(hexmap.Hex{}, goal) || path[len(path)-1] != goal {
		t.Fatalf("Expected a path ending at %v, got %v", goal, path)
	}
	for _, hex := range path {
		if region, _ := v.HexMap.RegionAt(hex); region == hexmap.Terrain {
			t.Errorf("Expected path to avoid land, went through %v", hex)
		}
	}
	if rec.count(event.BoatDeparted) != 1 {
		t.Fatalf("Expected a departure event, got %+v", rec.events)
	}

	for i := 0; i < 2000 && rec.count(event.BoatArrived) == 0; i++ {
		v.Update(0.05)
	}
	if rec.count(event.BoatArrived) != 1 {
		t.Fatalf("Expected the boat to arrive, got %+v", rec.events)
	}
	sample, _ := v.Sample(id)
	want := goal.ToWorld(v.HexSize)
	if sample.Coord != goal || math.Abs(sample.Position.X-want.X) > 1e-9 || math.Abs(sample.Position.Z-want.Z) > 1e-9 {
		t.Errorf("Expected boat resting at %v, got %+v", goal, sample)
	}
}

func TestTravelToWhileMoving(t *testing.T) {
	v := NewVoyage(newTestMap(), utils.NewPRNGService(1))
	id, _ := v.SpawnBoat(dinghy, hexmap.Hex{})

	if _, err := v.TravelTo(id, hexmap.Hex{Q: -2, R: 0}); err != nil {
		t.Fatalf("Expected a route, got %v", err)
	}
	for i := 0; i < 10; i++ {
		v.Update(0.05)
	}
	before := v.ECS.Motions[id].Position

	goal := hexmap.Hex{Q: 0, R: 2}
	if _, err := v.TravelTo(id, goal); err != nil {
		t.Fatalf("Expected a new route mid-voyage, got %v", err)
	}
	motion := v.ECS.Motions[id]
	if !motion.IsMoving || *motion.Target != goal || motion.Progress != 0 {
		t.Errorf("Expected the new route to replace the old one, got %+v", motion)
	}
	if start := motion.Curve.Start(); start != before {
		t.Errorf("Expected new curve to start at the boat, got %+v vs %+v", start, before)
	}
}

func TestUpdateClampsDelta(t *testing.T) {
	v := NewVoyage(newTestMap(), utils.NewPRNGService(1))
	v.Update(100)
	if math.Abs(v.ECS.GameTime-config.MaxDeltaTime) > 1e-12 {
		t.Errorf("Expected game time %f, got %f", config.MaxDeltaTime, v.ECS.GameTime)
	}
	v.Update(-1)
	if math.Abs(v.ECS.GameTime-config.MaxDeltaTime) > 1e-12 {
		t.Errorf("Expected negative delta to be ignored, got %f", v.ECS.GameTime)
	}
}

func TestAutopilot(t *testing.T) {
	v := NewVoyage(newTestMap(), utils.NewPRNGService(5))
	id, _ := v.SpawnBoat(dinghy, hexmap.Hex{})

	if !v.Autopilot(id, 8) {
		t.Fatalf("Expected autopilot to pick a destination")
	}
	motion := v.ECS.Motions[id]
	if !motion.IsMoving || motion.Target == nil || *motion.Target == (hexmap.Hex{}) {
		t.Errorf("Expected boat under way to a new hex, got %+v", motion)
	}
	if v.Autopilot(id, 8) {
		t.Errorf("Expected autopilot to leave a moving boat alone")
	}
	if v.Autopilot(999, 8) {
		t.Errorf("Expected autopilot to ignore unknown boats")
	}
}

func TestLoadOrGenerateMap(t *testing.T) {
	rng := utils.NewPRNGService(11)

	generated, err := LoadOrGenerateMap(filepath.Join(t.TempDir(), "missing.json"), rng)
	if err != nil {
		t.Fatalf("Expected a generated map, got %v", err)
	}
	if generated.Radius != config.MapRadius {
		t.Errorf("Expected radius %d, got %d", config.MapRadius, generated.Radius)
	}

	loaded, err := LoadOrGenerateMap("../../assets/data/maps/harbor_bay.json", rng)
	if err != nil {
		t.Fatalf("Expected harbor map to load, got %v", err)
	}
	if region, _ := loaded.RegionAt(hexmap.Hex{Q: 2, R: -1}); region != hexmap.Terrain {
		t.Errorf("Expected land at {2 -1}, got %v", region)
	}

	broken := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(broken, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrGenerateMap(broken, rng); err == nil {
		t.Errorf("Expected a parse error for a broken file")
	}
}

func TestLoadShipsFallback(t *testing.T) {
	if err := LoadShips(filepath.Join(t.TempDir(), "missing.json")); err != nil {
		t.Fatalf("Expected fallback to built-in ships, got %v", err)
	}
	if len(defs.ShipLibrary) != 4 {
		t.Errorf("Expected 4 built-in ships, got %d", len(defs.ShipLibrary))
	}
	if _, err := Ship("DINGHY"); err != nil {
		t.Errorf("Expected DINGHY to exist, got %v", err)
	}
	if _, err := Ship("GALLEON"); err == nil {
		t.Errorf("Expected error for unknown ship")
	}
}
