// internal/state/voyage_state.go
package state

import (
	"fmt"
	"log"
	"sort"

	"rising-tides/internal/app"
	"rising-tides/internal/config"
	"rising-tides/internal/defs"
	"rising-tides/internal/types"
	"rising-tides/pkg/curve"
	"rising-tides/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const autopilotAttempts = 8

// VoyageState — лодки плавают по карте на автопилоте
type VoyageState struct {
	sm       *StateMachine
	voyage   *app.Voyage
	renderer *render.HexRenderer
	boats    []types.EntityID
	selected int
	manual   bool
}

func NewVoyageState(sm *StateMachine, voyage *app.Voyage) *VoyageState {
	renderer := render.NewHexRenderer(voyage.HexMap, voyage.HexSize, config.RenderScale, config.ScreenWidth, config.ScreenHeight)
	return &VoyageState{
		sm:       sm,
		voyage:   voyage,
		renderer: renderer,
	}
}

// Enter спускает на воду по одной лодке каждого типа в порту
func (s *VoyageState) Enter() {
	ids := make([]string, 0, len(defs.ShipLibrary))
	for id := range defs.ShipLibrary {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		boat, err := s.voyage.SpawnBoat(defs.ShipLibrary[id], s.voyage.HexMap.Port)
		if err != nil {
			log.Printf("VoyageState: %v", err)
			continue
		}
		s.boats = append(s.boats, boat)
	}
}

func (s *VoyageState) Update(deltaTime float64) {
	s.handleInput()
	s.voyage.Update(deltaTime)
	for i, id := range s.boats {
		// Выбранной лодкой в ручном режиме управляет игрок
		if s.manual && i == s.selected {
			continue
		}
		s.voyage.Autopilot(id, autopilotAttempts)
	}
}

func (s *VoyageState) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(s.boats) > 0 {
		s.selected = (s.selected + 1) % len(s.boats)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.manual = !s.manual
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if s.voyage.Mode == curve.Spline {
			s.voyage.Mode = curve.Linear
		} else {
			s.voyage.Mode = curve.Spline
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && len(s.boats) > 0 {
		goal := s.renderer.ScreenToHex(ebiten.CursorPosition())
		if !s.voyage.HexMap.Contains(goal) {
			return
		}
		s.manual = true
		if _, err := s.voyage.TravelTo(s.boats[s.selected], goal); err != nil {
			log.Printf("VoyageState: %v", err)
		}
	}
}

func (s *VoyageState) Draw(screen *ebiten.Image) {
	views := make([]render.BoatView, 0, len(s.boats))
	control := "autopilot"
	if s.manual {
		control = "manual"
	}
	hud := []string{
		fmt.Sprintf("mode: %s  boats: %d  control: %s", s.voyage.Mode, len(s.boats), control),
		"Tab: next boat  M: curve mode  Space: manual/autopilot  click: sail",
	}
	for i, id := range s.boats {
		sample, ok := s.voyage.Sample(id)
		if !ok {
			continue
		}
		ship := s.voyage.ECS.Ships[id]
		views = append(views, render.BoatView{
			Label:       ship.Name,
			Selected:    i == s.selected,
			Position:    sample.Position,
			Orientation: sample.Orientation,
			Bob:         s.voyage.BobOffset(id),
			Curve:       s.voyage.ECS.Motions[id].Curve,
		})
		hud = append(hud, fmt.Sprintf("%-16s hex %d,%d  progress %.2f", ship.Name, sample.Coord.Q, sample.Coord.R, sample.Progress))
	}
	s.renderer.Draw(screen, views, hud)
}

func (s *VoyageState) Exit() {
	for _, id := range s.boats {
		s.voyage.ECS.RemoveEntity(id)
	}
	s.boats = nil
	s.selected = 0
}
