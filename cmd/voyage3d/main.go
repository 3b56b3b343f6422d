package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"sort"

	"rising-tides/internal/app"
	"rising-tides/internal/config"
	"rising-tides/internal/defs"
	"rising-tides/internal/types"
	"rising-tides/internal/ui"
	"rising-tides/internal/utils"
	"rising-tides/pkg/curve"
	"rising-tides/pkg/hexmap"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	screenWidth       = 1280
	screenHeight      = 720
	coordScale        = 10.0
	boatHeight        = 1.2
	autopilotAttempts = 8
)

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// pickHex пересекает луч из курсора с плоскостью воды; false, если луч уходит вверх
func pickHex(camera rl.Camera3D, hexMap *hexmap.HexMap) (hexmap.Hex, bool) {
	ray := rl.GetMouseRay(rl.GetMousePosition(), camera)
	if ray.Direction.Y == 0 {
		return hexmap.Hex{}, false
	}
	t := -ray.Position.Y / ray.Direction.Y
	if t <= 0 {
		return hexmap.Hex{}, false
	}
	hit := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t))
	p := hexmap.Point{X: float64(hit.X) / coordScale, Z: float64(hit.Z) / coordScale}
	hex := hexmap.WorldToHex(p, config.HexSize)
	return hex, hexMap.Contains(hex)
}

// worldToRL переводит точку карты и высоту в координаты сцены
func worldToRL(p hexmap.Point, y float64) rl.Vector3 {
	return rl.NewVector3(float32(p.X*coordScale), float32(y*coordScale), float32(p.Z*coordScale))
}

func main() {
	rng := utils.NewPRNGService(config.Seed)
	if err := app.LoadShips(config.ShipDefinitionsPath); err != nil {
		log.Fatal(err)
	}
	hexMap, err := app.LoadOrGenerateMap(config.MapDefinitionPath, rng)
	if err != nil {
		log.Fatal(err)
	}
	voyage := app.NewVoyage(hexMap, rng)

	shipIDs := make([]string, 0, len(defs.ShipLibrary))
	for id := range defs.ShipLibrary {
		shipIDs = append(shipIDs, id)
	}
	sort.Strings(shipIDs)
	var boats []types.EntityID
	for _, id := range shipIDs {
		boat, err := voyage.SpawnBoat(defs.ShipLibrary[id], hexMap.Port)
		if err != nil {
			log.Printf("voyage3d: %v", err)
			continue
		}
		boats = append(boats, boat)
	}

	rl.InitWindow(screenWidth, screenHeight, "Rising Tides | Voyage 3D")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	camera := rl.Camera3D{
		Position:   rl.NewVector3(0, float32(hexMap.Radius)*coordScale*1.6, float32(hexMap.Radius)*coordScale*1.4),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       50,
		Projection: rl.CameraPerspective,
	}
	backgroundColor := toRL(config.BackgroundColor)
	hexes := hexMap.SortedHexes()

	modeButton := ui.NewToggleButton(rl.NewRectangle(screenWidth-170, 10, 160, 36), curve.Linear.String(), curve.Spline.String())
	modeButton.Select(voyage.Mode.String())
	speedButton := ui.NewSpeedButton(screenWidth-150, 80, 14, []float64{1, 2, 4}, []rl.Color{rl.SkyBlue, rl.Gold, rl.Orange})
	selected := 0
	autopilot := true

	for !rl.WindowShouldClose() {
		mouse := rl.GetMousePosition()
		switch {
		case rl.IsMouseButtonPressed(rl.MouseLeftButton) && modeButton.Contains(mouse):
			if mode, err := curve.ParseMode(modeButton.Toggle()); err == nil {
				voyage.Mode = mode
			}
		case speedButton.IsClicked(mouse):
			speedButton.ToggleState()
		case rl.IsMouseButtonPressed(rl.MouseLeftButton) && len(boats) > 0:
			if goal, ok := pickHex(camera, hexMap); ok {
				if _, err := voyage.TravelTo(boats[selected], goal); err != nil {
					log.Printf("voyage3d: %v", err)
				}
			}
		}
		if rl.IsKeyPressed(rl.KeyTab) && len(boats) > 0 {
			selected = (selected + 1) % len(boats)
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			autopilot = !autopilot
		}

		// Множитель применяется по шагам, чтобы не упереться в ограничение кадра
		for i := 0; i < int(speedButton.Scale()); i++ {
			voyage.Update(float64(rl.GetFrameTime()))
		}
		if autopilot {
			for _, id := range boats {
				voyage.Autopilot(id, autopilotAttempts)
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)

		radius := float32(config.HexSize * coordScale * 0.95)
		for _, h := range hexes {
			region, _ := hexMap.RegionAt(h)
			base := worldToRL(h.ToWorld(config.HexSize), -0.1)
			height := float32(0.1 * coordScale)
			if region == hexmap.Terrain {
				height *= 4
			}
			rl.DrawCylinder(base, radius, radius, height, 6, toRL(config.RegionColor(int(region))))
			rl.DrawCylinderWires(base, radius, radius, height, 6, rl.DarkGray)
		}

		for i, id := range boats {
			sample, ok := voyage.Sample(id)
			if !ok {
				continue
			}
			// Покачивание — только визуальное смещение по высоте
			hull := worldToRL(sample.Position, boatHeight*0.1+voyage.BobOffset(id))
			heading := sample.Orientation + math.Pi/2
			nose := sample.Position.Add(hexmap.Point{X: math.Cos(heading), Z: math.Sin(heading)}.Scale(config.BoatLength / 2))
			bow := worldToRL(nose, boatHeight*0.1+voyage.BobOffset(id))

			hullColor := toRL(config.BoatColor)
			if i == selected {
				hullColor = rl.Yellow
			}
			rl.DrawSphere(hull, float32(config.BoatLength*coordScale*0.25), hullColor)
			rl.DrawLine3D(hull, bow, rl.Red)
			rl.DrawSphere(bow, float32(config.BoatLength*coordScale*0.08), rl.Red)

			if motion := voyage.ECS.Motions[id]; motion.Curve != nil {
				const steps = 32
				prev, _ := motion.Curve.PointAt(0)
				for i := 1; i <= steps; i++ {
					next, _ := motion.Curve.PointAt(float64(i) / steps)
					rl.DrawLine3D(worldToRL(prev, 0.05), worldToRL(next, 0.05), rl.Yellow)
					prev = next
				}
			}
		}

		rl.EndMode3D()

		status := "off"
		if autopilot {
			status = "on"
		}
		rl.DrawText(fmt.Sprintf("mode: %s  boats: %d  autopilot: %s  speed: x%.0f", voyage.Mode, len(boats), status, speedButton.Scale()), 10, 10, 20, rl.White)
		if len(boats) > 0 {
			ship := voyage.ECS.Ships[boats[selected]]
			rl.DrawText(fmt.Sprintf("selected: %s (Tab to switch, click a hex to sail)", ship.Name), 10, 34, 18, rl.LightGray)
		}
		rl.DrawFPS(10, 60)
		modeButton.Draw(mouse)
		speedButton.Draw()
		rl.EndDrawing()
	}
}
