// cmd/voyage/main.go
package main

import (
	"log"
	"time"

	"rising-tides/internal/app"
	"rising-tides/internal/config"
	"rising-tides/internal/state"
	"rising-tides/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
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
	sm := state.NewStateMachine()
	sm.SetState(state.NewVoyageState(sm, voyage))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Rising Tides | Voyage")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
