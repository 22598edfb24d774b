// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/logging"
	"go-waypoint-defense/internal/scoreboard"
	"go-waypoint-defense/internal/state"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine *state.StateMachine
	clock        *level.WallClock
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.clock.FrameTime())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("game stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	rng := utils.NewPRNGService(cfg.Game.Seed)
	bounds := geom.R(0, 0, config.ScreenWidth, config.ScreenHeight)

	var levels []*defs.LevelDefinition
	if cfg.Game.LevelFile == "" {
		levels = []*defs.LevelDefinition{defs.DemoLevel(rng, bounds)}
	} else {
		var err error
		if levels, err = defs.LoadPath(cfg.Game.LevelFile); err != nil {
			return err
		}
	}
	log.Info("levels loaded", zap.Int("count", len(levels)), zap.Int64("seed", rng.Seed()))

	var store *scoreboard.Store
	if cfg.Scores.Enabled {
		var err error
		if store, err = scoreboard.Open(cfg.Scores.Path, log); err != nil {
			return err
		}
		defer store.Close()
	}

	session, err := state.NewSession(levels, store, log, bounds, rng.Seed())
	if err != nil {
		return err
	}
	session.StartPaused = cfg.Game.StartPaused

	sm := state.NewStateMachine(log)
	sm.SetState(state.NewMenuState(sm, session))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	err = ebiten.RunGame(&AppGame{
		stateMachine: sm,
		clock:        level.NewWallClock(cfg.Game.MaxDeltaTime),
	})
	session.RecordResult()
	log.Info("game closed")
	return err
}
