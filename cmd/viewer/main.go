// cmd/viewer/main.go
//
// viewer plays a level in a raylib window. It shares the simulation with
// cmd/game and exists mainly for quick checks of saved levels:
//
//	viewer -load run.tdlv
//	viewer -level levels/meadow.yaml
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/logging"
	"go-waypoint-defense/internal/persist"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	levelPath := flag.String("level", "", "level file or directory (default: generated demo level)")
	loadPath := flag.String("load", "", "resume a saved level")
	savePath := flag.String("save", "viewer.tdlv", "file written when S is pressed")
	seed := flag.Int64("seed", 0, "random seed for the demo level")
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

	clock := &level.ManualClock{}
	opts := []level.Option{level.WithClock(clock), level.WithLogger(log)}
	bounds := geom.R(0, 0, config.ScreenWidth, config.ScreenHeight)

	game := app.NewGame(log)
	if *loadPath != "" {
		l, err := persist.LoadFile(*loadPath, opts...)
		if err != nil {
			log.Fatal("load level", zap.Error(err))
		}
		bounds = l.Map().Bounds()
		game.AddLevel(l)
	} else {
		if *seed == 0 {
			*seed = cfg.Game.Seed
		}
		ds, err := definitions(*levelPath, cfg.Game.LevelFile, utils.NewPRNGService(*seed), bounds)
		if err != nil {
			log.Fatal("load levels", zap.Error(err))
		}
		for _, d := range ds {
			l, err := d.Build(opts...)
			if err != nil {
				log.Fatal("build level", zap.String("level", d.Name), zap.Error(err))
			}
			game.AddLevel(l)
		}
	}
	if len(game.Levels) == 0 {
		log.Fatal("no levels to show")
	}
	game.SelectLevel(0)
	play(game)

	rl.InitWindow(int32(bounds.Width), int32(bounds.Height), cfg.Window.Title+" | viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.TPS))

	palette := render.DefaultColors()
	for !rl.WindowShouldClose() {
		clock.Set(min(float64(rl.GetFrameTime()), cfg.Game.MaxDeltaTime))

		if rl.IsKeyPressed(rl.KeySpace) {
			game.TogglePause()
		}
		if rl.IsKeyPressed(rl.KeyTab) && len(game.Levels) > 1 {
			game.SelectLevel((game.ActiveLevel + 1) % len(game.Levels))
			play(game)
		}
		if rl.IsKeyPressed(rl.KeyS) {
			if err := persist.SaveFile(*savePath, game.CurrentLevel()); err != nil {
				log.Error("save level", zap.Error(err))
			} else {
				log.Info("level saved", zap.String("file", *savePath))
			}
		}
		mouse := rl.GetMousePosition()
		cursor := geom.V(float64(mouse.X), float64(mouse.Y))
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !game.SelectTowerAt(cursor) {
			game.CurrentLevel().TryPlaceTower(entity.NewTower(entity.Basic, cursor))
		}
		if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
			game.CurrentLevel().TryPlaceTower(entity.NewTower(entity.Seeker, cursor))
		}

		game.Update(bounds)

		rl.BeginDrawing()
		draw(game, palette)
		rl.EndDrawing()
	}
}

// play resumes the selected level, starting it first if it never ran.
// A level restored from a save keeps its clock and rounds.
func play(game *app.Game) {
	if game.CurrentLevel().Started() {
		game.Paused = false
		return
	}
	if err := game.Start(); err != nil {
		os.Exit(1)
	}
}

func definitions(path, fallback string, rng *utils.PRNGService, bounds geom.Rect) ([]*defs.LevelDefinition, error) {
	if path == "" {
		path = fallback
	}
	if path == "" {
		return []*defs.LevelDefinition{defs.DemoLevel(rng, bounds)}, nil
	}
	return defs.LoadPath(path)
}

func draw(game *app.Game, p *render.LevelColors) {
	l := game.CurrentLevel()
	m := l.Map()
	rl.ClearBackground(rgba(p.Background))
	rl.DrawRectangleRec(rect(m.Bounds()), rgba(p.Ground))

	road := float32(m.RoadWidth * 2)
	for i := 1; i < len(m.Waypoints); i++ {
		a, b := vec(m.Waypoints[i-1]), vec(m.Waypoints[i])
		rl.DrawLineEx(a, b, road, rgba(p.Road))
		rl.DrawCircleV(a, road/2, rgba(p.Road))
	}

	towers := l.Towers()
	if game.Selected >= 0 && game.Selected < len(towers) {
		t := &towers[game.Selected]
		rl.DrawCircleV(vec(t.Center()), float32(t.Range), rgba(p.Range))
	}
	for i := range towers {
		t := &towers[i]
		fill := p.Tower[t.Kind]
		if !t.TargetLock {
			fill = render.DarkenColor(fill)
		}
		r := rect(t.Footprint())
		rl.DrawRectangleRec(r, rgba(fill))
		rl.DrawRectangleLinesEx(r, p.StrokeWidth/2, rgba(p.TowerStroke))
		c := t.Center()
		rl.DrawLineEx(vec(c), vec(c.Add(t.Direction.Scale(t.Size.X))), p.StrokeWidth, rgba(p.TowerStroke))
	}

	for _, e := range l.Enemies() {
		if !e.Active {
			continue
		}
		fill := p.Enemy[e.Kind]
		if e.Hit {
			fill = p.EnemyHit
		}
		rl.DrawRectangleRec(rect(e.Boundary), rgba(fill))
	}
	for _, pr := range l.Projectiles() {
		rl.DrawCircleV(vec(pr.Position), float32(pr.Radius), rgba(p.Projectile))
	}

	st := l.Stats()
	status := "running"
	switch {
	case l.Completed():
		status = "completed"
	case game.Paused:
		status = "paused"
	}
	rl.DrawText(fmt.Sprintf("%s  round %d  t=%.1fs  enemies %d  towers %d  [%s]",
		st.Name, st.ActiveRound+1, st.Time, st.Enemies, st.Towers, status), 10, 10, 18, rgba(config.TextLightColor))
}

func rgba(c color.RGBA) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }

func vec(v geom.Vec2) rl.Vector2 { return rl.NewVector2(float32(v.X), float32(v.Y)) }

func rect(r geom.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height))
}
