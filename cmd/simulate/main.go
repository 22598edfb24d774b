// cmd/simulate/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/logging"
	"go-waypoint-defense/internal/persist"
	"go-waypoint-defense/internal/scoreboard"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"

	"go.uber.org/zap"
)

type options struct {
	config  string
	level   string
	index   int
	load    string
	seconds float64
	dt      float64
	save    string
	seed    int64
	scores  string
}

func main() {
	var o options
	flag.StringVar(&o.config, "config", "", "path to a TOML config file")
	flag.StringVar(&o.level, "level", "", "level file or directory (default: generated demo level)")
	flag.IntVar(&o.index, "index", 0, "which level to play when -level is a directory")
	flag.StringVar(&o.load, "load", "", "resume from a saved level instead of starting one")
	flag.Float64Var(&o.seconds, "seconds", 120, "simulated seconds to run at most")
	flag.Float64Var(&o.dt, "dt", 0.01, "fixed frame time in seconds")
	flag.StringVar(&o.save, "save", "", "write the final level state to this file")
	flag.Int64Var(&o.seed, "seed", 0, "random seed for the demo level (0 = config or time)")
	flag.StringVar(&o.scores, "scores", "", "record the result in this SQLite database")
	flag.Parse()

	cfg, err := config.Load(o.config)
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

	if err := run(o, cfg, log); err != nil {
		log.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(o options, cfg *config.Config, log *zap.Logger) error {
	if o.dt <= 0 {
		return fmt.Errorf("frame time must be positive, got %v", o.dt)
	}
	seed := o.seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	rng := utils.NewPRNGService(seed)
	bounds := geom.R(0, 0, config.ScreenWidth, config.ScreenHeight)

	events := event.NewDispatcher()
	tracker := scoreboard.NewTracker()
	tracker.Attach(events)
	opts := []level.Option{
		level.WithClock(level.FixedClock(o.dt)),
		level.WithLogger(log),
		level.WithDispatcher(events),
	}

	var l *level.Level
	if o.load != "" {
		var err error
		if l, err = persist.LoadFile(o.load, opts...); err != nil {
			return err
		}
		bounds = l.Map().Bounds()
		log.Info("level resumed", zap.String("file", o.load), zap.Float64("time", l.Time()))
	} else {
		d, err := pickLevel(o, cfg, rng, bounds)
		if err != nil {
			return err
		}
		if l, err = d.Build(opts...); err != nil {
			return err
		}
		bounds = d.Bounds()
		l.Start()
	}

	start := l.Time()
	frames := 0
	for !l.Completed() && l.Time()-start < o.seconds {
		l.Advance(bounds)
		frames++
	}

	tally := tracker.Tally(l.Name())
	fmt.Print(l)
	fmt.Printf("frames: %d  time: %.2fs  completed: %v\n", frames, l.Time(), l.Completed())
	fmt.Printf("spawned: %d  killed: %d  escaped: %d  shots: %d\n", tally.Spawned, tally.Killed, tally.Escaped, tally.Shots)

	if o.save != "" {
		if err := persist.SaveFile(o.save, l); err != nil {
			return err
		}
		log.Info("level saved", zap.String("file", o.save))
	}

	scores := o.scores
	if scores == "" && cfg.Scores.Enabled {
		scores = cfg.Scores.Path
	}
	if scores != "" {
		store, err := scoreboard.Open(scores, log)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Record(context.Background(), tracker.Result(l.Name(), rng.Seed(), l.Time())); err != nil {
			return err
		}
	}
	return nil
}

func pickLevel(o options, cfg *config.Config, rng *utils.PRNGService, bounds geom.Rect) (*defs.LevelDefinition, error) {
	path := o.level
	if path == "" {
		path = cfg.Game.LevelFile
	}
	if path == "" {
		return defs.DemoLevel(rng, bounds), nil
	}
	levels, err := defs.LoadPath(path)
	if err != nil {
		return nil, err
	}
	if o.index < 0 || o.index >= len(levels) {
		return nil, fmt.Errorf("level index %d out of range (%d levels in %s)", o.index, len(levels), path)
	}
	return levels[o.index], nil
}
