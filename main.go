package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/rand"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/event"
	"gridsnake/game/types"
	"gridsnake/trace"
	"gridsnake/ui"
)

// headlessStep is the fixed frame delta of a run without a window.
const headlessStep = time.Second / 60

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a .toml or .yaml config file")
	seed := flag.Uint64("seed", 0, "Food placement seed (overrides the config; 0 = clock)")
	headlessFrames := flag.Int("headless-frames", 0, "Run this many 1/60s frames without a window, then exit")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	rng := rand.New(rand.NewSource(cfg.Seed))
	g := game.NewGame(cfg.Settings(), rng, log)
	log.Info("game ready", zap.Uint64("seed", cfg.Seed), zap.String("config", *configPath))

	tr := &sessionTrace{cfg: cfg.Trace, log: log}
	if err := tr.rotate(g.UUID); err != nil {
		return err
	}
	g.Observe(tr)
	defer func() {
		if err := tr.close(); err != nil {
			log.Warn("closing trace", zap.Error(err))
		}
	}()

	if *headlessFrames > 0 {
		runHeadless(g, *headlessFrames, log)
		return nil
	}
	runWindow(g, cfg.Window, tr, log)
	return nil
}

func runHeadless(g *game.Game, frames int, log *zap.Logger) {
	for i := 0; i < frames; i++ {
		g.Update(headlessStep, types.InputState{})
	}
	logSessionEnd(g, log)
}

func runWindow(g *game.Game, w config.WindowConfig, tr *sessionTrace, log *zap.Logger) {
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(w.FPS))

	renderer := ui.NewRenderer(log)
	for !rl.WindowShouldClose() {
		cmd := ui.PollCommands()
		if cmd.Quit {
			break
		}
		if cmd.ToggleHUD {
			renderer.ToggleHUD()
		}
		if cmd.Reset {
			logSessionEnd(g, log)
			g.Reset()
			if err := tr.rotate(g.UUID); err != nil {
				log.Warn("trace not rotated", zap.Error(err))
			}
		}

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		g.Update(dt, ui.PollInput())
		renderer.Draw(g)
	}
	logSessionEnd(g, log)
}

func logSessionEnd(g *game.Game, log *zap.Logger) {
	log.Info("session ended",
		zap.String("session", g.UUID),
		zap.Uint64("frames", g.Frames),
		zap.Duration("sim_time", g.SimTime),
		zap.Int("steps", g.Steps()),
		zap.Int("eaten", g.Eaten()),
		zap.Int("food_spawned", g.Spawned()),
		zap.Int("entities", g.LiveEntities()),
		zap.Any("snake", g.GetSnake()),
		zap.Float64("elapsed_s", g.ElapsedTime()),
	)
}

// sessionTrace forwards events to the trace file of the current session and
// starts a new file whenever the session is reset.
type sessionTrace struct {
	cfg config.TraceConfig
	log *zap.Logger
	w   *trace.Writer
}

func (s *sessionTrace) Record(e event.Event) {
	if s.w != nil {
		s.w.Record(e)
	}
}

func (s *sessionTrace) rotate(session string) error {
	if !s.cfg.Enabled {
		return nil
	}
	if err := s.close(); err != nil {
		s.log.Warn("closing previous trace", zap.Error(err))
	}
	w, err := trace.Open(s.cfg.Dir, session, s.log)
	if err != nil {
		return err
	}
	s.w = w
	s.log.Info("tracing", zap.String("path", w.Path()))
	return nil
}

func (s *sessionTrace) close() error {
	if s.w == nil {
		return nil
	}
	err := s.w.Close()
	s.w = nil
	return err
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
