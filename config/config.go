package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Board   BoardConfig   `toml:"board" yaml:"board"`
	Snake   SnakeConfig   `toml:"snake" yaml:"snake"`
	Timers  TimersConfig  `toml:"timers" yaml:"timers"`
	Food    FoodConfig    `toml:"food" yaml:"food"`
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Trace   TraceConfig   `toml:"trace" yaml:"trace"`
	Seed    uint64        `toml:"seed" yaml:"seed"` // 0 = seed from the clock
}

type BoardConfig struct {
	Width  int                  `toml:"width" yaml:"width"`
	Height int                  `toml:"height" yaml:"height"`
	Policy types.MovementPolicy `toml:"policy" yaml:"policy"` // "wrap" or "clamp"
}

type SnakeConfig struct {
	Head      [2]int          `toml:"head" yaml:"head"`
	Direction types.Direction `toml:"direction" yaml:"direction"`
	Tail      [][2]int        `toml:"tail" yaml:"tail"`
}

type TimersConfig struct {
	Movement time.Duration `toml:"movement" yaml:"movement"`
	Spawn    time.Duration `toml:"spawn" yaml:"spawn"`
}

type FoodConfig struct {
	Policy types.FoodPolicy `toml:"policy" yaml:"policy"` // "single" or "literal"
	Growth int              `toml:"growth" yaml:"growth"`
}

type WindowConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
	FPS    int    `toml:"fps" yaml:"fps"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

type TraceConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Dir     string `toml:"dir" yaml:"dir"`
}

// Default mirrors game.DefaultSettings with a 500x500 window.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Width:  types.DefaultWidth,
			Height: types.DefaultHeight,
			Policy: types.Wraparound,
		},
		Snake: SnakeConfig{
			Head:      [2]int{3, 3},
			Direction: types.Up,
			Tail:      [][2]int{{3, 2}},
		},
		Timers: TimersConfig{
			Movement: 150 * time.Millisecond,
			Spawn:    time.Second,
		},
		Food: FoodConfig{
			Policy: types.FoodSingle,
			Growth: 1,
		},
		Window: WindowConfig{
			Width:  500,
			Height: 500,
			Title:  "gridsnake",
			FPS:    60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Trace: TraceConfig{
			Dir: "traces",
		},
	}
}

// Load reads path over the defaults. The decoder is picked by extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first field that cannot produce a playable session.
func (c *Config) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("%w: board %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	case !c.Snake.Direction.Valid():
		return fmt.Errorf("%w: snake.direction %d", ErrInvalid, int(c.Snake.Direction))
	case c.Timers.Movement <= 0:
		return fmt.Errorf("%w: timers.movement %v", ErrInvalid, c.Timers.Movement)
	case c.Timers.Spawn <= 0:
		return fmt.Errorf("%w: timers.spawn %v", ErrInvalid, c.Timers.Spawn)
	case c.Food.Growth < 0:
		return fmt.Errorf("%w: food.growth %d", ErrInvalid, c.Food.Growth)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FPS < 0:
		return fmt.Errorf("%w: window.fps %d", ErrInvalid, c.Window.FPS)
	case c.Trace.Enabled && c.Trace.Dir == "":
		return fmt.Errorf("%w: trace.dir is empty", ErrInvalid)
	}

	board := types.Grid{Width: c.Board.Width, Height: c.Board.Height}
	head := types.Point{X: c.Snake.Head[0], Y: c.Snake.Head[1]}
	if !board.Contains(head) {
		return fmt.Errorf("%w: snake.head %v is off the %dx%d board", ErrInvalid, head, board.Width, board.Height)
	}
	for i, t := range c.Snake.Tail {
		if p := (types.Point{X: t[0], Y: t[1]}); !board.Contains(p) {
			return fmt.Errorf("%w: snake.tail[%d] %v is off the %dx%d board", ErrInvalid, i, p, board.Width, board.Height)
		}
	}
	return nil
}

// Settings converts the simulation sections into game settings.
func (c *Config) Settings() game.Settings {
	tail := make([]types.Point, len(c.Snake.Tail))
	for i, p := range c.Snake.Tail {
		tail[i] = types.Point{X: p[0], Y: p[1]}
	}
	return game.Settings{
		Grid:   types.Grid{Width: c.Board.Width, Height: c.Board.Height},
		Policy: c.Board.Policy,
		Snake: manager.SnakeSpawn{
			Head:      types.Point{X: c.Snake.Head[0], Y: c.Snake.Head[1]},
			Direction: c.Snake.Direction,
			Tail:      tail,
		},
		MovementPeriod: c.Timers.Movement,
		SpawnPeriod:    c.Timers.Spawn,
		Food:           c.Food.Policy,
		Growth:         c.Food.Growth,
	}
}
