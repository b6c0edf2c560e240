package game

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gridsnake/game/entity"
	"gridsnake/game/event"
	"gridsnake/game/manager"
	"gridsnake/game/system"
	"gridsnake/game/types"
)

// Settings fixes the board, the starting snake and the pacing of a session.
type Settings struct {
	Grid           types.Grid
	Policy         types.MovementPolicy
	Snake          manager.SnakeSpawn
	MovementPeriod time.Duration
	SpawnPeriod    time.Duration
	Food           types.FoodPolicy
	Growth         int
}

// DefaultSettings is the reference 10x10 session: snake at (3,3) facing up
// with one segment below it, moving every 150ms, food every second.
func DefaultSettings() Settings {
	return Settings{
		Grid:   types.Grid{Width: types.DefaultWidth, Height: types.DefaultHeight},
		Policy: types.Wraparound,
		Snake: manager.SnakeSpawn{
			Head:      types.Point{X: 3, Y: 3},
			Direction: types.Up,
			Tail:      []types.Point{{X: 3, Y: 2}},
		},
		MovementPeriod: 150 * time.Millisecond,
		SpawnPeriod:    time.Second,
		Food:           types.FoodSingle,
		Growth:         1,
	}
}

// Sprite is one entry of the render feed.
type Sprite struct {
	ID   entity.ID
	Kind entity.Kind
	Pos  types.Point
	Size entity.Size
}

type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time
	Frames    uint64
	SimTime   time.Duration

	settings Settings
	reg      *entity.Registry
	runner   *system.Runner

	input      *manager.InputManager
	movement   *manager.MovementManager
	food       *manager.FoodManager
	population *manager.PopulationManager

	events    *event.Buffer
	observers []event.Sink
	base      *zap.Logger
	log       *zap.Logger
}

// NewGame builds a session and spawns the starting snake. rng drives food
// placement.
func NewGame(settings Settings, rng manager.Rand, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	reg := entity.NewRegistry()
	events := event.NewBuffer()

	collisionMgr := manager.NewCollisionManager(reg)
	input := manager.NewInputManager(reg, events)
	movement := manager.NewMovementManager(reg, settings.Grid, settings.Policy, settings.MovementPeriod, events)
	food := manager.NewFoodManager(reg, settings.Grid, rng, manager.FoodOptions{
		Period: settings.SpawnPeriod,
		Policy: settings.Food,
		Growth: settings.Growth,
	}, collisionMgr, movement, events)

	runner := system.NewRunner()
	runner.Register(input)
	runner.Register(movement)
	runner.Register(food)
	runner.Register(manager.NewCleanupManager(reg))

	g := &Game{
		Grid:       settings.Grid,
		settings:   settings,
		reg:        reg,
		runner:     runner,
		input:      input,
		movement:   movement,
		food:       food,
		population: manager.NewPopulationManager(reg, settings.Grid, settings.Snake),
		events:     events,
		base:       log,
	}
	g.Reset()
	return g
}

// Observe registers a sink that receives every event after each frame.
func (g *Game) Observe(s event.Sink) {
	g.observers = append(g.observers, s)
}

// Reset discards every entity, respawns the starting snake and restarts both
// timers under a fresh session id.
func (g *Game) Reset() {
	g.reg.Clear()
	g.population.InitializePopulation()
	g.movement.Reset()
	g.food.Reset()
	g.UUID = uuid.New().String()
	g.StartTime = time.Now()
	g.Frames = 0
	g.SimTime = 0
	g.log = g.base.With(zap.String("session", g.UUID))
	g.log.Info("session started",
		zap.Int("width", g.Grid.Width),
		zap.Int("height", g.Grid.Height),
		zap.Stringer("policy", g.settings.Policy),
		zap.Stringer("food", g.settings.Food),
		zap.Int("length", g.reg.SnakeLen()),
	)
}

// Update runs one frame: the held keys are resolved first, then movement,
// food and cleanup, each gated by its own timer.
func (g *Game) Update(dt time.Duration, keys types.InputState) {
	g.Frames++
	g.SimTime += dt
	g.events.Begin(g.Frames)
	g.input.SetInput(keys)
	g.runner.Tick(dt)

	for _, e := range g.events.Events() {
		if ce := g.log.Check(zap.DebugLevel, string(e.Kind)); ce != nil {
			ce.Write(
				zap.Uint64("frame", e.Frame),
				zap.Uint64("entity", e.Entity),
				zap.Stringer("pos", e.Pos),
				zap.String("dir", e.Dir),
				zap.Bool("covered", e.Covered),
			)
		}
		for _, o := range g.observers {
			o.Record(e)
		}
	}
}

// RenderFeed lists every live entity with its cell and footprint: food first,
// then the snake from tail to head so the head is drawn on top.
func (g *Game) RenderFeed() []Sprite {
	foods := g.reg.FoodIDs()
	chain := g.reg.Snake()
	out := make([]Sprite, 0, len(foods)+len(chain))
	for _, id := range foods {
		out = g.appendSprite(out, id, entity.KindFood)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		kind := entity.KindSegment
		if i == 0 {
			kind = entity.KindHead
		}
		out = g.appendSprite(out, chain[i], kind)
	}
	return out
}

func (g *Game) appendSprite(out []Sprite, id entity.ID, kind entity.Kind) []Sprite {
	pos, ok := g.reg.Position(id)
	if !ok {
		return out
	}
	size, ok := g.reg.Sizes.Get(id)
	if !ok {
		return out
	}
	return append(out, Sprite{ID: id, Kind: kind, Pos: pos, Size: *size})
}

// GetSnake returns the snake cells, head first.
func (g *Game) GetSnake() []types.Point {
	return g.population.Body()
}

func (g *Game) GetDirection() types.Direction {
	return g.population.Direction()
}

func (g *Game) GetFoodList() []types.Point {
	return g.food.GetFoodList()
}

// Steps is the number of movement advances this session.
func (g *Game) Steps() int {
	return g.movement.Steps()
}

// Eaten is the number of foods consumed this session.
func (g *Game) Eaten() int {
	return g.food.Eaten()
}

// Spawned is the number of foods placed this session.
func (g *Game) Spawned() int {
	return g.food.Spawned()
}

// ElapsedTime returns the wall-clock age of the session in seconds.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}

// LiveEntities counts allocated entities, those queued for destruction
// included.
func (g *Game) LiveEntities() int {
	return g.reg.Live()
}
