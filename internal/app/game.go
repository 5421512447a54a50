// internal/app/game.go
package app

import (
	"log/slog"
	"time"

	"go-prevent/internal/component"
	"go-prevent/internal/config"
	"go-prevent/internal/defs"
	"go-prevent/internal/entity"
	"go-prevent/internal/event"
	"go-prevent/internal/level"
	"go-prevent/internal/system"
	"go-prevent/pkg/grid"
)

// Game holds the main game state and logic.
type Game struct {
	Level           *level.Level
	Board           *grid.Board
	Pathfinder      *grid.Pathfinder
	Library         *defs.Library
	ECS             *entity.ECS
	MovementSystem  *system.MovementSystem
	WaveSystem      *system.WaveSystem
	StateSystem     *system.StateSystem
	EventDispatcher *event.Dispatcher
	Scale           int

	logger *slog.Logger
}

type options struct {
	logger          *slog.Logger
	scale           int
	dispenseDelay   time.Duration
	waveDelayFactor int
	score           int
	lives           int
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithScale sets the tile size in pixels.
func WithScale(scale int) Option {
	return func(o *options) { o.scale = scale }
}

func WithDispenseDelay(d time.Duration) Option {
	return func(o *options) { o.dispenseDelay = d }
}

// WithStart overrides the starting score and lives.
func WithStart(score, lives int) Option {
	return func(o *options) {
		o.score = score
		o.lives = lives
	}
}

// NewGame initializes a new game instance for lvl. The level's board is owned
// by the game from here on.
func NewGame(lvl *level.Level, lib *defs.Library, opts ...Option) *Game {
	if lvl == nil || lib == nil {
		panic("level and library cannot be nil")
	}
	o := options{
		logger:          slog.Default(),
		scale:           config.DefaultScale,
		dispenseDelay:   config.DispenseDelay,
		waveDelayFactor: config.WaveDelayFactor,
		score:           config.StartScore,
		lives:           config.MaxLives,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	ecs := entity.NewECS(o.score, o.lives)
	eventDispatcher := event.NewDispatcher()
	pf := grid.NewPathfinder(lvl.Board, o.scale, grid.WithLogger(o.logger))

	g := &Game{
		Level:           lvl,
		Board:           lvl.Board,
		Pathfinder:      pf,
		Library:         lib,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Scale:           pf.Scale(),
		logger:          o.logger.With("component", "game", "level", lvl.Name),
	}
	g.MovementSystem = system.NewMovementSystem(ecs, pf, lvl.Finish, eventDispatcher, o.logger)
	g.WaveSystem = system.NewWaveSystem(ecs, lib, lvl.Waves, lvl.Start, g.Scale, o.dispenseDelay, o.waveDelayFactor, eventDispatcher, o.logger)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher, o.logger)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.TowerPlaced, event.TowerUpgraded, event.TowerSold)

	return g
}

// Update advances the game by one tick. The returned error is non-nil only
// when path reconstruction hit an inconsistent distance field; the tick is
// still fully applied.
func (g *Game) Update(dt time.Duration) error {
	if g.ECS.GameState.Over() {
		return nil
	}
	g.WaveSystem.Update(dt)
	err := g.MovementSystem.Update()
	g.ECS.RemoveDone()
	g.StateSystem.Update(g.WaveSystem.AllDone())
	return err
}

// SetLibrary switches to reloaded definitions. Towers already on the board
// keep their stats.
func (g *Game) SetLibrary(lib *defs.Library) {
	g.Library = lib
	g.WaveSystem.SetLibrary(lib)
	g.logger.Info("definitions reloaded", "towers", len(lib.Towers), "units", len(lib.Units))
}

func (g *Game) State() *component.GameState {
	return g.ECS.GameState
}

// Route returns the current path from the entry to the exit.
func (g *Game) Route() (grid.Path, error) {
	return g.Pathfinder.GetPath(g.Level.Start, g.Level.Finish)
}

// DistanceField returns the exit's distance field for overlays.
func (g *Game) DistanceField() *grid.DistanceField {
	return g.Pathfinder.Field(g.Level.Finish)
}

// TileAt converts a screen position to a board tile.
func (g *Game) TileAt(x, y int) (grid.Tile, bool) {
	t := grid.TileAt(grid.Point{X: x, Y: y}, g.Scale)
	return t, g.Board.Contains(t)
}

// GameEventListener keeps the path cache in step with the board.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.TowerPlaced, event.TowerUpgraded, event.TowerSold:
		l.game.Pathfinder.Invalidate()
	}
}
