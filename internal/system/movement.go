// internal/system/movement.go
package system

import (
	"errors"
	"fmt"
	"log/slog"

	"go-prevent/internal/entity"
	"go-prevent/internal/event"
	"go-prevent/pkg/grid"
)

// PathSource определяет то, что MovementSystem требует от поиска пути.
// *grid.Pathfinder удовлетворяет этому интерфейсу.
type PathSource interface {
	GetPath(start, finish grid.Tile) (grid.Path, error)
	Scale() int
}

// UnitEvent is the payload of unit events.
type UnitEvent struct {
	ID   entity.EntityID
	Tile grid.Tile
}

// MovementSystem ведёт юнитов от путевой точки к путевой точке до выхода.
type MovementSystem struct {
	ecs             *entity.ECS
	paths           PathSource
	finish          grid.Tile
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewMovementSystem(ecs *entity.ECS, paths PathSource, finish grid.Tile, eventDispatcher *event.Dispatcher, logger *slog.Logger) *MovementSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &MovementSystem{
		ecs:             ecs,
		paths:           paths,
		finish:          finish,
		eventDispatcher: eventDispatcher,
		logger:          logger.With("component", "movement"),
	}
}

// Update moves every unit one tick. Units that cannot reach the exit wait in
// place. Inconsistent distance fields are returned joined, after every other
// unit has moved.
func (s *MovementSystem) Update() error {
	scale := s.paths.Scale()
	var errs []error
	for _, id := range s.ecs.UnitIDs() {
		unit := s.ecs.Units[id]
		if unit.Done {
			continue
		}

		tile := unit.ContainingTile(scale)
		if tile == s.finish {
			unit.Done = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.UnitLeaked, Data: UnitEvent{ID: id, Tile: tile}})
			continue
		}

		if unit.Arrived() {
			path, err := s.paths.GetPath(tile, s.finish)
			switch {
			case err == nil:
				next, _ := path.First()
				unit.Destination = next
				unit.Stalled = false
			case errors.Is(err, grid.ErrNoPath):
				if !unit.Stalled {
					s.logger.Warn("no path to exit, unit waits", "unit", id, "tile", tile)
					s.eventDispatcher.Dispatch(event.Event{Type: event.UnitStalled, Data: UnitEvent{ID: id, Tile: tile}})
				}
				unit.Stalled = true
			default:
				s.logger.Error("failed to get path", "unit", id, "tile", tile, "error", err)
				errs = append(errs, fmt.Errorf("unit %d at %s: %w", id, tile, err))
			}
		}

		unit.Location = Advance(unit.Location, unit.Destination, unit.Speed)
	}
	return errors.Join(errs...)
}

// Advance steps from toward to by at most speed along each axis
// independently, never overshooting.
func Advance(from, to grid.Point, speed int) grid.Point {
	return grid.Point{
		X: step(from.X, to.X, speed),
		Y: step(from.Y, to.Y, speed),
	}
}

func step(from, to, speed int) int {
	switch {
	case from < to:
		return min(from+speed, to)
	case from > to:
		return max(from-speed, to)
	}
	return from
}
