// internal/system/state.go
package system

import (
	"log/slog"

	"go-prevent/internal/component"
	"go-prevent/internal/entity"
	"go-prevent/internal/event"
)

// StateSystem следит за жизнями игрока и исходом партии.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger *slog.Logger) *StateSystem {
	if logger == nil {
		logger = slog.Default()
	}
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          logger.With("component", "state"),
	}
	eventDispatcher.Subscribe(event.UnitLeaked, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.UnitLeaked {
		return
	}
	state := s.ecs.GameState
	if state.Over() {
		return
	}
	state.Lives--
	s.logger.Debug("unit reached the exit", "lives", state.Lives)
	if state.Lives <= 0 {
		state.Lives = 0
		s.finish(component.Lost)
	}
}

// Update declares the game won once wavesDone holds and the player is alive.
func (s *StateSystem) Update(wavesDone bool) {
	if wavesDone && !s.ecs.GameState.Over() {
		s.finish(component.Won)
	}
}

func (s *StateSystem) finish(phase component.GamePhase) {
	s.ecs.GameState.Phase = phase
	s.logger.Info("game over", "result", phase, "score", s.ecs.GameState.Score)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: phase})
}
