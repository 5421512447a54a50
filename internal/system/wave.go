// internal/system/wave.go
package system

import (
	"log/slog"
	"time"

	"go-prevent/internal/component"
	"go-prevent/internal/defs"
	"go-prevent/internal/entity"
	"go-prevent/internal/event"
	"go-prevent/pkg/grid"
)

// WaveEvent is the payload of WaveStarted.
type WaveEvent struct {
	Wave  int // с единицы
	Units int
}

// WaveSystem выпускает юнитов волна за волной. A unit leaves the entry every
// delay; a new wave starts only once the field is clear, after a longer pause.
type WaveSystem struct {
	ecs             *entity.ECS
	library         *defs.Library
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger

	waves      [][]string
	spawn      grid.Point
	scale      int
	delay      time.Duration
	waveFactor int

	wave    int // индекс текущей волны
	next    int // индекс следующего юнита в волне
	elapsed time.Duration
	wait    time.Duration
}

func NewWaveSystem(ecs *entity.ECS, library *defs.Library, waves [][]string, start grid.Tile, scale int, delay time.Duration, waveFactor int, eventDispatcher *event.Dispatcher, logger *slog.Logger) *WaveSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &WaveSystem{
		ecs:             ecs,
		library:         library,
		eventDispatcher: eventDispatcher,
		logger:          logger.With("component", "waves"),
		waves:           waves,
		spawn:           start.Center(scale),
		scale:           scale,
		delay:           delay,
		waveFactor:      waveFactor,
		wait:            delay,
	}
}

// SetLibrary swaps the definitions used for units dispensed from now on.
func (s *WaveSystem) SetLibrary(library *defs.Library) {
	s.library = library
}

func (s *WaveSystem) Update(dt time.Duration) {
	if s.wave >= len(s.waves) {
		return
	}
	s.elapsed += dt
	if s.elapsed < s.wait {
		return
	}
	s.elapsed = 0
	s.wait = s.delay

	current := s.waves[s.wave]
	switch {
	case s.next < len(current):
		if s.next == 0 {
			s.ecs.GameState.Wave = s.wave + 1
			s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: WaveEvent{Wave: s.wave + 1, Units: len(current)}})
		}
		s.dispense(current[s.next])
		s.next++
	case s.ecs.ActiveUnits() == 0:
		s.wave++
		s.next = 0
		s.wait = s.delay * time.Duration(s.waveFactor)
		s.logger.Debug("wave cleared", "wave", s.wave, "remaining", len(s.waves)-s.wave)
	}
}

func (s *WaveSystem) dispense(unitID string) {
	def, err := s.library.Unit(unitID)
	if err != nil {
		s.logger.Error("failed to dispense unit", "unit", unitID, "error", err)
		return
	}
	unit := component.NewUnit(def, s.spawn, s.scale)
	id := s.ecs.AddUnit(unit)
	s.eventDispatcher.Dispatch(event.Event{Type: event.UnitDispensed, Data: UnitEvent{ID: id, Tile: grid.TileAt(s.spawn, s.scale)}})
}

// AllDone reports whether every wave has been dispensed and cleared.
func (s *WaveSystem) AllDone() bool {
	return s.wave >= len(s.waves) && s.ecs.ActiveUnits() == 0
}

// Progress returns the current wave index (zero-based) and the wave count.
func (s *WaveSystem) Progress() (int, int) {
	return s.wave, len(s.waves)
}

// Pending counts units not yet dispensed.
func (s *WaveSystem) Pending() int {
	n := 0
	for i := s.wave; i < len(s.waves); i++ {
		n += len(s.waves[i])
	}
	if s.wave < len(s.waves) {
		n -= s.next
	}
	return n
}
