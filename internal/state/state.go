// internal/state/state.go
package state

import (
	"log/slog"

	"go-prevent/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// LibraryReceiver is implemented by states that react to reloaded
// definitions.
type LibraryReceiver interface {
	SetLibrary(lib *defs.Library)
}

// Context is shared by every state.
type Context struct {
	Library   *defs.Library
	Logger    *slog.Logger
	Levels    []string // имена встроенных уровней или пути к файлам
	Scale     int
	ShowField bool // начальное значение оверлея расстояний
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	ctx     *Context
	quit    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(ctx *Context) *StateMachine {
	if ctx.Logger == nil {
		ctx.Logger = slog.Default()
	}
	return &StateMachine{ctx: ctx}
}

func (sm *StateMachine) Context() *Context {
	return sm.ctx
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

// SetLibrary stores reloaded definitions and hands them to the current state.
func (sm *StateMachine) SetLibrary(lib *defs.Library) {
	sm.ctx.Library = lib
	if r, ok := sm.current.(LibraryReceiver); ok {
		r.SetLibrary(lib)
	}
}

// Quit asks the main loop to stop.
func (sm *StateMachine) Quit() {
	sm.quit = true
}

func (sm *StateMachine) Quitting() bool {
	return sm.quit
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
