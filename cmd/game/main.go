// cmd/game/main.go
package main

import (
	"flag"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"slices"
	"time"

	"go-prevent/internal/config"
	"go-prevent/internal/defs"
	"go-prevent/internal/level"
	"go-prevent/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	reloads        <-chan *defs.Library
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	select {
	case lib, ok := <-a.reloads:
		if ok {
			a.stateMachine.SetLibrary(lib)
		}
	default:
	}

	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsPath := flag.String("defs", "", "tower and unit definitions (YAML); embedded defaults when empty")
	levelName := flag.String("level", "", "start this level directly: an embedded name or a map file")
	watch := flag.Bool("watch", false, "reload -defs when the file changes")
	debug := flag.Bool("debug", false, "debug logging")
	showField := flag.Bool("field", false, "show the distance field overlay at start")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	if *pprofAddr != "" {
		go func() {
			logger.Warn("pprof server stopped", "error", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	lib := defs.Default()
	if *defsPath != "" {
		var err error
		if lib, err = defs.Load(*defsPath); err != nil {
			logger.Error("failed to load definitions", "error", err)
			os.Exit(1)
		}
	}

	app := &AppGame{lastUpdateTime: time.Now()}
	if *watch {
		if *defsPath == "" {
			logger.Warn("-watch needs -defs, ignoring")
		} else {
			w, err := defs.NewWatcher(*defsPath)
			if err != nil {
				logger.Error("failed to watch definitions", "error", err)
				os.Exit(1)
			}
			defer w.Close()
			app.reloads = w.Reload(func(err error) {
				logger.Warn("definitions reload failed, keeping previous", "error", err)
			})
		}
	}

	levels := level.Names()
	if *levelName != "" && !slices.Contains(levels, *levelName) {
		levels = append(levels, *levelName)
	}
	sm := state.NewStateMachine(&state.Context{
		Library:   lib,
		Logger:    logger,
		Levels:    levels,
		Scale:     config.DefaultScale,
		ShowField: *showField,
	})
	if *levelName != "" {
		lvl, err := level.Open(*levelName, lib)
		if err != nil {
			logger.Error("failed to load level", "error", err)
			os.Exit(1)
		}
		sm.SetState(state.NewGameState(sm, lvl))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}
	app.stateMachine = sm

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Prevent")
	ebiten.SetTPS(ebiten.DefaultTPS)
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game stopped", "error", err)
		os.Exit(1)
	}
}
