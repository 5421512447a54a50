// cmd/pathfind/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"go-prevent/internal/defs"
	"go-prevent/internal/level"
	"go-prevent/internal/termview"
	"go-prevent/pkg/grid"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "pathfind",
		Usage: "inspect distance fields and routes of Prevent maps",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "level", Value: "level1", Usage: "embedded map name or map file"},
			&cli.StringFlag{Name: "defs", Usage: "tower and unit definitions (YAML)"},
			&cli.BoolFlag{Name: "debug", Usage: "debug logging"},
		},
		Commands: []*cli.Command{
			{
				Name:   "field",
				Usage:  "print the distance field toward the exit",
				Action: fieldAction,
			},
			{
				Name:  "path",
				Usage: "print the waypoints from a start tile to the exit",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "start", Usage: "start tile as x,y (default: the map entry)"},
				},
				Action: pathAction,
			},
			{
				Name:   "levels",
				Usage:  "list embedded maps",
				Action: levelsAction,
			},
			{
				Name:   "view",
				Usage:  "edit the map in the terminal and watch the route change",
				Action: viewAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("pathfind failed", "error", err)
		os.Exit(1)
	}
}

func setup(cmd *cli.Command) (*level.Level, *slog.Logger, error) {
	logLevel := slog.LevelInfo
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	lib := defs.Default()
	if path := cmd.String("defs"); path != "" {
		var err error
		if lib, err = defs.Load(path); err != nil {
			return nil, nil, err
		}
	}
	lvl, err := level.Open(cmd.String("level"), lib)
	if err != nil {
		return nil, nil, err
	}
	return lvl, logger, nil
}

func fieldAction(ctx context.Context, cmd *cli.Command) error {
	lvl, _, err := setup(cmd)
	if err != nil {
		return err
	}
	field := grid.BuildDistanceField(lvl.Finish, lvl.Board)
	printField(cmd.Root().Writer, lvl, field)
	return nil
}

func printField(w io.Writer, lvl *level.Level, field *grid.DistanceField) {
	width, height := lvl.Board.Size()
	var sb strings.Builder
	for y := 0; y < height; y++ {
		sb.Reset()
		for x := 0; x < width; x++ {
			tile := grid.Tile{X: x, Y: y}
			switch d, ok := field.Distance(tile); {
			case tile == lvl.Start:
				sb.WriteString("   S")
			case !ok:
				sb.WriteString("   #")
			default:
				fmt.Fprintf(&sb, "%4d", d)
			}
		}
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintf(w, "reachable: %d tiles\n", field.Len())
}

func pathAction(ctx context.Context, cmd *cli.Command) error {
	lvl, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	start := lvl.Start
	if s := cmd.String("start"); s != "" {
		if start, err = parseTile(s); err != nil {
			return err
		}
	}

	paths := grid.NewPathfinder(lvl.Board, 1, grid.WithLogger(logger))
	path, err := paths.GetPath(start, lvl.Finish)
	if errors.Is(err, grid.ErrNoPath) {
		return fmt.Errorf("%s: no route from %s to %s", lvl.Name, start, lvl.Finish)
	}
	if err != nil {
		return err
	}
	w := cmd.Root().Writer
	for i, tile := range path.Tiles(1) {
		fmt.Fprintf(w, "%3d %s\n", i+1, tile)
	}
	return nil
}

func parseTile(s string) (grid.Tile, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Tile{}, fmt.Errorf("invalid tile %q, expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Tile{}, fmt.Errorf("invalid tile %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Tile{}, fmt.Errorf("invalid tile %q: %w", s, err)
	}
	return grid.Tile{X: x, Y: y}, nil
}

func levelsAction(ctx context.Context, cmd *cli.Command) error {
	for _, name := range level.Names() {
		fmt.Fprintln(cmd.Root().Writer, name)
	}
	return nil
}

func viewAction(ctx context.Context, cmd *cli.Command) error {
	lvl, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// Логи поверх экрана tcell ломают отрисовку
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return termview.Run(ctx, screen, termview.NewModel(lvl, logger))
}
