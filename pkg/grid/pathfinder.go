// pkg/grid/pathfinder.go
package grid

import (
	"errors"
	"log/slog"
	"slices"
)

type cachedPath struct {
	path Path
	err  error
}

// Stats counts cache activity since the Pathfinder was created.
type Stats struct {
	Hits        uint64
	Misses      uint64
	FieldBuilds uint64
}

type generational interface {
	Generation() uint64
}

// Pathfinder answers shortest-route queries against a board and memoizes the
// answers until Invalidate is called. One distance field per finish tile is
// shared by every start tile within an invalidation cycle.
//
// A Pathfinder is not safe for concurrent use. Every board mutation must be
// followed by Invalidate before the next query.
type Pathfinder struct {
	board  BoardView
	scale  int
	logger *slog.Logger

	paths     map[Tile]cachedPath
	field     *DistanceField
	finish    Tile
	hasFinish bool

	generation    uint64
	hasGeneration bool

	stats Stats
}

type Option func(*Pathfinder)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Pathfinder) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPathfinder creates a pathfinder over board. scale is the pixel size of a
// tile and determines waypoint coordinates.
func NewPathfinder(board BoardView, scale int, opts ...Option) *Pathfinder {
	if scale < 1 {
		scale = 1
	}
	p := &Pathfinder{
		board:  board,
		scale:  scale,
		logger: slog.Default(),
		paths:  make(map[Tile]cachedPath),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "pathfinder")
	p.syncGeneration()
	return p
}

func (p *Pathfinder) Scale() int {
	return p.scale
}

// Invalidate drops every cached path and the cached distance field.
func (p *Pathfinder) Invalidate() {
	if len(p.paths) > 0 || p.field != nil {
		p.logger.Debug("board state changed, path cache invalidated", "entries", len(p.paths))
	}
	clear(p.paths)
	p.field = nil
	p.hasFinish = false
	p.syncGeneration()
}

// GetPath returns the waypoints from start to finish. It returns ErrNoPath
// when finish is unreachable, and an error matching ErrInconsistentField if
// reconstruction fails. The returned slice is owned by the caller.
func (p *Pathfinder) GetPath(start, finish Tile) (Path, error) {
	p.checkGeneration()
	p.useFinish(finish)

	if cached, ok := p.paths[start]; ok {
		p.stats.Hits++
		if cached.err != nil {
			return nil, cached.err
		}
		return slices.Clone(cached.path), nil
	}
	p.stats.Misses++

	var (
		path Path
		err  error
	)
	if start == finish {
		path, err = Reconstruct(nil, start, finish, p.scale)
	} else {
		field := p.Field(finish)
		if !field.Contains(start) {
			err = ErrNoPath
		} else {
			path, err = Reconstruct(field, start, finish, p.scale)
		}
	}

	switch {
	case err == nil:
		p.paths[start] = cachedPath{path: path}
		return slices.Clone(path), nil
	case errors.Is(err, ErrNoPath):
		p.logger.Debug("no path", "start", start, "finish", finish)
		p.paths[start] = cachedPath{err: ErrNoPath}
		return nil, ErrNoPath
	default:
		p.logger.Error("path reconstruction failed", "start", start, "finish", finish, "error", err)
		return nil, err
	}
}

// Field returns the complete distance field for finish, building it if the
// cache holds none or holds one for a different finish.
func (p *Pathfinder) Field(finish Tile) *DistanceField {
	p.checkGeneration()
	p.useFinish(finish)
	if p.field != nil {
		return p.field
	}
	p.field = BuildDistanceField(finish, p.board)
	p.stats.FieldBuilds++
	p.logger.Debug("distance field built", "finish", finish, "reachable", p.field.Len())
	return p.field
}

func (p *Pathfinder) Stats() Stats {
	return p.stats
}

// useFinish scopes the cache to finish. Paths and the field computed for any
// other finish are dropped.
func (p *Pathfinder) useFinish(finish Tile) {
	if p.hasFinish && p.finish == finish {
		return
	}
	if p.hasFinish {
		p.logger.Debug("finish changed, path cache reset", "from", p.finish, "to", finish)
	}
	clear(p.paths)
	p.field = nil
	p.finish = finish
	p.hasFinish = true
}

func (p *Pathfinder) syncGeneration() {
	if g, ok := p.board.(generational); ok {
		p.generation = g.Generation()
		p.hasGeneration = true
	}
}

func (p *Pathfinder) checkGeneration() {
	if !p.hasGeneration {
		return
	}
	g := p.board.(generational).Generation()
	if g == p.generation {
		return
	}
	p.logger.Warn("board changed without invalidation, dropping cached paths", "cached", p.generation, "board", g)
	p.Invalidate()
}
