// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"go-prevent/internal/component"
	"go-prevent/internal/defs"
	"go-prevent/internal/event"
	"go-prevent/pkg/grid"
)

var (
	ErrGameOver           = errors.New("game is over")
	ErrInsufficientFunds  = errors.New("not enough score")
	ErrNotBuildable       = errors.New("tile is not buildable")
	ErrPathBlocked        = errors.New("tower would block the path to the exit")
	ErrTileOccupiedByUnit = errors.New("a unit is on the tile")
	ErrNoTower            = errors.New("no tower on the tile")
	ErrUnknownUpgrade     = errors.New("tower cannot be upgraded to that type")
)

// TowerEvent is the payload of tower events.
type TowerEvent struct {
	Tile  grid.Tile
	Tower *component.Tower
	Delta int // изменение счёта
}

// TowerAt returns the tower on tile, if any.
func (g *Game) TowerAt(tile grid.Tile) (*component.Tower, bool) {
	tower, ok := g.Board.PieceAt(tile).(*component.Tower)
	return tower, ok
}

// PlaceTower builds the base tower on a land tile.
func (g *Game) PlaceTower(tile grid.Tile) error {
	if g.ECS.GameState.Over() {
		return ErrGameOver
	}
	terrain, ok := g.Board.PieceAt(tile).(*component.Terrain)
	if !ok || !terrain.Buildable() {
		return fmt.Errorf("%w: %s", ErrNotBuildable, tile)
	}
	def, err := g.Library.Tower(g.Library.BaseTower)
	if err != nil {
		return err
	}
	if err := g.checkBuild(tile, def, true); err != nil {
		return err
	}

	tower := component.NewTower(def)
	g.Board.Set(tile, tower)
	g.ECS.GameState.Score -= def.Cost
	g.logger.Info("tower placed", "tile", tile, "tower", def.ID, "score", g.ECS.GameState.Score)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: TowerEvent{Tile: tile, Tower: tower, Delta: -def.Cost}})
	return nil
}

// UpgradeTower replaces the tower on tile with one from its upgrade list.
func (g *Game) UpgradeTower(tile grid.Tile, id string) error {
	if g.ECS.GameState.Over() {
		return ErrGameOver
	}
	current, ok := g.TowerAt(tile)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoTower, tile)
	}
	if !current.CanUpgradeTo(id) {
		return fmt.Errorf("%w: %s to %q", ErrUnknownUpgrade, current.DefID, id)
	}
	def, err := g.Library.Tower(id)
	if err != nil {
		return err
	}
	if err := g.checkBuild(tile, def, current.Traversable()); err != nil {
		return err
	}

	tower := component.NewTower(def)
	g.Board.Set(tile, tower)
	g.ECS.GameState.Score -= def.Cost
	g.logger.Info("tower upgraded", "tile", tile, "from", current.DefID, "to", def.ID, "score", g.ECS.GameState.Score)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: TowerEvent{Tile: tile, Tower: tower, Delta: -def.Cost}})
	return nil
}

// SellTower removes the tower on tile, refunds its sell price and restores
// land.
func (g *Game) SellTower(tile grid.Tile) error {
	if g.ECS.GameState.Over() {
		return ErrGameOver
	}
	tower, ok := g.TowerAt(tile)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoTower, tile)
	}

	refund := tower.SellPrice()
	g.Board.Set(tile, component.NewTerrain(defs.TerrainLand))
	g.ECS.GameState.Score += refund
	g.logger.Info("tower sold", "tile", tile, "tower", tower.DefID, "refund", refund, "score", g.ECS.GameState.Score)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: TowerEvent{Tile: tile, Tower: tower, Delta: refund}})
	return nil
}

// checkBuild validates putting def on tile. wasTraversable tells whether
// units could cross the tile before; only a change from passable to blocking
// needs the unit and path checks.
func (g *Game) checkBuild(tile grid.Tile, def defs.TowerDefinition, wasTraversable bool) error {
	if def.Cost > g.ECS.GameState.Score {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, def.ID, def.Cost, g.ECS.GameState.Score)
	}
	if def.Traversable || !wasTraversable {
		return nil
	}
	if g.unitOn(tile) {
		return fmt.Errorf("%w: %s", ErrTileOccupiedByUnit, tile)
	}
	if g.wouldBlock(tile) {
		return fmt.Errorf("%w: %s", ErrPathBlocked, tile)
	}
	return nil
}

// unitOn reports whether an active unit stands on tile or is walking into it.
func (g *Game) unitOn(tile grid.Tile) bool {
	for _, u := range g.ECS.Units {
		if u.Done {
			continue
		}
		if u.ContainingTile(g.Scale) == tile || grid.TileAt(u.Destination, g.Scale) == tile {
			return true
		}
	}
	return false
}

// wouldBlock checks, without touching the board, whether blocking tile cuts
// the entry or any unit on the field off from the exit.
func (g *Game) wouldBlock(tile grid.Tile) bool {
	view := grid.Blocked(g.Board, tile)
	if g.ECS.ActiveUnits() == 0 {
		field := grid.BuildDistanceFieldUntil(g.Level.Finish, g.Level.Start, view)
		return !field.Contains(g.Level.Start)
	}

	field := grid.BuildDistanceField(g.Level.Finish, view)
	if !field.Contains(g.Level.Start) {
		return true
	}
	for _, u := range g.ECS.Units {
		if u.Done {
			continue
		}
		if t := u.ContainingTile(g.Scale); t != g.Level.Finish && !field.Contains(t) {
			return true
		}
	}
	return false
}
