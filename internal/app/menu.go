// internal/app/menu.go
package app

import (
	"fmt"

	"go-prevent/internal/component"
	"go-prevent/pkg/grid"
)

type MenuAction int

const (
	ActionPlace MenuAction = iota
	ActionUpgrade
	ActionSell
)

// MenuOption is one entry of a tile's context menu.
type MenuOption struct {
	Action  MenuAction
	TowerID string
	Label   string
	Cost    int // отрицательная для продажи
	Enabled bool
}

// Menu lists what the player can do on tile: build on land, upgrade or sell a
// tower. Options the player cannot afford are listed but disabled.
func (g *Game) Menu(tile grid.Tile) []MenuOption {
	score := g.ECS.GameState.Score
	switch piece := g.Board.PieceAt(tile).(type) {
	case *component.Terrain:
		if !piece.Buildable() {
			return nil
		}
		def, err := g.Library.Tower(g.Library.BaseTower)
		if err != nil {
			return nil
		}
		return []MenuOption{{
			Action:  ActionPlace,
			TowerID: def.ID,
			Label:   fmt.Sprintf("Build %s (%d)", def.Name, def.Cost),
			Cost:    def.Cost,
			Enabled: def.Cost <= score,
		}}
	case *component.Tower:
		var opts []MenuOption
		for _, id := range piece.Upgrades {
			def, err := g.Library.Tower(id)
			if err != nil {
				continue
			}
			opts = append(opts, MenuOption{
				Action:  ActionUpgrade,
				TowerID: def.ID,
				Label:   fmt.Sprintf("Upgrade to %s (%d)", def.Name, def.Cost),
				Cost:    def.Cost,
				Enabled: def.Cost <= score,
			})
		}
		refund := piece.SellPrice()
		return append(opts, MenuOption{
			Action:  ActionSell,
			TowerID: piece.DefID,
			Label:   fmt.Sprintf("Sell %s (+%d)", piece.Name, refund),
			Cost:    -refund,
			Enabled: true,
		})
	}
	return nil
}

// Apply performs a menu option on tile.
func (g *Game) Apply(tile grid.Tile, opt MenuOption) error {
	switch opt.Action {
	case ActionPlace:
		return g.PlaceTower(tile)
	case ActionUpgrade:
		return g.UpgradeTower(tile, opt.TowerID)
	case ActionSell:
		return g.SellTower(tile)
	}
	return fmt.Errorf("unknown menu action %d", opt.Action)
}
