// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-prevent/internal/component"
)

type EntityID uint64

// ECS owns every live unit and the shared game state. Towers and terrain live
// on the board itself, since the pathfinder reads them from there.
type ECS struct {
	NextID    EntityID
	Units     map[EntityID]*component.Unit
	GameState *component.GameState
}

func NewECS(score, lives int) *ECS {
	return &ECS{
		NextID: 1,
		Units:  make(map[EntityID]*component.Unit),
		GameState: &component.GameState{
			Phase: component.Playing,
			Score: score,
			Lives: lives,
		},
	}
}

func (ecs *ECS) NewEntity() EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

func (ecs *ECS) AddUnit(u *component.Unit) EntityID {
	id := ecs.NewEntity()
	ecs.Units[id] = u
	return id
}

// UnitIDs returns live unit IDs in creation order.
func (ecs *ECS) UnitIDs() []EntityID {
	ids := make([]EntityID, 0, len(ecs.Units))
	for id := range ecs.Units {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ActiveUnits counts units that have not reached the exit.
func (ecs *ECS) ActiveUnits() int {
	n := 0
	for _, u := range ecs.Units {
		if !u.Done {
			n++
		}
	}
	return n
}

// RemoveDone deletes finished units and returns how many were removed.
func (ecs *ECS) RemoveDone() int {
	removed := 0
	for id, u := range ecs.Units {
		if u.Done {
			delete(ecs.Units, id)
			removed++
		}
	}
	return removed
}
