package entity

import (
	"sort"

	"rising-tides/internal/component"
	"rising-tides/internal/types"
)

type ECS struct {
	GameTime float64
	NextID   types.EntityID
	Motions  map[types.EntityID]*component.Motion
	Bobbings map[types.EntityID]*component.Bobbing
	Ships    map[types.EntityID]*component.Ship
}

func NewECS() *ECS {
	return &ECS{
		NextID:   1,
		Motions:  make(map[types.EntityID]*component.Motion),
		Bobbings: make(map[types.EntityID]*component.Bobbing),
		Ships:    make(map[types.EntityID]*component.Ship),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Motions, id)
	delete(ecs.Bobbings, id)
	delete(ecs.Ships, id)
}

// Boats возвращает id всех сущностей с компонентом Motion по возрастанию
func (ecs *ECS) Boats() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Motions))
	for id := range ecs.Motions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
