// internal/entity/ecs.go
package entity

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/types"
)

type ECS struct {
	Frame         uint64
	NextID        types.EntityID
	Transforms    map[types.EntityID]*component.Transform
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Players       map[types.EntityID]*component.Player
	Enemies       map[types.EntityID]*component.Enemy
	Particles     map[types.EntityID]*component.Particle
	Obstacles     map[types.EntityID]*component.Obstacle
	Renderables   map[types.EntityID]*component.Renderable
	DamageFlashes map[types.EntityID]*component.DamageFlash
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Transforms:    make(map[types.EntityID]*component.Transform),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Players:       make(map[types.EntityID]*component.Player),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Particles:     make(map[types.EntityID]*component.Particle),
		Obstacles:     make(map[types.EntityID]*component.Obstacle),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех карт компонентов. Вызывать только
// вне итерации по картам (двухфазное удаление: сначала собрать ID, потом
// удалить).
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Players, id)
	delete(ecs.Enemies, id)
	delete(ecs.Particles, id)
	delete(ecs.Obstacles, id)
	delete(ecs.Renderables, id)
	delete(ecs.DamageFlashes, id)
}
