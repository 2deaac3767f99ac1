// internal/system/visual_effect.go
package system

import (
	"go-arena-survival/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update уменьшает счётчики вспышек урона. Счётчик в кадрах и живёт в
// общем цикле обновления: никаких отложенных таймеров, которые могли бы
// сработать после удаления сущности.
func (s *VisualEffectSystem) Update() {
	for id, flash := range s.ecs.DamageFlashes {
		flash.FramesLeft--
		if flash.FramesLeft <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}
}
