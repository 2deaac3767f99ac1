// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
// Счётчик в кадрах, уменьшается системой визуальных эффектов.
type DamageFlash struct {
	FramesLeft int
}
