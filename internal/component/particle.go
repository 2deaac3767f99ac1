// internal/component/particle.go
package component

// Particle — частица эффекта смерти врага. Возраст строго растёт на
// единицу за кадр; при достижении Lifetime частица удаляется.
type Particle struct {
	Age      int
	Lifetime int
}
