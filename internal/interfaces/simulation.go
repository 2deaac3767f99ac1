// internal/interfaces/simulation.go
package interfaces

// Simulation — поверхность игрового ядра, достаточная для машин состояний
// клиента. Состояния не знают о внутренностях ядра и не импортируют app.
type Simulation interface {
	Update()
	PlayerHealth() int
	EnemyCount() int
	Frame() uint64
}
