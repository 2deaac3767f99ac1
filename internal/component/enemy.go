// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID      string  // ID из enemies.json
	Speed      float32 // единиц на кадр
	HalfExtent float32 // половина стороны коллизионного куба
	Alive      bool    // false — враг помечен на удаление в конце кадра
}
