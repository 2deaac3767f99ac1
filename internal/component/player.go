// internal/component/player.go
package component

// Player хранит состояние, специфичное для игрока: счётчик прыжков,
// таймер неуязвимости после урона и признак контакта с землёй.
type Player struct {
	JumpsLeft      int  // оставшиеся прыжки, [0, MaxJumps]
	Jumping        bool // игрок в фазе прыжка
	Grounded       bool // стоит на земле или на препятствии
	DamageCooldown int  // кадров до следующего возможного урона
}
