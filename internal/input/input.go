// internal/input/input.go
package input

// Action — логическое игровое действие. Ядро симуляции опрашивает
// действия, а не клавиши: раскладка остаётся на стороне платформы.
type Action int

const (
	MoveForward Action = iota
	MoveBackward
	MoveLeft
	MoveRight
	CameraLeft
	CameraRight
	CameraUp
	CameraDown
)

// Provider — контракт ввода для симуляции: опрос удерживаемых действий
// плюс дискретное событие прыжка. Прыжок — фронт нажатия, не удержание:
// чтобы прыгнуть снова, клавишу нужно отпустить и нажать ещё раз.
type Provider interface {
	Held(a Action) bool
	JumpPressed() bool
}
