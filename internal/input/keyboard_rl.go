// internal/input/keyboard_rl.go
package input

import rl "github.com/gen2brain/raylib-go/raylib"

// KeyboardRL — провайдер ввода поверх клавиатуры raylib.
// WASD — движение, стрелки — камера, пробел — прыжок.
type KeyboardRL struct{}

func NewKeyboardRL() *KeyboardRL {
	return &KeyboardRL{}
}

func (k *KeyboardRL) Held(a Action) bool {
	switch a {
	case MoveForward:
		return rl.IsKeyDown(rl.KeyW)
	case MoveBackward:
		return rl.IsKeyDown(rl.KeyS)
	case MoveLeft:
		return rl.IsKeyDown(rl.KeyA)
	case MoveRight:
		return rl.IsKeyDown(rl.KeyD)
	case CameraLeft:
		return rl.IsKeyDown(rl.KeyLeft)
	case CameraRight:
		return rl.IsKeyDown(rl.KeyRight)
	case CameraUp:
		return rl.IsKeyDown(rl.KeyUp)
	case CameraDown:
		return rl.IsKeyDown(rl.KeyDown)
	}
	// Нераспознанное действие молча игнорируется.
	return false
}

func (k *KeyboardRL) JumpPressed() bool {
	return rl.IsKeyPressed(rl.KeySpace)
}
