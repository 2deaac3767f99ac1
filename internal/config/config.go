// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

// Все скорости и ускорения заданы в единицах на кадр (фиксированный шаг,
// 60 кадров в секунду). Симуляция сознательно привязана к кадру, а не ко
// времени: так вела себя оригинальная игра.
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TargetFPS    = 60

	// Игрок
	PlayerMaxHealth  = 100
	PlayerHalfWidth  = 0.5
	PlayerHalfHeight = 1.0 // Y прижимается к этому значению на земле
	PlayerSpeed      = 0.15
	Gravity          = 0.015
	JumpImpulse      = 0.3
	MaxJumps         = 2 // двойной прыжок

	// Урон от контакта с врагом
	EnemyContactDamage   = 10
	DamageCooldownFrames = 60

	// Ударная зона игрока
	HitboxForwardOffset = 1.5
	HitboxHalfExtent    = 0.7
	HitboxDamage        = 2 // за каждый кадр пересечения

	// Спавн врагов
	MaxEnemies     = 10
	SpawnInterval  = 180
	SpawnMinRadius = 15.0
	SpawnMaxRadius = 25.0

	// Частицы
	ParticlesPerBurst   = 12
	ParticleLifetime    = 40
	ParticleSpread      = 0.2
	ParticleGravity     = 0.01
	ParticleBaseScale   = 0.25
	ParticleMinScale    = 0.05
	ParticleMinOpacity  = 0.1
	ParticleTumbleYaw   = 0.12
	ParticleTumblePitch = 0.09
	ParticleTumbleRoll  = 0.07

	// Камера
	CameraRotateStep = 0.05
	CameraMaxPitch   = math.Pi / 3
	CameraRadius     = 10.0
	CameraHeight     = 5.0
	CameraTargetLift = 1.0

	// Вспышка урона
	DamageFlashFrames = 8

	// Пороговые значения здоровья для индикатора
	HealthCautionThreshold  = 60
	HealthCriticalThreshold = 30

	// Размер арены (используется только отрисовкой пола и сетки)
	ArenaExtent = 40.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	FloorColor      = color.RGBA{36, 40, 52, 255}
	PlayerColor     = color.RGBA{70, 130, 180, 255}
	HitboxColor     = color.RGBA{240, 240, 240, 60}
	EnemyColor      = color.RGBA{170, 40, 40, 255}
	ObstacleColor   = color.RGBA{90, 90, 110, 255}
	ParticleColor   = color.RGBA{255, 160, 40, 255}
	FlashColor      = color.RGBA{255, 255, 255, 255}

	HealthyColor  = color.RGBA{50, 205, 50, 255}
	CautionColor  = color.RGBA{255, 215, 0, 255}
	CriticalColor = color.RGBA{220, 60, 60, 255}
	HUDTextColor  = color.RGBA{240, 240, 240, 255}
)
