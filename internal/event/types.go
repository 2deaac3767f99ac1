// internal/event/types.go
package event

const (
	EnemySpawned  EventType = "EnemySpawned"  // Враг появился на арене
	EnemyDied     EventType = "EnemyDied"     // Враг уничтожен, Data — rl.Vector3 последней позиции
	PlayerDamaged EventType = "PlayerDamaged" // Игрок получил урон, Data — int нового здоровья
)
