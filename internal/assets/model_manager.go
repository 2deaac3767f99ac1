// internal/assets/model_manager.go
package assets

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go-arena-survival/internal/defs"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelManager управляет загрузкой, кэшированием и выгрузкой 3D-моделей
// врагов. Модели необязательны: при отсутствии файла рендер падает обратно
// на примитивы.
type ModelManager struct {
	models map[string]rl.Model
}

// NewModelManager создает новый экземпляр ModelManager.
func NewModelManager() *ModelManager {
	return &ModelManager{
		models: make(map[string]rl.Model),
	}
}

// loadSingleModel безопасно загружает одну модель и ее текстуру.
func (m *ModelManager) loadSingleModel(id string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("FATAL: Raylib panicked while loading model for '%s'. This model is likely corrupt. Skipping. Panic: %v", id, r)
		}
	}()

	if _, ok := m.models[id]; ok {
		return
	}

	modelPath := filepath.Join("assets", "models", fmt.Sprintf("%s.obj", id))
	if _, err := os.Stat(modelPath); err != nil {
		return // модели нет, рисуем примитив
	}
	model := rl.LoadModel(modelPath)
	if model.MeshCount == 0 {
		log.Printf("WARNING: Failed to load model for %s from path %s. It might be invalid or empty.", id, modelPath)
		return
	}

	// По соглашению, ищем текстуру с таким же ID в папке textures
	texturePath := filepath.Join("assets", "textures", fmt.Sprintf("%s.png", id))
	if _, err := os.Stat(texturePath); err == nil {
		texture := rl.LoadTexture(texturePath)
		if texture.ID > 0 {
			rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, texture)
		} else {
			log.Printf("WARNING: Failed to load texture for model %s from %s", id, texturePath)
		}
	}

	m.models[id] = model
	log.Printf("Successfully loaded model for %s", id)
}

// LoadEnemyModels загружает модели для всех известных типов врагов.
func (m *ModelManager) LoadEnemyModels(library map[string]defs.EnemyDefinition) {
	for id := range library {
		m.loadSingleModel(id)
	}
}

// Cleanup выгружает все загруженные модели.
func (m *ModelManager) Cleanup() {
	for id, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, id)
	}
}

// GetModel возвращает модель по ID определения врага.
func (m *ModelManager) GetModel(id string) (rl.Model, bool) {
	model, ok := m.models[id]
	return model, ok
}
