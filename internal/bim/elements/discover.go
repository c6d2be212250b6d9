package elements

import (
	"bim-service/internal/bim/models"
	"bim-service/internal/bim/registry"
)

// ============================================================
// Builder discovery
// ============================================================

// Discover регистрирует статически известный список билдеров и
// возвращает заполненный реестр. Вызывается один раз на старте,
// до обработки запросов; дубликат тега — ошибка конфигурации.
//
// WINDOW объявлен в схеме, но билдера пока нет: реестр вернет для
// него ErrNotRegistered, и оркестратор превратит это в warning.
func Discover() (*registry.Registry, error) {
	reg := registry.New()

	builders := []struct {
		tag     string
		builder registry.Builder
	}{
		{models.TypeWall, NewWallBuilder()},
		{models.TypeDoor, NewDoorBuilder()},
	}

	for _, b := range builders {
		if err := reg.Register(b.tag, b.builder); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
