package registry

import (
	"fmt"
	"sort"
	"strings"

	"bim-service/internal/bim/ifc"
	"bim-service/internal/bim/models"
)

// ============================================================
// Builder Registry
// ============================================================
//
// Реестр заполняется один раз при старте процесса (elements.Discover)
// и дальше только читается, поэтому конкурентный доступ на чтение
// безопасен без блокировок.

// BuiltEntity — результат работы билдера: ссылка на созданную
// сущность модели и метка вида "<TYPE>:<name>" для отчета.
type BuiltEntity struct {
	Entity ifc.Ref
	Label  string
}

// Builder — интерфейс плагина элемента. Билдер читает контекст
// иерархии (этаж, подконтекст Body), но никогда не создает его сам.
type Builder interface {
	Build(ctx *ifc.Context, payload models.ElementPayload) (*BuiltEntity, error)
}

// Registry отображает дискриминатор типа на билдер.
type Registry struct {
	builders map[string]Builder
}

// New возвращает пустой реестр.
func New() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register связывает тег типа с билдером. Повторная регистрация
// одного тега — ошибка конфигурации, фатальная на старте.
func (r *Registry) Register(typeTag string, b Builder) error {
	key := strings.ToUpper(typeTag)
	if _, exists := r.builders[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, key)
	}
	r.builders[key] = b
	return nil
}

// Get возвращает билдер по тегу. Отсутствие билдера — ожидаемое
// состояние для объявленных, но не реализованных типов; наружу
// отдается ErrNotRegistered, а не паника или nil.
func (r *Registry) Get(typeTag string) (Builder, error) {
	key := strings.ToUpper(typeTag)
	b, ok := r.builders[key]
	if !ok {
		available := strings.Join(r.Available(), ", ")
		if available == "" {
			available = "(none)"
		}
		return nil, fmt.Errorf("%w: no builder for type %q, available: %s",
			ErrNotRegistered, key, available)
	}
	return b, nil
}

// Available возвращает отсортированный список зарегистрированных тегов.
func (r *Registry) Available() []string {
	tags := make([]string, 0, len(r.builders))
	for tag := range r.builders {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
