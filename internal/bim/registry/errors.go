package registry

import (
	"errors"
	"fmt"
)

// ============================================================
// Error taxonomy
// ============================================================
//
// ErrDuplicateRegistration — фатальная конфигурационная ошибка старта.
// ErrNotRegistered, ValidationError, GeometryError — поэлементные,
// оркестратор превращает их в предупреждения и продолжает работу.

var (
	ErrDuplicateRegistration = errors.New("duplicate builder registration")
	ErrNotRegistered         = errors.New("builder not registered")
	ErrNoEntities            = errors.New("no elements could be built")
)

// ValidationError — некорректный payload дошел до билдера
// (мало точек, неположительная толщина, нечитаемый цвет).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// Validationf создает ValidationError с форматированием.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// GeometryError — вырожденная или непостроимая геометрия.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return "geometry: " + e.Reason
}

// Geometryf создает GeometryError с форматированием.
func Geometryf(format string, args ...any) error {
	return &GeometryError{Reason: fmt.Sprintf(format, args...)}
}
