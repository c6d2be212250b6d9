package transform

import (
	"fmt"
	"regexp"
)

// ============================================================
// Coordinate Transform
// ============================================================
//
// Клиент присылает координаты в системе Three.js (ось Y вверх),
// модель IFC использует ось Z вверх. Преобразование применяется
// ровно один раз — внутри билдера, схема хранит сырые координаты.

// Point3 — точка в трехмерном пространстве.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// ToModel переводит точку из клиентской системы (Y вверх) в модельную (Z вверх).
//
//	(x, y, z) → (x, -z, y)
func ToModel(p Point3) Point3 {
	return Point3{X: p.X, Y: -p.Z, Z: p.Y}
}

// ToClient — обратное преобразование, модельная система → клиентская.
//
//	(x, y, z) → (x, z, -y)
func ToClient(p Point3) Point3 {
	return Point3{X: p.X, Y: p.Z, Z: -p.Y}
}

// ============================================================
// Color
// ============================================================

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// RGB — нормализованный цвет, компоненты в диапазоне [0, 1].
type RGB struct {
	R float64
	G float64
	B float64
}

// ParseHexColor разбирает строку вида "#RRGGBB" в нормализованный RGB.
// Некорректный цвет — ошибка, молчаливой подмены не делаем.
func ParseHexColor(s string) (RGB, error) {
	if !hexColorRe.MatchString(s) {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b int
	_, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}, nil
}

// IntToRGB переводит целочисленный цвет (например 0xC7C7C7) в нормализованный RGB.
func IntToRGB(c int) RGB {
	return RGB{
		R: float64((c>>16)&0xFF) / 255.0,
		G: float64((c>>8)&0xFF) / 255.0,
		B: float64(c&0xFF) / 255.0,
	}
}
