package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ============================================================
// Element type tags
// ============================================================

const (
	TypeWall   = "WALL"
	TypeWindow = "WINDOW"
	TypeDoor   = "DOOR"
)

// DeclaredTypes — все типы, известные схеме. Наличие типа в схеме
// еще не означает наличие зарегистрированного билдера.
func DeclaredTypes() []string {
	return []string{TypeDoor, TypeWall, TypeWindow}
}

// ============================================================
// Geometry primitives
// ============================================================

// Point3D — точка в клиентской системе координат (Three.js, ось Y вверх).
// Преобразование в модельную систему (Z вверх) выполняется в билдере,
// схема всегда хранит сырые координаты фронтенда.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Dimensions3D — габариты элемента (двери, рамы).
type Dimensions3D struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`
}

// ============================================================
// Element payloads
// ============================================================

// WallPayload — стена, заданная замкнутым контуром точек.
// Последняя точка соединяется с первой, контур образует профиль,
// который выдавливается на толщину стены.
type WallPayload struct {
	Name          string    `json:"name"`
	Points        []Point3D `json:"points"`
	WallThickness float64   `json:"wallThickness"`
	WallColor     string    `json:"wallColor"`
}

// WindowPayload — заглушка схемы для будущего плагина окон.
type WindowPayload struct {
	Name       string  `json:"name"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	SillHeight float64 `json:"sillHeight"`
	Position   Point3D `json:"position"`
}

// DoorPayload — дверь: полотно + коробка.
type DoorPayload struct {
	LabelName       string       `json:"labelName"`
	DoorPosition    Point3D      `json:"doorPosition"`
	DoorDimensions  Dimensions3D `json:"doorDimensions"`
	FrameDimensions Dimensions3D `json:"frameDimensions"`
	FrameColor      int          `json:"frameColor"`
	DoorColor       int          `json:"doorColor"`
	SwingRotation   float64      `json:"swingRotation"`
	IsOpen          bool         `json:"isOpen"`
	DoorMaterial    string       `json:"doorMaterial"`
	OGID            string       `json:"ogid,omitempty"`
}

// ============================================================
// Discriminated union
// ============================================================

// ElementPayload — один элемент запроса. Вариант выбирается по полю
// type; неизвестный тег валиден на уровне схемы и отсекается только
// при диспетчеризации (runtime warning, а не ошибка парсинга).
type ElementPayload struct {
	Type   string
	Wall   *WallPayload
	Window *WindowPayload
	Door   *DoorPayload
}

// UnmarshalJSON читает поле type и декодирует соответствующий вариант.
func (e *ElementPayload) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	e.Type = strings.ToUpper(strings.TrimSpace(head.Type))
	if e.Type == "" {
		return fmt.Errorf("element payload: missing type discriminator")
	}

	switch e.Type {
	case TypeWall:
		w := WallPayload{
			Name:      Defaults().Wall.Name,
			WallColor: Defaults().Wall.Color,
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		e.Wall = &w
	case TypeWindow:
		d := Defaults().Window
		w := WindowPayload{
			Name:       d.Name,
			Width:      d.Width,
			Height:     d.Height,
			SillHeight: d.SillHeight,
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		e.Window = &w
	case TypeDoor:
		d := DoorPayload{
			LabelName: Defaults().Door.Name,
			DoorColor: Defaults().Door.PanelColor,
		}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		e.Door = &d
	default:
		// Тип останется нераспознанным до диспетчеризации.
	}
	return nil
}

// MarshalJSON кодирует активный вариант вместе с дискриминатором.
func (e ElementPayload) MarshalJSON() ([]byte, error) {
	encode := func(v any) ([]byte, error) {
		body, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		tag, _ := json.Marshal(map[string]string{"type": e.Type})
		if len(body) <= 2 {
			return tag, nil
		}
		// Вклеиваем поле type в начало объекта.
		out := append([]byte(`{"type":`), []byte(fmt.Sprintf("%q,", e.Type))...)
		out = append(out, body[1:]...)
		return out, nil
	}

	switch {
	case e.Wall != nil:
		return encode(e.Wall)
	case e.Window != nil:
		return encode(e.Window)
	case e.Door != nil:
		return encode(e.Door)
	default:
		return json.Marshal(map[string]string{"type": e.Type})
	}
}

// Name возвращает отображаемое имя элемента.
func (e ElementPayload) Name() string {
	switch {
	case e.Wall != nil:
		return e.Wall.Name
	case e.Window != nil:
		return e.Window.Name
	case e.Door != nil:
		return e.Door.LabelName
	default:
		return strings.ToLower(e.Type)
	}
}

// ============================================================
// Top-level request
// ============================================================

// ProjectMetadata — необязательные имена для иерархии проекта.
type ProjectMetadata struct {
	ProjectName  string `json:"projectName"`
	SiteName     string `json:"siteName"`
	BuildingName string `json:"buildingName"`
	StoreyName   string `json:"storeyName"`
}

// WithDefaults подставляет значения по умолчанию вместо пустых полей.
func (m ProjectMetadata) WithDefaults() ProjectMetadata {
	d := Defaults().Metadata
	if m.ProjectName == "" {
		m.ProjectName = d.ProjectName
	}
	if m.SiteName == "" {
		m.SiteName = d.SiteName
	}
	if m.BuildingName == "" {
		m.BuildingName = d.BuildingName
	}
	if m.StoreyName == "" {
		m.StoreyName = d.StoreyName
	}
	return m
}

// GenerateRequest — вход POST /generate.
type GenerateRequest struct {
	Elements []ElementPayload `json:"elements"`
	Metadata *ProjectMetadata `json:"metadata,omitempty"`
}

// ResolveMetadata возвращает метаданные запроса с дефолтами.
func (r *GenerateRequest) ResolveMetadata() ProjectMetadata {
	if r.Metadata == nil {
		return ProjectMetadata{}.WithDefaults()
	}
	return r.Metadata.WithDefaults()
}

// Validate проверяет верхний уровень запроса.
func (r *GenerateRequest) Validate() error {
	if len(r.Elements) == 0 {
		return fmt.Errorf("elements: at least one element required")
	}
	return nil
}
