package ifc

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ============================================================
// IFC Model
// ============================================================
//
// Минимальная in-memory модель IFC4 c сериализацией в STEP
// (ISO-10303-21). Сущности хранятся как плоские записи
// #id=IFCTYPE(attr, ...); строгой проверки схемы нет, корректность
// обеспечивают хелперы context.go / geometry.go / style.go.

// Ref — ссылка на сущность модели (#n). Нулевое значение — не задано.
type Ref int

// Enum — перечисление STEP, сериализуется как .VALUE.
type Enum string

// Star — производный атрибут, сериализуется как *.
// Незаполненные атрибуты передаются как nil и сериализуются в $.
type Star struct{}

type entity struct {
	id    Ref
	typ   string
	attrs []any
}

// File — IFC модель: упорядоченный набор сущностей.
type File struct {
	entities []entity
	nextID   Ref
	now      func() time.Time
}

// NewFile создает пустую модель схемы IFC4.
func NewFile() *File {
	return &File{nextID: 1, now: time.Now}
}

// Add добавляет сущность и возвращает ссылку на нее.
func (f *File) Add(typ string, attrs ...any) Ref {
	id := f.nextID
	f.nextID++
	f.entities = append(f.entities, entity{id: id, typ: typ, attrs: attrs})
	return id
}

// Len возвращает число сущностей в модели.
func (f *File) Len() int {
	return len(f.entities)
}

// TypeOf возвращает тип сущности по ссылке ("" если ссылка не существует).
func (f *File) TypeOf(r Ref) string {
	for _, e := range f.entities {
		if e.id == r {
			return e.typ
		}
	}
	return ""
}

// AttrsOf возвращает атрибуты сущности (nil если ссылка не существует).
func (f *File) AttrsOf(r Ref) []any {
	for _, e := range f.entities {
		if e.id == r {
			return e.attrs
		}
	}
	return nil
}

// FindByType возвращает ссылки на все сущности указанного типа.
func (f *File) FindByType(typ string) []Ref {
	var refs []Ref
	for _, e := range f.entities {
		if e.typ == typ {
			refs = append(refs, e.id)
		}
	}
	return refs
}

// CountByType считает сущности указанного типа.
func (f *File) CountByType(typ string) int {
	n := 0
	for _, e := range f.entities {
		if e.typ == typ {
			n++
		}
	}
	return n
}

// ============================================================
// STEP serialization
// ============================================================

// WriteTo сериализует модель в формат STEP.
func (f *File) WriteTo(w io.Writer, fileName string) error {
	var sb strings.Builder

	ts := f.now().UTC().Format("2006-01-02T15:04:05")

	sb.WriteString("ISO-10303-21;\n")
	sb.WriteString("HEADER;\n")
	sb.WriteString("FILE_DESCRIPTION(('ViewDefinition [CoordinationView]'),'2;1');\n")
	fmt.Fprintf(&sb, "FILE_NAME(%s,'%s',(''),(''),'','','');\n", encodeString(fileName), ts)
	sb.WriteString("FILE_SCHEMA(('IFC4'));\n")
	sb.WriteString("ENDSEC;\n")
	sb.WriteString("DATA;\n")

	for _, e := range f.entities {
		fmt.Fprintf(&sb, "#%d=%s(%s);\n", e.id, strings.ToUpper(e.typ), encodeAttrs(e.attrs))
	}

	sb.WriteString("ENDSEC;\n")
	sb.WriteString("END-ISO-10303-21;\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func encodeAttrs(attrs []any) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = encodeValue(a)
	}
	return strings.Join(parts, ",")
}

func encodeValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "$"
	case Star:
		return "*"
	case Ref:
		return fmt.Sprintf("#%d", t)
	case Enum:
		return fmt.Sprintf(".%s.", t)
	case string:
		return encodeString(t)
	case bool:
		if t {
			return ".T."
		}
		return ".F."
	case int:
		return strconv.Itoa(t)
	case float64:
		return encodeFloat(t)
	case []Ref:
		parts := make([]string, len(t))
		for i, r := range t {
			parts[i] = encodeValue(r)
		}
		return "(" + strings.Join(parts, ",") + ")"
	case []float64:
		parts := make([]string, len(t))
		for i, f := range t {
			parts[i] = encodeFloat(f)
		}
		return "(" + strings.Join(parts, ",") + ")"
	case []any:
		parts := make([]string, len(t))
		for i, a := range t {
			parts[i] = encodeValue(a)
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return fmt.Sprintf("%v", t)
	}
}

// encodeFloat пишет вещественное число всегда с точкой, как требует STEP.
func encodeFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += "."
	}
	return s
}

// encodeString экранирует апострофы и обратные слэши.
func encodeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", "''")
	return "'" + s + "'"
}
