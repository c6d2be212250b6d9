package elements

import (
	"fmt"

	"bim-service/internal/bim/ifc"
	"bim-service/internal/bim/models"
	"bim-service/internal/bim/registry"
	"bim-service/internal/bim/transform"
)

// ============================================================
// Door Builder
// ============================================================
//
// Дверь собирается из двух выдавленных тел: полотно (panel) и
// коробка (lining) вокруг проема. Оба тела получают свой стиль.
// swingRotation на размещение не влияет — дверь ориентируется
// вдоль мировой оси X, как и в исходной реализации.

type DoorBuilder struct{}

func NewDoorBuilder() *DoorBuilder {
	return &DoorBuilder{}
}

func (b *DoorBuilder) Build(ctx *ifc.Context, payload models.ElementPayload) (*registry.BuiltEntity, error) {
	p := payload.Door
	if p == nil {
		return nil, registry.Validationf("door payload is empty")
	}
	if err := validateDims("doorDimensions", p.DoorDimensions); err != nil {
		return nil, err
	}
	if err := validateDims("frameDimensions", p.FrameDimensions); err != nil {
		return nil, err
	}

	// ogid делает имя уникальным при повторных генерациях.
	name := p.LabelName
	if p.OGID != "" {
		name = fmt.Sprintf("%s_%s", p.LabelName, p.OGID)
	}

	pos := transform.ToModel(transform.Point3{
		X: p.DoorPosition.X,
		Y: p.DoorPosition.Y,
		Z: p.DoorPosition.Z,
	})

	f := ctx.Model

	// Полотно: прямоугольный профиль ширина×толщина, выдавленный на высоту.
	panelProfile := f.RectangleProfile(p.DoorDimensions.Width, p.DoorDimensions.Thickness)
	panelPos := f.Axis2Placement3D(f.CartesianPoint3(0, 0, 0), 0, 0)
	panel := f.ExtrudedAreaSolid(panelProfile, panelPos, p.DoorDimensions.Height)

	// Коробка: профиль шире полотна на две стойки, глубина — толщина коробки.
	liningWidth := p.DoorDimensions.Width + 2*p.FrameDimensions.Width
	liningProfile := f.RectangleProfile(liningWidth, p.FrameDimensions.Thickness)
	liningPos := f.Axis2Placement3D(f.CartesianPoint3(0, 0, 0), 0, 0)
	lining := f.ExtrudedAreaSolid(liningProfile, liningPos, p.FrameDimensions.Height)

	panelStyle := f.SurfaceStyle(fmt.Sprintf("%s_PanelStyle", name), transform.IntToRGB(p.DoorColor))
	frameStyle := f.SurfaceStyle(fmt.Sprintf("%s_FrameStyle", name), transform.IntToRGB(p.FrameColor))
	f.StyleItem(panel, panelStyle)
	f.StyleItem(lining, frameStyle)

	shape := f.ShapeRepresentation(ctx.Body, []ifc.Ref{panel, lining})

	location := f.CartesianPoint3(pos.X, pos.Y, pos.Z)
	axis := f.Direction3(0, 0, 1)
	refDir := f.Direction3(1, 0, 0)
	placement := f.LocalPlacement(f.Axis2Placement3D(location, axis, refDir))

	door := f.Add("IfcDoor",
		ifc.NewGlobalID(), nil, name, nil, nil, placement, shape, nil,
		p.DoorDimensions.Height, p.DoorDimensions.Width, nil, nil, nil)

	ctx.ContainInStorey(door)

	return &registry.BuiltEntity{
		Entity: door,
		Label:  fmt.Sprintf("%s:%s", models.TypeDoor, name),
	}, nil
}

func validateDims(field string, d models.Dimensions3D) error {
	if d.Width <= 0 || d.Height <= 0 || d.Thickness <= 0 {
		return registry.Validationf("%s: width, height and thickness must be positive", field)
	}
	return nil
}

var _ registry.Builder = (*DoorBuilder)(nil)
