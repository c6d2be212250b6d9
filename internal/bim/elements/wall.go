package elements

import (
	"fmt"

	"bim-service/internal/bim/ifc"
	"bim-service/internal/bim/models"
	"bim-service/internal/bim/registry"
	"bim-service/internal/bim/transform"
)

// ============================================================
// Wall Builder
// ============================================================
//
// Стена задается замкнутым контуром точек (≥3) и толщиной.
// Контур после преобразования координат образует профиль, который
// выдавливается на толщину вдоль нормали плоскости профиля —
// получается IfcExtrudedAreaSolid (SweptSolid).

type WallBuilder struct{}

func NewWallBuilder() *WallBuilder {
	return &WallBuilder{}
}

func (b *WallBuilder) Build(ctx *ifc.Context, payload models.ElementPayload) (*registry.BuiltEntity, error) {
	p := payload.Wall
	if p == nil {
		return nil, registry.Validationf("wall payload is empty")
	}
	if len(p.Points) < 3 {
		return nil, registry.Validationf("wall %q: at least 3 points required, got %d", p.Name, len(p.Points))
	}
	if p.WallThickness <= 0 {
		return nil, registry.Validationf("wall %q: thickness must be positive, got %g", p.Name, p.WallThickness)
	}
	rgb, err := transform.ParseHexColor(p.WallColor)
	if err != nil {
		return nil, registry.Validationf("wall %q: %v", p.Name, err)
	}

	// Преобразование Three.js (Y вверх) → IFC (Z вверх); исходный
	// payload не трогаем.
	pts := make([]transform.Point3, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = transform.ToModel(transform.Point3{X: pt.X, Y: pt.Y, Z: pt.Z})
	}

	profile, err := ifc.PlanarizePolygon(pts)
	if err != nil {
		return nil, registry.Geometryf("wall %q: %v", p.Name, err)
	}

	f := ctx.Model

	// Профиль в локальной плоскости, выдавливание вдоль нормали.
	prof := f.ClosedProfile(profile.Points)
	location := f.CartesianPoint3(profile.Origin.X, profile.Origin.Y, profile.Origin.Z)
	axis := f.Direction3(profile.Normal.X, profile.Normal.Y, profile.Normal.Z)
	refDir := f.Direction3(profile.U.X, profile.U.Y, profile.U.Z)
	position := f.Axis2Placement3D(location, axis, refDir)
	solid := f.ExtrudedAreaSolid(prof, position, p.WallThickness)

	style := f.SurfaceStyle(fmt.Sprintf("%s_style", p.Name), rgb)
	f.StyleItem(solid, style)

	shape := f.ShapeRepresentation(ctx.Body, []ifc.Ref{solid})
	placement := f.LocalPlacement(f.Axis2Placement3D(f.CartesianPoint3(0, 0, 0), 0, 0))
	wall := f.Add("IfcWall",
		ifc.NewGlobalID(), nil, p.Name, nil, nil, placement, shape, nil, nil)

	ctx.ContainInStorey(wall)

	return &registry.BuiltEntity{
		Entity: wall,
		Label:  fmt.Sprintf("%s:%s", models.TypeWall, p.Name),
	}, nil
}

var _ registry.Builder = (*WallBuilder)(nil)
