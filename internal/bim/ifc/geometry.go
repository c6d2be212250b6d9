package ifc

import (
	"fmt"
	"math"

	"bim-service/internal/bim/transform"
)

// ============================================================
// Geometry helpers
// ============================================================

// PolygonEpsilon — допуск для проверки вырожденного контура.
const PolygonEpsilon = 1e-9

// CartesianPoint3 создает IfcCartesianPoint в 3D.
func (f *File) CartesianPoint3(x, y, z float64) Ref {
	return f.Add("IfcCartesianPoint", []float64{x, y, z})
}

// CartesianPoint2 создает IfcCartesianPoint в 2D.
func (f *File) CartesianPoint2(x, y float64) Ref {
	return f.Add("IfcCartesianPoint", []float64{x, y})
}

// Direction3 создает IfcDirection в 3D.
func (f *File) Direction3(x, y, z float64) Ref {
	return f.Add("IfcDirection", []float64{x, y, z})
}

// Axis2Placement3D создает размещение: точка + ось Z + опорное направление X.
// Нулевые ссылки осей означают мировые оси.
func (f *File) Axis2Placement3D(location, axis, refDirection Ref) Ref {
	var a, r any
	if axis != 0 {
		a = axis
	}
	if refDirection != 0 {
		r = refDirection
	}
	return f.Add("IfcAxis2Placement3D", location, a, r)
}

// LocalPlacement создает IfcLocalPlacement без родителя.
func (f *File) LocalPlacement(relativePlacement Ref) Ref {
	return f.Add("IfcLocalPlacement", nil, relativePlacement)
}

// ============================================================
// Profiles & solids
// ============================================================

// ClosedProfile строит IfcArbitraryClosedProfileDef из 2D-точек контура.
// Контур замыкается явно: последняя точка полилинии повторяет первую.
func (f *File) ClosedProfile(pts [][2]float64) Ref {
	refs := make([]Ref, 0, len(pts)+1)
	for _, p := range pts {
		refs = append(refs, f.CartesianPoint2(p[0], p[1]))
	}
	refs = append(refs, refs[0])
	polyline := f.Add("IfcPolyline", refs)
	return f.Add("IfcArbitraryClosedProfileDef", Enum("AREA"), nil, polyline)
}

// RectangleProfile строит IfcRectangleProfileDef с центром в начале координат.
func (f *File) RectangleProfile(xDim, yDim float64) Ref {
	origin := f.CartesianPoint2(0, 0)
	placement := f.Add("IfcAxis2Placement2D", origin, nil)
	return f.Add("IfcRectangleProfileDef", Enum("AREA"), nil, placement, xDim, yDim)
}

// ExtrudedAreaSolid выдавливает профиль вдоль локальной оси Z на глубину depth.
func (f *File) ExtrudedAreaSolid(profile, position Ref, depth float64) Ref {
	direction := f.Direction3(0, 0, 1)
	return f.Add("IfcExtrudedAreaSolid", profile, position, direction, depth)
}

// ShapeRepresentation оборачивает solid-ы в представление Body/SweptSolid.
func (f *File) ShapeRepresentation(bodyCtx Ref, items []Ref) Ref {
	shape := f.Add("IfcShapeRepresentation", bodyCtx, "Body", "SweptSolid", items)
	return f.Add("IfcProductDefinitionShape", nil, nil, []Ref{shape})
}

// ============================================================
// Planar polygon math
// ============================================================

// PlanarProfile — профильный контур в локальной системе плоскости:
// точка отсчета, ортонормированный базис (U, V) и нормаль.
type PlanarProfile struct {
	Origin transform.Point3
	U      transform.Point3
	V      transform.Point3
	Normal transform.Point3
	Points [][2]float64 // контур в координатах (U, V)
	Area   float64      // беззнаковая площадь контура
}

// PlanarizePolygon проецирует контур (≥3 точки, уже в модельных
// координатах) на его плоскость. Нормаль считается методом Ньюэлла,
// непланарный вход не исправляется. Коллинеарный или почти нулевой
// по площади контур — ошибка.
func PlanarizePolygon(pts []transform.Point3) (*PlanarProfile, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("polygon requires at least 3 points, got %d", len(pts))
	}

	n := newellNormal(pts)
	nLen := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if nLen < PolygonEpsilon {
		return nil, fmt.Errorf("degenerate polygon: points are collinear")
	}
	n = scale(n, 1/nLen)

	// Базис плоскости: U — первое ребро, спроецированное на плоскость.
	origin := pts[0]
	var u transform.Point3
	for i := 1; i < len(pts); i++ {
		edge := sub(pts[i], origin)
		edge = sub(edge, scale(n, dot(edge, n)))
		l := math.Sqrt(dot(edge, edge))
		if l > PolygonEpsilon {
			u = scale(edge, 1/l)
			break
		}
	}
	v := cross(n, u)

	local := make([][2]float64, len(pts))
	for i, p := range pts {
		d := sub(p, origin)
		local[i] = [2]float64{dot(d, u), dot(d, v)}
	}

	area := shoelaceArea(local)
	if math.Abs(area) < PolygonEpsilon {
		return nil, fmt.Errorf("degenerate polygon: zero area")
	}

	return &PlanarProfile{
		Origin: origin,
		U:      u,
		V:      v,
		Normal: n,
		Points: local,
		Area:   math.Abs(area),
	}, nil
}

// newellNormal — нормаль многоугольника методом Ньюэлла.
func newellNormal(pts []transform.Point3) transform.Point3 {
	var n transform.Point3
	for i := range pts {
		p := pts[i]
		q := pts[(i+1)%len(pts)]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	return n
}

// shoelaceArea — знаковая площадь 2D-контура.
func shoelaceArea(pts [][2]float64) float64 {
	area := 0.0
	for i := range pts {
		p := pts[i]
		q := pts[(i+1)%len(pts)]
		area += p[0]*q[1] - q[0]*p[1]
	}
	return area / 2
}

func sub(a, b transform.Point3) transform.Point3 {
	return transform.Point3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func scale(a transform.Point3, s float64) transform.Point3 {
	return transform.Point3{X: a.X * s, Y: a.Y * s, Z: a.Z * s}
}

func dot(a, b transform.Point3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func cross(a, b transform.Point3) transform.Point3 {
	return transform.Point3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
