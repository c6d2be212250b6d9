package ifc

import (
	"testing"

	"bim-service/internal/bim/transform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// PlanarizePolygon
// ---------------------------------------------------------------------------

func TestPlanarizePolygon_Square(t *testing.T) {
	t.Parallel()

	pts := []transform.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 2, Y: 2, Z: 0},
		{X: 0, Y: 2, Z: 0},
	}

	p, err := PlanarizePolygon(pts)
	require.NoError(t, err)

	assert.InDelta(t, 4.0, p.Area, 1e-9)
	// Нормаль квадрата в плоскости XY — ось Z (с точностью до знака).
	assert.InDelta(t, 1.0, p.Normal.Z*p.Normal.Z, 1e-9)
	assert.InDelta(t, 0.0, p.Normal.X, 1e-9)
	assert.InDelta(t, 0.0, p.Normal.Y, 1e-9)
	require.Len(t, p.Points, 4)
	// Первая точка контура — начало локальной системы.
	assert.Equal(t, [2]float64{0, 0}, p.Points[0])
}

func TestPlanarizePolygon_VerticalPlane(t *testing.T) {
	t.Parallel()

	// Прямоугольник 3×2 в плоскости XZ.
	pts := []transform.Point3{
		{X: 0, Y: 5, Z: 0},
		{X: 3, Y: 5, Z: 0},
		{X: 3, Y: 5, Z: 2},
		{X: 0, Y: 5, Z: 2},
	}

	p, err := PlanarizePolygon(pts)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, p.Area, 1e-9)
	assert.InDelta(t, 1.0, p.Normal.Y*p.Normal.Y, 1e-9)
}

func TestPlanarizePolygon_QuadArea(t *testing.T) {
	t.Parallel()

	// Контур стены из плана этажа (уже в модельных координатах).
	pts := []transform.Point3{
		{X: -5, Y: 2, Z: 0},
		{X: 5, Y: 2, Z: 0},
		{X: 5, Y: -5, Z: 0},
		{X: -2, Y: -5, Z: 0},
	}

	p, err := PlanarizePolygon(pts)
	require.NoError(t, err)
	assert.InDelta(t, 59.5, p.Area, 1e-9)
}

func TestPlanarizePolygon_TooFewPoints(t *testing.T) {
	t.Parallel()

	_, err := PlanarizePolygon([]transform.Point3{{X: 0}, {X: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 3 points")
}

func TestPlanarizePolygon_Collinear(t *testing.T) {
	t.Parallel()

	pts := []transform.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: 2, Y: 2, Z: 2},
		{X: 3, Y: 3, Z: 3},
	}
	_, err := PlanarizePolygon(pts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "degenerate")
}

func TestPlanarizePolygon_RepeatedPoint(t *testing.T) {
	t.Parallel()

	pts := []transform.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0},
	}
	_, err := PlanarizePolygon(pts)
	require.Error(t, err)
}

// ---------------------------------------------------------------------------
// Profile & solid helpers
// ---------------------------------------------------------------------------

func TestClosedProfile_ClosesPolyline(t *testing.T) {
	t.Parallel()

	f := NewFile()
	f.ClosedProfile([][2]float64{{0, 0}, {1, 0}, {1, 1}})

	polylines := f.FindByType("IfcPolyline")
	require.Len(t, polylines, 1)

	attrs := f.AttrsOf(polylines[0])
	require.Len(t, attrs, 1)
	pts, ok := attrs[0].([]Ref)
	require.True(t, ok)
	// 3 точки + явное замыкание на первую.
	require.Len(t, pts, 4)
	assert.Equal(t, pts[0], pts[3])
}

func TestExtrudedAreaSolid_Depth(t *testing.T) {
	t.Parallel()

	f := NewFile()
	profile := f.ClosedProfile([][2]float64{{0, 0}, {1, 0}, {1, 1}})
	position := f.Axis2Placement3D(f.CartesianPoint3(0, 0, 0), 0, 0)
	solid := f.ExtrudedAreaSolid(profile, position, 0.2)

	attrs := f.AttrsOf(solid)
	require.Len(t, attrs, 4)
	assert.Equal(t, 0.2, attrs[3])
}
