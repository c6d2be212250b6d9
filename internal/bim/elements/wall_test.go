package elements

import (
	"encoding/json"
	"testing"

	"bim-service/internal/bim/ifc"
	"bim-service/internal/bim/models"
	"bim-service/internal/bim/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wallPayload(t *testing.T, raw string) models.ElementPayload {
	t.Helper()
	var e models.ElementPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	return e
}

func testContext() *ifc.Context {
	return ifc.NewContext("Proj", "Site", "Bldg", "Floor")
}

// ---------------------------------------------------------------------------
// Wall builder
// ---------------------------------------------------------------------------

func TestWallBuilder_Build(t *testing.T) {
	t.Parallel()

	// Контур в клиентских координатах (Y вверх), толщина 0.2.
	payload := wallPayload(t, `{
        "type": "WALL",
        "name": "MyWall",
        "points": [
            {"x": -5, "y": 0, "z": -2},
            {"x": 5,  "y": 0, "z": -2},
            {"x": 5,  "y": 0, "z": 5},
            {"x": -2, "y": 0, "z": 5}
        ],
        "wallThickness": 0.2,
        "wallColor": "#FF5733"
    }`)

	ctx := testContext()
	b := NewWallBuilder()

	built, err := b.Build(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "WALL:MyWall", built.Label)

	f := ctx.Model
	require.Equal(t, 1, f.CountByType("IfcWall"))
	assert.Equal(t, "IfcWall", f.TypeOf(built.Entity))

	// Ровно одно выдавленное тело, глубина — толщина стены.
	solids := f.FindByType("IfcExtrudedAreaSolid")
	require.Len(t, solids, 1)
	attrs := f.AttrsOf(solids[0])
	assert.Equal(t, 0.2, attrs[3])

	// Цвет нормализован в [0,1].
	colours := f.FindByType("IfcColourRgb")
	require.Len(t, colours, 1)
	cAttrs := f.AttrsOf(colours[0])
	assert.InDelta(t, 1.0, cAttrs[1].(float64), 1e-3)
	assert.InDelta(t, 0.341, cAttrs[2].(float64), 1e-3)
	assert.InDelta(t, 0.2, cAttrs[3].(float64), 1e-3)

	// Стена привязана к этажу.
	rels := f.FindByType("IfcRelContainedInSpatialStructure")
	require.Len(t, rels, 1)
	relAttrs := f.AttrsOf(rels[0])
	assert.Equal(t, []ifc.Ref{built.Entity}, relAttrs[4])
	assert.Equal(t, ctx.Storey, relAttrs[5])
}

func TestWallBuilder_DefaultNameAndColor(t *testing.T) {
	t.Parallel()

	payload := wallPayload(t, `{
        "type": "WALL",
        "points": [
            {"x": 0, "y": 0, "z": 0},
            {"x": 1, "y": 0, "z": 0},
            {"x": 1, "y": 1, "z": 0}
        ],
        "wallThickness": 0.1
    }`)

	ctx := testContext()
	built, err := NewWallBuilder().Build(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "WALL:Wall", built.Label)

	colours := ctx.Model.FindByType("IfcColourRgb")
	require.Len(t, colours, 1)
	cAttrs := ctx.Model.AttrsOf(colours[0])
	// Дефолтный #CCCCCC.
	assert.InDelta(t, 0.8, cAttrs[1].(float64), 1e-3)
}

func TestWallBuilder_ValidationErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
	}{
		{
			name: "too few points",
			raw: `{"type":"WALL","points":[{"x":0,"y":0,"z":0},{"x":1,"y":0,"z":0}],
                  "wallThickness":0.2}`,
		},
		{
			name: "zero thickness",
			raw: `{"type":"WALL","points":[{"x":0,"y":0,"z":0},{"x":1,"y":0,"z":0},{"x":1,"y":1,"z":0}],
                  "wallThickness":0}`,
		},
		{
			name: "negative thickness",
			raw: `{"type":"WALL","points":[{"x":0,"y":0,"z":0},{"x":1,"y":0,"z":0},{"x":1,"y":1,"z":0}],
                  "wallThickness":-0.2}`,
		},
		{
			name: "malformed color",
			raw: `{"type":"WALL","points":[{"x":0,"y":0,"z":0},{"x":1,"y":0,"z":0},{"x":1,"y":1,"z":0}],
                  "wallThickness":0.2,"wallColor":"not-a-color"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := testContext()
			before := ctx.Model.Len()

			_, err := NewWallBuilder().Build(ctx, wallPayload(t, tc.raw))
			require.Error(t, err)

			var vErr *registry.ValidationError
			assert.ErrorAs(t, err, &vErr)
			// Никакой частичной геометрии при ошибке валидации.
			assert.Equal(t, before, ctx.Model.Len())
			assert.Equal(t, 0, ctx.Model.CountByType("IfcWall"))
		})
	}
}

func TestWallBuilder_DegenerateGeometry(t *testing.T) {
	t.Parallel()

	// Все точки на одной прямой — нулевая площадь профиля.
	payload := wallPayload(t, `{
        "type": "WALL",
        "points": [
            {"x": 0, "y": 0, "z": 0},
            {"x": 1, "y": 0, "z": 0},
            {"x": 2, "y": 0, "z": 0}
        ],
        "wallThickness": 0.2
    }`)

	ctx := testContext()
	_, err := NewWallBuilder().Build(ctx, payload)
	require.Error(t, err)

	var gErr *registry.GeometryError
	assert.ErrorAs(t, err, &gErr)
	assert.Equal(t, 0, ctx.Model.CountByType("IfcWall"))
}
