package ifc

import (
	"bim-service/internal/bim/transform"
)

// ============================================================
// Surface styles
// ============================================================

// SurfaceStyle создает поверхностный стиль с равномерным цветом.
func (f *File) SurfaceStyle(name string, rgb transform.RGB) Ref {
	colour := f.Add("IfcColourRgb", nil, rgb.R, rgb.G, rgb.B)
	shading := f.Add("IfcSurfaceStyleShading", colour, 0.0)
	return f.Add("IfcSurfaceStyle", name, Enum("BOTH"), []Ref{shading})
}

// StyleItem привязывает стиль к геометрическому элементу.
func (f *File) StyleItem(item, style Ref) Ref {
	return f.Add("IfcStyledItem", item, []Ref{style}, nil)
}
