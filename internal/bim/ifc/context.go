package ifc

// ============================================================
// Spatial Hierarchy Context
// ============================================================
//
// Стандартная пространственная структура IFC:
//
//	IfcProject → IfcSite → IfcBuilding → IfcBuildingStorey
//
// Контекст создается заново на каждый запрос генерации и живет
// до сериализации файла; между запросами состояние не разделяется.

// Context — иерархия проекта плюс геометрический подконтекст Body,
// общий для всех билдеров одного запроса.
type Context struct {
	Model    *File
	Project  Ref
	Site     Ref
	Building Ref
	Storey   Ref
	Body     Ref
}

// NewContext собирает свежую модель с иерархией и SI-единицами (метры).
func NewContext(projectName, siteName, buildingName, storeyName string) *Context {
	f := NewFile()

	// Единицы: СИ без префикса, т.е. метры/кв.м/куб.м.
	length := f.Add("IfcSIUnit", Star{}, Enum("LENGTHUNIT"), nil, Enum("METRE"))
	area := f.Add("IfcSIUnit", Star{}, Enum("AREAUNIT"), nil, Enum("SQUARE_METRE"))
	volume := f.Add("IfcSIUnit", Star{}, Enum("VOLUMEUNIT"), nil, Enum("CUBIC_METRE"))
	units := f.Add("IfcUnitAssignment", []Ref{length, area, volume})

	// Геометрические контексты: Model + подконтекст Body.
	origin := f.CartesianPoint3(0, 0, 0)
	worldPlacement := f.Add("IfcAxis2Placement3D", origin, nil, nil)
	modelCtx := f.Add("IfcGeometricRepresentationContext",
		nil, "Model", 3, 1e-05, worldPlacement, nil)
	body := f.Add("IfcGeometricRepresentationSubContext",
		"Body", "Model", Star{}, Star{}, Star{}, Star{},
		modelCtx, nil, Enum("MODEL_VIEW"), nil)

	project := f.Add("IfcProject",
		NewGlobalID(), nil, projectName, nil, nil, nil, nil, []Ref{modelCtx}, units)
	site := f.Add("IfcSite",
		NewGlobalID(), nil, siteName, nil, nil, nil, nil, nil,
		Enum("ELEMENT"), nil, nil, nil, nil, nil)
	building := f.Add("IfcBuilding",
		NewGlobalID(), nil, buildingName, nil, nil, nil, nil, nil,
		Enum("ELEMENT"), nil, nil, nil)
	storey := f.Add("IfcBuildingStorey",
		NewGlobalID(), nil, storeyName, nil, nil, nil, nil, nil,
		Enum("ELEMENT"), 0.0)

	// Агрегация: Project → Site → Building → Storey.
	f.aggregate(project, site)
	f.aggregate(site, building)
	f.aggregate(building, storey)

	return &Context{
		Model:    f,
		Project:  project,
		Site:     site,
		Building: building,
		Storey:   storey,
		Body:     body,
	}
}

func (f *File) aggregate(parent, child Ref) Ref {
	return f.Add("IfcRelAggregates", NewGlobalID(), nil, nil, nil, parent, []Ref{child})
}

// ContainInStorey привязывает продукты к этажу контекста.
func (c *Context) ContainInStorey(products ...Ref) Ref {
	return c.Model.Add("IfcRelContainedInSpatialStructure",
		NewGlobalID(), nil, nil, nil, products, c.Storey)
}
