package models

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ============================================================
// Element defaults
// ============================================================
//
// Значения по умолчанию для элементов и метаданных проекта
// описаны в defaults.yaml и вшиты в бинарник.

//go:embed defaults.yaml
var defaultsYAML []byte

// ElementDefaults — дефолты, подставляемые при декодировании payload.
type ElementDefaults struct {
	Metadata struct {
		ProjectName  string `yaml:"projectName"`
		SiteName     string `yaml:"siteName"`
		BuildingName string `yaml:"buildingName"`
		StoreyName   string `yaml:"storeyName"`
	} `yaml:"metadata"`
	Wall struct {
		Name  string `yaml:"name"`
		Color string `yaml:"color"`
	} `yaml:"wall"`
	Window struct {
		Name       string  `yaml:"name"`
		Width      float64 `yaml:"width"`
		Height     float64 `yaml:"height"`
		SillHeight float64 `yaml:"sillHeight"`
	} `yaml:"window"`
	Door struct {
		Name       string `yaml:"name"`
		PanelColor int    `yaml:"panelColor"`
	} `yaml:"door"`
}

var defaults = mustLoadDefaults()

// Defaults возвращает вшитые значения по умолчанию.
func Defaults() ElementDefaults {
	return defaults
}

func mustLoadDefaults() ElementDefaults {
	var d ElementDefaults
	if err := yaml.Unmarshal(defaultsYAML, &d); err != nil {
		panic(fmt.Sprintf("models: parse defaults.yaml: %v", err))
	}
	return d
}
