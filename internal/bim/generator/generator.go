package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"bim-service/internal/bim/ifc"
	"bim-service/internal/bim/models"
	"bim-service/internal/bim/registry"
	"bim-service/internal/bim/storage"

	"github.com/google/uuid"
)

// ============================================================
// Dispatch Orchestrator
// ============================================================
//
// Обходит элементы запроса по порядку, находит билдер через реестр
// и вызывает его. Поэлементные ошибки (валидация, геометрия,
// незарегистрированный тип) понижаются до предупреждений; запрос
// падает целиком только если не построено ни одного элемента.

// Generator — оркестратор генерации.
type Generator struct {
	registry *registry.Registry
	storage  storage.Backend
	outDir   string
}

// Result — итог обработки одного запроса.
type Result struct {
	Success  bool
	FileName string
	FileURL  string
	FileData []byte
	Created  []string
	Warnings []string
}

// New создает генератор. Пустой outDir означает системный temp.
func New(reg *registry.Registry, backend storage.Backend, outDir string) *Generator {
	if outDir == "" {
		outDir = os.TempDir()
	}
	return &Generator{registry: reg, storage: backend, outDir: outDir}
}

// Generate обрабатывает запрос: свежая иерархия, поэлементная
// диспетчеризация, сериализация STEP, загрузка в хранилище.
// При нуле построенных элементов возвращает registry.ErrNoEntities,
// собранные предупреждения остаются в Result.
func (g *Generator) Generate(ctx context.Context, req *models.GenerateRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	meta := req.ResolveMetadata()
	mctx := ifc.NewContext(meta.ProjectName, meta.SiteName, meta.BuildingName, meta.StoreyName)

	res := &Result{}

	for idx, element := range req.Elements {
		builder, err := g.registry.Get(element.Type)
		if err != nil {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("Element #%d (%s): not implemented", idx, element.Type))
			elementWarningsTotal.Inc()
			log.Printf("[GENERATOR] Skipped element #%d: %v", idx, err)
			continue
		}

		built, err := builder.Build(mctx, element)
		if err != nil {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("Element #%d (%s): %v", idx, element.Type, err))
			elementWarningsTotal.Inc()
			log.Printf("[GENERATOR] Error building element #%d: %v", idx, err)
			continue
		}

		res.Created = append(res.Created, built.Label)
		elementsBuiltTotal.WithLabelValues(element.Type).Inc()
		log.Printf("[GENERATOR] Built %s element #%d", element.Type, idx)
	}

	if len(res.Created) == 0 {
		generationsTotal.WithLabelValues("failed").Inc()
		return res, registry.ErrNoEntities
	}

	fileName := fmt.Sprintf("bim_%s.ifc", strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	localPath := filepath.Join(g.outDir, fileName)

	var buf bytes.Buffer
	if err := mctx.Model.WriteTo(&buf, fileName); err != nil {
		generationsTotal.WithLabelValues("error").Inc()
		return res, fmt.Errorf("serialize model: %w", err)
	}
	if err := os.WriteFile(localPath, buf.Bytes(), 0o644); err != nil {
		generationsTotal.WithLabelValues("error").Inc()
		return res, fmt.Errorf("write %s: %w", localPath, err)
	}
	log.Printf("[GENERATOR] Wrote IFC file: %s", localPath)

	url, err := g.storage.Upload(ctx, localPath)
	if err != nil {
		generationsTotal.WithLabelValues("error").Inc()
		return res, fmt.Errorf("upload %s: %w", fileName, err)
	}

	res.Success = true
	res.FileName = fileName
	res.FileURL = url
	res.FileData = buf.Bytes()
	generationsTotal.WithLabelValues("success").Inc()
	return res, nil
}

// IsNoEntities сообщает, что запрос упал из-за нуля построенных элементов.
func IsNoEntities(err error) bool {
	return errors.Is(err, registry.ErrNoEntities)
}
