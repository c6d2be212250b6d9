package handlers

import (
	"encoding/base64"
	"encoding/json"
	"log"

	"bim-service/internal/bim/generator"
	"bim-service/internal/bim/models"
	"bim-service/internal/bim/registry"
	"bim-service/internal/bim/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ============================================================
// Generate Handler
// ============================================================

type Handler struct {
	generator *generator.Generator
	registry  *registry.Registry
	repo      *repository.Repository
}

func New(gen *generator.Generator, reg *registry.Registry, repo *repository.Repository) *Handler {
	return &Handler{generator: gen, registry: reg, repo: repo}
}

// Generate принимает список элементов и возвращает собранный IFC-файл.
// Каждый элемент диспетчеризуется по полю type; поэлементные сбои
// попадают в warnings, 422 только если не построено вообще ничего.
func (h *Handler) Generate(c fiber.Ctx) error {
	log.Printf("[BIM] Received generate request, size: %d bytes", len(c.Body()))

	var req models.GenerateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		log.Printf("[BIM] Decode error: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	res, err := h.generator.Generate(c.Context(), &req)
	if err != nil {
		if generator.IsNoEntities(err) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "No elements could be built.",
				"errors":  res.Warnings,
			})
		}
		log.Printf("[BIM] Generation error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Журналируем результат; сбой журнала не валит ответ.
	recID := uuid.NewString()
	rec := repository.GenerationRecord{
		ID:           recID,
		FileName:     res.FileName,
		FileURL:      res.FileURL,
		ElementCount: len(res.Created),
		Created:      repository.JoinList(res.Created),
		Warnings:     repository.JoinList(res.Warnings),
	}
	if err := h.repo.Insert(c.Context(), rec); err != nil {
		log.Printf("[BIM] History insert error: %v", err)
	}

	var warnings any
	if len(res.Warnings) > 0 {
		warnings = res.Warnings
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"id":       recID,
		"file_url": res.FileURL,
		"base64": fiber.Map{
			"data":      base64.StdEncoding.EncodeToString(res.FileData),
			"filename":  res.FileName,
			"size":      len(res.FileData),
			"mime_type": "application/octet-stream",
		},
		"created_elements": res.Created,
		"warnings":         warnings,
	})
}
