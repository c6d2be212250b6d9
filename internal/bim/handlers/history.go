package handlers

import (
	"errors"
	"strconv"

	"bim-service/internal/bim/repository"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Generation History
// ============================================================

// ListGenerations возвращает последние записи истории.
func (h *Handler) ListGenerations(c fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	records, err := h.repo.List(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if records == nil {
		records = []repository.GenerationRecord{}
	}
	return c.JSON(fiber.Map{"generations": records})
}

// GetGeneration возвращает одну запись истории по id.
func (h *Handler) GetGeneration(c fiber.Ctx) error {
	rec, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(rec)
}
