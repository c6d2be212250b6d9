package handlers

import (
	"strings"

	"bim-service/internal/bim/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

// Health — liveness probe с отчетом о возможностях сервиса:
// зарегистрированные билдеры и все типы, известные схеме.
func (h *Handler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":            "healthy",
		"available_plugins": strings.Join(h.registry.Available(), ", "),
		"declared_types":    strings.Join(models.DeclaredTypes(), ", "),
	})
}

// LivenessProbe проверяет, что приложение работает.
func LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

// ReadinessProbe проверяет готовность обрабатывать запросы.
func ReadinessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ready"})
}
