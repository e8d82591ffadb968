package api

import (
	"github.com/edgeflow/irflow/internal/logger"
	"github.com/edgeflow/irflow/pkg/ircodec"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler wires ircodec.Encode/Decode up as HTTP endpoints.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// SetupRoutes registers the codec endpoints under /api/v1/ir.
func (h *Handler) SetupRoutes(app *fiber.App) {
	v1 := app.Group("/api/v1")
	v1.Get("/health", h.health)

	ir := v1.Group("/ir")
	ir.Post("/encode", h.encode)
	ir.Post("/decode", h.decode)
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "ircodec-server",
	})
}

type encodeRequest struct {
	Command string `json:"command"`
}

type encodeResponse struct {
	Pulses []int `json:"pulses"`
}

func (h *Handler) encode(c *fiber.Ctx) error {
	var req encodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	pulses, err := ircodec.Encode(req.Command)
	if err != nil {
		logger.Warn("ir encode failed", zap.String("command", req.Command), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	logger.Info("ir encode", zap.String("command", req.Command), zap.Int("pulse_count", len(pulses)))
	return c.JSON(encodeResponse{Pulses: pulses})
}

type decodeRequest struct {
	Pulses []int `json:"pulses"`
}

type decodeResponse struct {
	Command string `json:"command"`
}

func (h *Handler) decode(c *fiber.Ctx) error {
	var req decodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	command := ircodec.Decode(req.Pulses)
	logger.Info("ir decode", zap.Int("pulse_count", len(req.Pulses)), zap.String("command", command))
	return c.JSON(decodeResponse{Command: command})
}
