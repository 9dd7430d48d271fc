package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fekuna/gasops-dashboard-service/internal/model"
	"github.com/fekuna/gasops-dashboard-service/internal/sales"
	"github.com/fekuna/gasops-dashboard-service/internal/sales/dto"
	"github.com/fekuna/gasops-dashboard-service/pkg/logger"
)

type SalesHandler struct {
	uc     sales.UseCase
	logger logger.ZapLogger
}

func NewSalesHandler(uc sales.UseCase, log logger.ZapLogger) *SalesHandler {
	return &SalesHandler{
		uc:     uc,
		logger: log,
	}
}

// RecordSale serves POST /api/sales. The sale row and its ledger movement
// are written together by the usecase.
func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	var input dto.RecordSaleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
	}

	sale, err := h.uc.RecordSale(c.Context(), &input)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		h.logger.Error("record sale failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": sale})
}
