package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/fekuna/gasops-dashboard-service/internal/inventory"
	"github.com/fekuna/gasops-dashboard-service/internal/inventory/dto"
	"github.com/fekuna/gasops-dashboard-service/internal/model"
	"github.com/fekuna/gasops-dashboard-service/internal/sales"
	"github.com/fekuna/gasops-dashboard-service/pkg/logger"
)

const recentLimit = 10

type InventoryHandler struct {
	uc      inventory.UseCase
	salesUC sales.UseCase
	logger  logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, salesUC sales.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:      uc,
		salesUC: salesUC,
		logger:  log,
	}
}

// Dashboard serves GET /api/dashboard?date=YYYY-MM-DD. The date defaults to
// today; summaries are reconciled as of the end of that day.
func (h *InventoryHandler) Dashboard(c *fiber.Ctx) error {
	day, err := model.ParseClientDay(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	summaries, err := h.uc.Summary(c.Context(), day)
	if err != nil {
		h.logger.Error("dashboard summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	movements, err := h.uc.RecentMovements(c.Context(), day, recentLimit)
	if err != nil {
		h.logger.Error("dashboard movements failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	recentSales, err := h.salesUC.RecentSales(c.Context(), day, recentLimit)
	if err != nil {
		h.logger.Error("dashboard sales failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	entries := lo.Map(summaries, func(s model.InventorySummary, _ int) dto.InventoryEntry {
		return dto.InventoryEntry{
			InventorySummary: s,
			FillPercentage:   s.FillPercentage(),
			LowStock:         s.LowStock(),
		}
	})

	totals := lo.Reduce(summaries, func(acc dto.InventoryTotals, s model.InventorySummary, _ int) dto.InventoryTotals {
		acc.TotalTanks += s.TotalTanks
		acc.FullTanks += s.FullTanks
		acc.OutForDelivery += s.OutForDelivery
		acc.EmptyTanks += s.EmptyTanks
		return acc
	}, dto.InventoryTotals{})

	return c.JSON(dto.DashboardResponse{
		Inventory: entries,
		Totals:    totals,
		Movements: movements,
		Sales:     recentSales,
	})
}

// RecordMovement serves POST /api/movements.
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var input dto.RecordMovementInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
	}

	movement, err := h.uc.RecordMovement(c.Context(), &input)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		h.logger.Error("record movement failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": movement})
}
