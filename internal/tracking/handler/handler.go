package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fekuna/gasops-dashboard-service/internal/model"
	"github.com/fekuna/gasops-dashboard-service/internal/tracking"
	"github.com/fekuna/gasops-dashboard-service/internal/tracking/dto"
	"github.com/fekuna/gasops-dashboard-service/pkg/logger"
)

type TrackingHandler struct {
	uc     tracking.UseCase
	logger logger.ZapLogger
}

func NewTrackingHandler(uc tracking.UseCase, log logger.ZapLogger) *TrackingHandler {
	return &TrackingHandler{
		uc:     uc,
		logger: log,
	}
}

// RecordLocation serves POST /api/locations: driver devices push position
// samples (or sensor failure reports) here.
func (h *TrackingHandler) RecordLocation(c *fiber.Ctx) error {
	var input dto.RecordLocationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
	}

	loc, err := h.uc.RecordLocation(c.Context(), &input)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		h.logger.Error("record location failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal Server Error"})
	}

	// loc is nil when the sample was throttled or was a failure report.
	return c.JSON(fiber.Map{"success": true, "data": loc})
}

// Track serves GET /api/tracking?driver_id=&mode=live|record&date=&follow=.
func (h *TrackingHandler) Track(c *fiber.Ctx) error {
	driverID := c.Query("driver_id")

	mode := tracking.Mode(c.Query("mode", string(tracking.ModeLive)))

	day, err := model.ParseClientDay(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	follow := c.QueryBool("follow", true)

	snapshot, err := h.uc.Track(c.Context(), driverID, mode, day, follow)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.Error("tracking snapshot failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(snapshot)
}
