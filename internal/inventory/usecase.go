package inventory

import (
	"context"
	"time"

	"github.com/fekuna/gasops-dashboard-service/internal/inventory/dto"
	"github.com/fekuna/gasops-dashboard-service/internal/model"
)

type UseCase interface {
	// Summary reconciles the tank registry against the movement ledger
	// as of the end of the selected day.
	Summary(ctx context.Context, day time.Time) ([]model.InventorySummary, error)
	RecentMovements(ctx context.Context, day time.Time, limit int) ([]model.Movement, error)
	RecordMovement(ctx context.Context, input *dto.RecordMovementInput) (*model.Movement, error)
}
