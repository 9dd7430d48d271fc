package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/gasops-dashboard-service/internal/inventory"
	"github.com/fekuna/gasops-dashboard-service/internal/inventory/dto"
	"github.com/fekuna/gasops-dashboard-service/internal/model"
	"github.com/fekuna/gasops-dashboard-service/pkg/logger"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	sizes  map[string]struct{}
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, tankSizes []string, log logger.ZapLogger) inventory.UseCase {
	sizes := make(map[string]struct{}, len(tankSizes))
	for _, s := range tankSizes {
		sizes[s] = struct{}{}
	}
	return &inventoryUseCase{
		repo:   repo,
		sizes:  sizes,
		logger: log,
	}
}

func (uc *inventoryUseCase) Summary(ctx context.Context, day time.Time) ([]model.InventorySummary, error) {
	tanks, err := uc.repo.ListTanks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStore, err)
	}
	movements, err := uc.repo.ListMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStore, err)
	}
	return Reconcile(tanks, movements, day), nil
}

func (uc *inventoryUseCase) RecentMovements(ctx context.Context, day time.Time, limit int) ([]model.Movement, error) {
	movements, err := uc.repo.RecentMovements(ctx, DayEnd(day), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStore, err)
	}
	return movements, nil
}

func (uc *inventoryUseCase) RecordMovement(ctx context.Context, input *dto.RecordMovementInput) (*model.Movement, error) {
	movementType := model.MovementType(input.Type)
	if !movementType.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownMovementType, input.Type)
	}
	if input.Quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}
	if _, ok := uc.sizes[input.TankSize]; !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownTankSize, input.TankSize)
	}

	date, err := model.ParseClientTime(input.Date)
	if err != nil {
		return nil, err
	}

	var customer *string
	if input.CustomerName != "" {
		customer = &input.CustomerName
	}

	movement := &model.Movement{
		ID:           uuid.New().String(),
		Date:         date,
		Type:         movementType,
		TankSize:     input.TankSize,
		Quantity:     input.Quantity,
		CustomerName: customer,
		CreatedAt:    time.Now().UTC(),
	}

	// add_stock also raises the registry baseline; both rows land in one
	// transaction with the increment applied server-side.
	if movementType == model.MovementAddStock {
		err = uc.repo.RecordMovementWithStock(ctx, movement)
	} else {
		err = uc.repo.RecordMovement(ctx, movement)
	}
	if err != nil {
		uc.logger.Error("failed to record movement",
			zap.String("type", string(movementType)),
			zap.String("tank_size", input.TankSize),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", model.ErrStore, err)
	}

	uc.logger.Info("movement recorded",
		zap.String("id", movement.ID),
		zap.String("type", string(movementType)),
		zap.String("tank_size", movement.TankSize),
		zap.Int("quantity", movement.Quantity),
	)
	return movement, nil
}
