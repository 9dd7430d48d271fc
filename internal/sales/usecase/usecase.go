package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/gasops-dashboard-service/internal/model"
	"github.com/fekuna/gasops-dashboard-service/internal/sales"
	"github.com/fekuna/gasops-dashboard-service/internal/sales/dto"
	"github.com/fekuna/gasops-dashboard-service/pkg/logger"
)

type salesUseCase struct {
	repo   sales.Repository
	sizes  map[string]struct{}
	logger logger.ZapLogger
}

func NewSalesUseCase(repo sales.Repository, tankSizes []string, log logger.ZapLogger) sales.UseCase {
	sizes := make(map[string]struct{}, len(tankSizes))
	for _, s := range tankSizes {
		sizes[s] = struct{}{}
	}
	return &salesUseCase{
		repo:   repo,
		sizes:  sizes,
		logger: log,
	}
}

func (uc *salesUseCase) RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*model.Sale, error) {
	if input.Quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}
	if _, ok := uc.sizes[input.TankSize]; !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownTankSize, input.TankSize)
	}
	if input.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", model.ErrValidation)
	}

	date, err := model.ParseClientTime(input.Date)
	if err != nil {
		return nil, err
	}

	var customer *string
	if input.CustomerName != "" {
		customer = &input.CustomerName
	}

	now := time.Now().UTC()
	sale := &model.Sale{
		ID:           uuid.New().String(),
		Date:         date,
		CustomerName: customer,
		TankSize:     input.TankSize,
		Quantity:     input.Quantity,
		Amount:       math.Round(input.Amount*100) / 100,
		CreatedAt:    now,
	}
	movement := &model.Movement{
		ID:           uuid.New().String(),
		Date:         date,
		Type:         model.MovementSale,
		TankSize:     input.TankSize,
		Quantity:     input.Quantity,
		CustomerName: customer,
		CreatedAt:    now,
	}

	if err := uc.repo.CreateWithMovement(ctx, sale, movement); err != nil {
		uc.logger.Error("failed to record sale",
			zap.String("tank_size", input.TankSize),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", model.ErrStore, err)
	}

	uc.logger.Info("sale recorded",
		zap.String("id", sale.ID),
		zap.String("tank_size", sale.TankSize),
		zap.Int("quantity", sale.Quantity),
		zap.Float64("amount", sale.Amount),
	)
	return sale, nil
}

func (uc *salesUseCase) RecentSales(ctx context.Context, day time.Time, limit int) ([]model.Sale, error) {
	items, err := uc.repo.RecentByDay(ctx, day, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStore, err)
	}
	return items, nil
}
