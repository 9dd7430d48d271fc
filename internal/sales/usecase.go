package sales

import (
	"context"
	"time"

	"github.com/fekuna/gasops-dashboard-service/internal/model"
	"github.com/fekuna/gasops-dashboard-service/internal/sales/dto"
)

type UseCase interface {
	RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*model.Sale, error)
	RecentSales(ctx context.Context, day time.Time, limit int) ([]model.Sale, error)
}
