package sales

import (
	"context"
	"time"

	"github.com/fekuna/gasops-dashboard-service/internal/model"
)

type Repository interface {
	// CreateWithMovement writes the sale row and its linked sale-typed
	// movement row in a single transaction.
	CreateWithMovement(ctx context.Context, sale *model.Sale, movement *model.Movement) error
	RecentByDay(ctx context.Context, day time.Time, limit int) ([]model.Sale, error)
}
