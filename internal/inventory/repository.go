package inventory

import (
	"context"
	"time"

	"github.com/fekuna/gasops-dashboard-service/internal/model"
)

type Repository interface {
	// Tank registry
	ListTanks(ctx context.Context) ([]model.Tank, error)
	GetTank(ctx context.Context, size string) (*model.Tank, error)

	// Movement ledger
	ListMovements(ctx context.Context) ([]model.Movement, error)
	RecentMovements(ctx context.Context, cutoff time.Time, limit int) ([]model.Movement, error)

	// Writes. RecordMovementWithStock covers the add_stock path: the
	// movement insert and the baseline increment happen in one
	// transaction, with the increment executed server-side so concurrent
	// writers cannot lose updates.
	RecordMovement(ctx context.Context, m *model.Movement) error
	RecordMovementWithStock(ctx context.Context, m *model.Movement) error
}
