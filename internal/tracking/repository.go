package tracking

import (
	"context"
	"time"

	"github.com/fekuna/gasops-dashboard-service/internal/model"
)

type Repository interface {
	SaveLocation(ctx context.Context, loc *model.TrackingLocation) error
	// ListByDriverAndDay returns the day's samples in recording order.
	ListByDriverAndDay(ctx context.Context, driverID string, day time.Time) ([]model.TrackingLocation, error)
}
