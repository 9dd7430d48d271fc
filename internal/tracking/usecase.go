package tracking

import (
	"context"
	"time"

	"github.com/fekuna/gasops-dashboard-service/internal/model"
	"github.com/fekuna/gasops-dashboard-service/internal/tracking/dto"
)

type UseCase interface {
	// RecordLocation persists a driver sample and fans it out to live
	// viewers. Returns (nil, nil) when the sample was throttled or the
	// payload carried a sensor failure report instead of a fix.
	RecordLocation(ctx context.Context, input *dto.RecordLocationInput) (*model.TrackingLocation, error)

	// Track switches the driver's feed to the requested mode (replaying
	// the selected day in record mode) and returns the current snapshot.
	Track(ctx context.Context, driverID string, mode Mode, day time.Time, follow bool) (Snapshot, error)

	// Close tears down live subscriptions.
	Close()
}
