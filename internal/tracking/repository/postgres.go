package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/fekuna/gasops-dashboard-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) SaveLocation(ctx context.Context, loc *model.TrackingLocation) error {
	query := `
        INSERT INTO locations (id, driver_id, latitude, longitude, date)
        VALUES (:id, :driver_id, :latitude, :longitude, :date)
    `
	_, err := r.DB.NamedExecContext(ctx, query, loc)
	return errors.Wrap(err, "insert location")
}

func (r *PGRepository) ListByDriverAndDay(ctx context.Context, driverID string, day time.Time) ([]model.TrackingLocation, error) {
	y, m, d := day.UTC().Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	locations := []model.TrackingLocation{}
	err := r.DB.SelectContext(ctx, &locations, `
        SELECT * FROM locations
        WHERE driver_id = $1 AND date >= $2 AND date < $3
        ORDER BY date ASC
    `, driverID, dayStart, dayEnd)
	if err != nil {
		return nil, errors.Wrap(err, "list locations")
	}
	return locations, nil
}
