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

// CreateWithMovement writes the sale and its ledger movement together. One
// transaction, so the ledger can never hold a sale without its movement.
func (r *PGRepository) CreateWithMovement(ctx context.Context, sale *model.Sale, movement *model.Movement) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	insertSaleQuery := `
        INSERT INTO sales (
            id, date, customer_name, tank_size, quantity, amount, created_at
        )
        VALUES (
            :id, :date, :customer_name, :tank_size, :quantity, :amount, :created_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, insertSaleQuery, sale); err != nil {
		return errors.Wrap(err, "insert sale")
	}

	insertMovementQuery := `
        INSERT INTO inventory_movements (
            id, date, type, tank_size, quantity, customer_name, created_at
        )
        VALUES (
            :id, :date, :type, :tank_size, :quantity, :customer_name, :created_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, insertMovementQuery, movement); err != nil {
		return errors.Wrap(err, "insert sale movement")
	}

	return errors.Wrap(tx.Commit(), "commit tx")
}

func (r *PGRepository) RecentByDay(ctx context.Context, day time.Time, limit int) ([]model.Sale, error) {
	y, m, d := day.UTC().Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	items := []model.Sale{}
	err := r.DB.SelectContext(ctx, &items, `
        SELECT * FROM sales
        WHERE date >= $1 AND date < $2
        ORDER BY date DESC
        LIMIT $3
    `, dayStart, dayEnd, limit)
	if err != nil {
		return nil, errors.Wrap(err, "recent sales")
	}
	return items, nil
}
