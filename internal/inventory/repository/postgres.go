package repository

import (
	"context"
	"database/sql"
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

func (r *PGRepository) ListTanks(ctx context.Context) ([]model.Tank, error) {
	tanks := []model.Tank{}
	err := r.DB.SelectContext(ctx, &tanks, `SELECT * FROM tanks ORDER BY size`)
	if err != nil {
		return nil, errors.Wrap(err, "list tanks")
	}
	return tanks, nil
}

func (r *PGRepository) GetTank(ctx context.Context, size string) (*model.Tank, error) {
	var tank model.Tank
	err := r.DB.GetContext(ctx, &tank, `SELECT * FROM tanks WHERE size = $1`, size)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Absent size means baseline zero, callers handle it
		}
		return nil, errors.Wrap(err, "get tank")
	}
	return &tank, nil
}

func (r *PGRepository) ListMovements(ctx context.Context) ([]model.Movement, error) {
	movements := []model.Movement{}
	err := r.DB.SelectContext(ctx, &movements, `SELECT * FROM inventory_movements ORDER BY date ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "list movements")
	}
	return movements, nil
}

func (r *PGRepository) RecentMovements(ctx context.Context, cutoff time.Time, limit int) ([]model.Movement, error) {
	movements := []model.Movement{}
	err := r.DB.SelectContext(ctx, &movements, `
        SELECT * FROM inventory_movements
        WHERE date <= $1
        ORDER BY date DESC
        LIMIT $2
    `, cutoff, limit)
	if err != nil {
		return nil, errors.Wrap(err, "recent movements")
	}
	return movements, nil
}

const insertMovementQuery = `
    INSERT INTO inventory_movements (
        id, date, type, tank_size, quantity, customer_name, created_at
    )
    VALUES (
        :id, :date, :type, :tank_size, :quantity, :customer_name, :created_at
    )
`

func (r *PGRepository) RecordMovement(ctx context.Context, m *model.Movement) error {
	_, err := r.DB.NamedExecContext(ctx, insertMovementQuery, m)
	return errors.Wrap(err, "insert movement")
}

// RecordMovementWithStock writes the movement row and raises the tank
// baseline in one transaction. The increment runs inside the upsert so two
// concurrent add_stock calls for the same size both land.
func (r *PGRepository) RecordMovementWithStock(ctx context.Context, m *model.Movement) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, insertMovementQuery, m); err != nil {
		return errors.Wrap(err, "insert movement")
	}

	upsertQuery := `
        INSERT INTO tanks (size, quantity, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (size)
        DO UPDATE SET
            quantity = tanks.quantity + EXCLUDED.quantity,
            updated_at = EXCLUDED.updated_at
    `
	if _, err := tx.ExecContext(ctx, upsertQuery, m.TankSize, m.Quantity, m.Date); err != nil {
		return errors.Wrap(err, "upsert tank baseline")
	}

	return errors.Wrap(tx.Commit(), "commit tx")
}
