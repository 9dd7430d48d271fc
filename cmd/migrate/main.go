package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/fekuna/gasops-dashboard-service/config"
	"github.com/fekuna/gasops-dashboard-service/pkg/postgres"
)

const schema = `
CREATE TABLE IF NOT EXISTS tanks (
    size        TEXT PRIMARY KEY,
    quantity    INTEGER NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS inventory_movements (
    id             UUID PRIMARY KEY,
    date           TIMESTAMPTZ NOT NULL,
    type           TEXT NOT NULL,
    tank_size      TEXT NOT NULL,
    quantity       INTEGER NOT NULL CHECK (quantity > 0),
    customer_name  TEXT,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_movements_date ON inventory_movements (date);
CREATE INDEX IF NOT EXISTS idx_movements_size_type ON inventory_movements (tank_size, type);

CREATE TABLE IF NOT EXISTS sales (
    id             UUID PRIMARY KEY,
    date           TIMESTAMPTZ NOT NULL,
    customer_name  TEXT,
    tank_size      TEXT NOT NULL,
    quantity       INTEGER NOT NULL CHECK (quantity > 0),
    amount         NUMERIC(12,2) NOT NULL,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date);

CREATE TABLE IF NOT EXISTS locations (
    id         UUID PRIMARY KEY,
    driver_id  TEXT NOT NULL,
    latitude   DOUBLE PRECISION NOT NULL,
    longitude  DOUBLE PRECISION NOT NULL,
    date       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_locations_driver_date ON locations (driver_id, date);
`

func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
	})
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	log.Println("schema up to date")
}
