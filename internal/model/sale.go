package model

import "time"

// Sale is one completed sale. Every sale has a matching sale-typed Movement
// written in the same transaction.
type Sale struct {
	ID           string    `db:"id" json:"id"`
	Date         time.Time `db:"date" json:"date"`
	CustomerName *string   `db:"customer_name" json:"customer_name,omitempty"`
	TankSize     string    `db:"tank_size" json:"tank_size"`
	Quantity     int       `db:"quantity" json:"quantity"`
	Amount       float64   `db:"amount" json:"amount"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
