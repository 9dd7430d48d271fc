package model

import "time"

// MovementType enumerates the inventory events the ledger accepts.
type MovementType string

const (
	MovementAddStock      MovementType = "add_stock"
	MovementReplenishment MovementType = "replenishment"
	MovementDelivery      MovementType = "delivery"
	MovementSale          MovementType = "sale"
)

func (t MovementType) Valid() bool {
	switch t {
	case MovementAddStock, MovementReplenishment, MovementDelivery, MovementSale:
		return true
	}
	return false
}

// Movement is one immutable row of the inventory ledger. There is no update
// or delete path for movements.
type Movement struct {
	ID           string       `db:"id" json:"id"`
	Date         time.Time    `db:"date" json:"date"`
	Type         MovementType `db:"type" json:"type"`
	TankSize     string       `db:"tank_size" json:"tank_size"`
	Quantity     int          `db:"quantity" json:"quantity"`
	CustomerName *string      `db:"customer_name" json:"customer_name,omitempty"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}
