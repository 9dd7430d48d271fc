package model

import "time"

// Tank holds the running baseline quantity for one tank size. At most one
// row exists per size; the baseline only moves on add_stock movements.
type Tank struct {
	Size      string    `db:"size" json:"size"`
	Quantity  int       `db:"quantity" json:"quantity"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// InventorySummary is the per-size reconciliation result. Derived on every
// read, never persisted.
type InventorySummary struct {
	Size           string `json:"size"`
	TotalTanks     int    `json:"total_tanks"`
	FullTanks      int    `json:"full_tanks"`
	OutForDelivery int    `json:"out_for_delivery"`
	EmptyTanks     int    `json:"empty_tanks"`
}

// FillPercentage is full over total, 0 when the size has no tanks.
func (s InventorySummary) FillPercentage() float64 {
	if s.TotalTanks <= 0 {
		return 0
	}
	return float64(s.FullTanks) / float64(s.TotalTanks) * 100
}

// LowStock mirrors the dashboard's warning threshold.
func (s InventorySummary) LowStock() bool {
	return s.FillPercentage() < 20
}
