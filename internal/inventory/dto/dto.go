package dto

import "github.com/fekuna/gasops-dashboard-service/internal/model"

// InventoryEntry is one summary row as the dashboard renders it.
type InventoryEntry struct {
	model.InventorySummary
	FillPercentage float64 `json:"fill_percentage"`
	LowStock       bool    `json:"low_stock"`
}

// InventoryTotals sums the summary across all sizes for the header cards.
type InventoryTotals struct {
	TotalTanks     int `json:"total_tanks"`
	FullTanks      int `json:"full_tanks"`
	OutForDelivery int `json:"out_for_delivery"`
	EmptyTanks     int `json:"empty_tanks"`
}

type DashboardResponse struct {
	Inventory []InventoryEntry `json:"inventory"`
	Totals    InventoryTotals  `json:"totals"`
	Movements []model.Movement `json:"movements"`
	Sales     []model.Sale     `json:"sales"`
}
