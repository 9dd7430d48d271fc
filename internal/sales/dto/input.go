package dto

type RecordSaleInput struct {
	// Date is client-local; normalized to UTC before persisting.
	Date         string  `json:"date"`
	CustomerName string  `json:"customer_name"`
	TankSize     string  `json:"tank_size"`
	Quantity     int     `json:"quantity"`
	Amount       float64 `json:"amount"`
}
