package dto

type RecordMovementInput struct {
	// Date is the client-local event time. Accepted layouts: RFC 3339,
	// "2006-01-02T15:04" (HTML datetime-local) and "2006-01-02".
	// Normalized to UTC before persisting.
	Date         string `json:"date"`
	Type         string `json:"type"`
	TankSize     string `json:"tank_size"`
	Quantity     int    `json:"quantity"`
	CustomerName string `json:"customer_name"`
}
