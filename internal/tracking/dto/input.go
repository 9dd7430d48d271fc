package dto

type RecordLocationInput struct {
	DriverID  string  `json:"driver_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// Date is the sample time, client-local; defaults to now.
	Date string `json:"date"`
	// Failure, when set, reports a position-source failure instead of a
	// fix: permission_denied, position_unavailable, timeout or unknown.
	Failure string `json:"failure"`
}
