package model

import "time"

// TrackingLocation is one GPS sample from a delivery driver.
type TrackingLocation struct {
	ID        string    `db:"id" json:"id"`
	DriverID  string    `db:"driver_id" json:"driver_id"`
	Latitude  float64   `db:"latitude" json:"latitude"`
	Longitude float64   `db:"longitude" json:"longitude"`
	Date      time.Time `db:"date" json:"date"`
}

// SensorFailure enumerates the reasons a driver's position source can stop
// producing samples. Reported by the device alongside (or instead of) fixes.
type SensorFailure string

const (
	SensorPermissionDenied    SensorFailure = "permission_denied"
	SensorPositionUnavailable SensorFailure = "position_unavailable"
	SensorTimeout             SensorFailure = "timeout"
	SensorUnknown             SensorFailure = "unknown"
)

// Message is the operator-facing text for a failure reason.
func (f SensorFailure) Message() string {
	switch f {
	case SensorPermissionDenied:
		return "location permission denied by the driver's device"
	case SensorPositionUnavailable:
		return "driver position unavailable"
	case SensorTimeout:
		return "timed out waiting for a driver position"
	default:
		return "unknown location error"
	}
}
