package model

import (
	"errors"
	"fmt"
)

// Error taxonomy. Handlers classify with errors.Is: validation failures are
// rejected inline with the reason, store failures surface as a generic
// internal error, sensor failures render in the tracking panel.
var (
	ErrValidation = errors.New("validation error")
	ErrStore      = errors.New("store error")
	ErrSensor     = errors.New("sensor error")
)

// Specific validation failures, all matching ErrValidation under errors.Is.
var (
	ErrInvalidQuantity     = fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
	ErrUnknownMovementType = fmt.Errorf("%w: unknown movement type", ErrValidation)
	ErrUnknownTankSize     = fmt.Errorf("%w: unknown tank size", ErrValidation)
	ErrInvalidCoordinates  = fmt.Errorf("%w: latitude/longitude out of range", ErrValidation)
	ErrInvalidDate         = fmt.Errorf("%w: invalid date", ErrValidation)
)
