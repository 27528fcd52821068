package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidWeight         = errors.New("weight must be zero or positive")
	ErrInvalidDeclaredValue  = errors.New("declared value must be zero or positive")
	ErrInvalidStatus         = errors.New("invalid shipment status")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrInvalidTrackingCode   = errors.New("invalid tracking code")

	ErrShipmentNotFound = errors.New("shipment not found")
	ErrCodeConflict     = errors.New("tracking code already exists")
	ErrCodeExhausted    = errors.New("could not generate a unique tracking code")
)
