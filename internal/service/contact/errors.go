package contact

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrDeliveryFailed        = errors.New("could not deliver contact message")
)
