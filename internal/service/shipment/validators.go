package shipment

import (
	"regexp"
	"strings"

	"expresso/internal/entities"
)

var trackingCodePattern = regexp.MustCompile(`^EI[0-9]{8}$`)

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func isValidTrackingCode(code string) bool {
	return trackingCodePattern.MatchString(code)
}

func isValidStatus(status string) bool {
	switch entities.ShipmentStatusType(status) {
	case entities.StatusPending, entities.StatusInTransit,
		entities.StatusDelivered, entities.StatusReturned:
		return true
	default:
		return false
	}
}
