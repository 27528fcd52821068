package entities

import "time"

type Shipment struct {
	ID               int64
	TrackingCode     string
	SenderName       string
	SenderAddress    string
	SenderCity       string
	RecipientName    string
	RecipientAddress string
	RecipientCity    string
	ProductType      string
	Weight           *float64
	DeclaredValue    *float64
	Notes            string
	Status           ShipmentStatusType
	CreatedAt        time.Time
	UpdatedAt        time.Time
	AccountID        int64
}

// ShipmentStatusType values keep the Portuguese vocabulary because the
// public tracking API exposes them verbatim.
type ShipmentStatusType string

const (
	StatusPending   ShipmentStatusType = "pendente"
	StatusInTransit ShipmentStatusType = "em_transito"
	StatusDelivered ShipmentStatusType = "entregue"
	StatusReturned  ShipmentStatusType = "devolvida"
)

const DefaultShipmentStatus = StatusPending

func (s ShipmentStatusType) String() string {
	return string(s)
}

// CanTransitionTo reports whether the status change is part of the legal
// lifecycle: pendente -> em_transito -> entregue | devolvida.
func (s ShipmentStatusType) CanTransitionTo(next ShipmentStatusType) bool {
	switch s {
	case StatusPending:
		return next == StatusInTransit
	case StatusInTransit:
		return next == StatusDelivered || next == StatusReturned
	default:
		return false
	}
}

type ShipmentModify struct {
	ID               *int64
	TrackingCode     *string
	SenderName       *string
	SenderAddress    *string
	SenderCity       *string
	RecipientName    *string
	RecipientAddress *string
	RecipientCity    *string
	ProductType      *string
	Weight           *float64
	DeclaredValue    *float64
	Notes            *string
	Status           *ShipmentStatusType
	AccountID        *int64
}

// ShipmentSummary is the public view returned by the tracking lookup.
type ShipmentSummary struct {
	TrackingCode  string
	Status        ShipmentStatusType
	RecipientName string
	RecipientCity string
	CreatedAt     time.Time
}

// ShipmentStats is a point-in-time aggregation over all shipments.
type ShipmentStats struct {
	Total       int64
	Pending     int64
	InTransit   int64
	Delivered   int64
	Returned    int64
	SuccessRate float64
}
