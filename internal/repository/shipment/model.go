package shipment

import "time"

type ShipmentDB struct {
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
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	AccountID        int64
}

type ShipmentModifyDB struct {
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
	Status           *string
	AccountID        *int64
}
