package shipment

import (
	"expresso/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	return &entities.Shipment{
		ID:               s.ID,
		TrackingCode:     s.TrackingCode,
		SenderName:       s.SenderName,
		SenderAddress:    s.SenderAddress,
		SenderCity:       s.SenderCity,
		RecipientName:    s.RecipientName,
		RecipientAddress: s.RecipientAddress,
		RecipientCity:    s.RecipientCity,
		ProductType:      s.ProductType,
		Weight:           s.Weight,
		DeclaredValue:    s.DeclaredValue,
		Notes:            s.Notes,
		Status:           entities.ShipmentStatusType(s.Status),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
		AccountID:        s.AccountID,
	}
}

func FromDomainModify(shipmentModify *entities.ShipmentModify) *ShipmentModifyDB {
	if shipmentModify == nil {
		return nil
	}
	shipmentDB := &ShipmentModifyDB{
		ID:               shipmentModify.ID,
		TrackingCode:     shipmentModify.TrackingCode,
		SenderName:       shipmentModify.SenderName,
		SenderAddress:    shipmentModify.SenderAddress,
		SenderCity:       shipmentModify.SenderCity,
		RecipientName:    shipmentModify.RecipientName,
		RecipientAddress: shipmentModify.RecipientAddress,
		RecipientCity:    shipmentModify.RecipientCity,
		ProductType:      shipmentModify.ProductType,
		Weight:           shipmentModify.Weight,
		DeclaredValue:    shipmentModify.DeclaredValue,
		Notes:            shipmentModify.Notes,
		AccountID:        shipmentModify.AccountID,
	}

	if shipmentModify.Status != nil {
		statusType := shipmentModify.Status.String()
		shipmentDB.Status = &statusType
	}

	return shipmentDB
}

func ToDomainList(shipmentsDB []ShipmentDB) []entities.Shipment {
	if len(shipmentsDB) == 0 {
		return []entities.Shipment{}
	}

	result := make([]entities.Shipment, len(shipmentsDB))
	for i, shipmentDB := range shipmentsDB {
		result[i] = *ToDomain(&shipmentDB)
	}
	return result
}
