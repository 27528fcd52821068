//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"expresso/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (int64, error)
	GetAll(ctx context.Context) ([]entities.Shipment, error)
	GetByCode(ctx context.Context, trackingCode string) (*entities.Shipment, error)
	UpdateStatus(ctx context.Context, trackingCode string, status entities.ShipmentStatusType) (*entities.Shipment, error)
	CountByStatus(ctx context.Context) (map[entities.ShipmentStatusType]int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type CodeFactory interface {
	NewCode() (string, error)
}
