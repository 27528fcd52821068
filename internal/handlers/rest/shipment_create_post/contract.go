//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_create_post_test
package shipment_create_post

import (
	"context"

	"expresso/internal/entities"
	"expresso/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateShipment(ctx context.Context, shipmentModifyEntity entities.ShipmentModify, accountID int64) (string, error)
}
