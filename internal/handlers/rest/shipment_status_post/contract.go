//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_post_test
package shipment_status_post

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
	UpdateStatus(ctx context.Context, trackingCode string, next entities.ShipmentStatusType) (*entities.Shipment, error)
}
