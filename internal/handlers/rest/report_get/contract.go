//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_get_test
package report_get

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
	ComputeStats(ctx context.Context) (*entities.ShipmentStats, error)
}
