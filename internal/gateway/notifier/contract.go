//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifier_test
package notifier

import "expresso/pkg/logger"

type gatewayLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
