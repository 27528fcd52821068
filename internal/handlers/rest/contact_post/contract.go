//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=contact_post_test
package contact_post

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
	Submit(ctx context.Context, msg entities.ContactMessage) error
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
