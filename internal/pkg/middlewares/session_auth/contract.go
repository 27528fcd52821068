package session_auth

import (
	"context"

	"expresso/internal/entities"
	"expresso/pkg/logger"
)

type AuthService interface {
	ValidateSession(ctx context.Context, token string) (*entities.Account, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
