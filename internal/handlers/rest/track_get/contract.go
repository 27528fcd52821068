//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=track_get_test
package track_get

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
	TrackByCode(ctx context.Context, trackingCode string) (*entities.ShipmentSummary, error)
}

type TrackResponse struct {
	Encontrado    bool   `json:"encontrado"`
	Codigo        string `json:"codigo,omitempty"`
	Status        string `json:"status,omitempty"`
	Destinatario  string `json:"destinatario,omitempty"`
	CidadeDestino string `json:"cidade_destino,omitempty"`
	DataCriacao   string `json:"data_criacao,omitempty"`
}
