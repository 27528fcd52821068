package track_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"expresso/internal/service/shipment"
	"expresso/pkg/logger"
)

const creationTimeLayout = "02/01/2006 15:04"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	trackingCode := mux.Vars(r)["codigo"]

	summary, err := h.service.TrackByCode(r.Context(), trackingCode)
	if err != nil {
		// an unknown code is an expected outcome for the public API,
		// answered with an explicit negative result
		if errors.Is(err, shipment.ErrShipmentNotFound) {
			h.writeJSON(w, http.StatusOK, TrackResponse{Encontrado: false})
			return
		}

		h.log.With(
			logger.NewField("error", err),
		).Error("track by code")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := TrackResponse{
		Encontrado:    true,
		Codigo:        summary.TrackingCode,
		Status:        summary.Status.String(),
		Destinatario:  summary.RecipientName,
		CidadeDestino: summary.RecipientCity,
		DataCriacao:   summary.CreatedAt.Format(creationTimeLayout),
	}
	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response TrackResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
