package shipment_status_post

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"expresso/internal/entities"
	"expresso/internal/pkg/web"
	"expresso/internal/service/shipment"
	"expresso/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	store   *web.Store
}

func New(log handlerLogger, service Service, store *web.Store) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		store:   store,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	trackingCode := mux.Vars(r)["codigo"]

	err := r.ParseForm()
	if err != nil {
		h.flash(w, r, false, "Requisição inválida.")
		return
	}
	next := entities.ShipmentStatusType(r.PostFormValue("status"))

	updated, err := h.service.UpdateStatus(r.Context(), trackingCode, next)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound),
			errors.Is(err, shipment.ErrInvalidTrackingCode):
			h.flash(w, r, false, "Entrega não encontrada.")
		case errors.Is(err, shipment.ErrInvalidStatus),
			errors.Is(err, shipment.ErrInvalidTransition):
			h.flash(w, r, false, "Mudança de status não permitida.")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("update shipment status")
			h.flash(w, r, false, "Erro ao atualizar status. Tente novamente.")
		}
		return
	}

	h.flash(w, r, true, fmt.Sprintf("Status da entrega %s atualizado.", updated.TrackingCode))
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, success bool, text string) {
	var err error
	if success {
		err = h.store.AddFlashSuccess(w, r, text)
	} else {
		err = h.store.AddFlashError(w, r, text)
	}
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("set flash")
	}
	http.Redirect(w, r, "/gestao/entregas", http.StatusSeeOther)
}
