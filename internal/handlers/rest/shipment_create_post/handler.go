package shipment_create_post

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"expresso/internal/entities"
	"expresso/internal/pkg/middlewares/session_auth"
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
	account, ok := session_auth.AccountFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/gestao", http.StatusSeeOther)
		return
	}

	err := r.ParseForm()
	if err != nil {
		h.flashAndBack(w, r, "Formulário inválido. Tente novamente.")
		return
	}

	shipmentModify := entities.ShipmentModify{
		SenderName:       formValue(r, "remetente_nome"),
		SenderAddress:    formValue(r, "remetente_endereco"),
		SenderCity:       formValue(r, "remetente_cidade"),
		RecipientName:    formValue(r, "destinatario_nome"),
		RecipientAddress: formValue(r, "destinatario_endereco"),
		RecipientCity:    formValue(r, "destinatario_cidade"),
		ProductType:      formValue(r, "tipo_produto"),
		Notes:            formValue(r, "observacoes"),
	}

	shipmentModify.Weight, err = formFloat(r, "peso")
	if err != nil {
		h.flashAndBack(w, r, "Peso inválido.")
		return
	}
	shipmentModify.DeclaredValue, err = formFloat(r, "valor_declarado")
	if err != nil {
		h.flashAndBack(w, r, "Valor declarado inválido.")
		return
	}

	code, err := h.service.CreateShipment(r.Context(), shipmentModify, account.ID)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields):
			h.flashAndBack(w, r, "Preencha todos os campos obrigatórios.")
		case errors.Is(err, shipment.ErrInvalidWeight):
			h.flashAndBack(w, r, "Peso inválido.")
		case errors.Is(err, shipment.ErrInvalidDeclaredValue):
			h.flashAndBack(w, r, "Valor declarado inválido.")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create shipment")
			h.flashAndBack(w, r, "Erro ao criar entrega. Tente novamente.")
		}
		return
	}

	err = h.store.AddFlashSuccess(w, r, fmt.Sprintf("Entrega criada com sucesso! Código: %s", code))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("set flash")
	}
	http.Redirect(w, r, "/gestao/entregas", http.StatusSeeOther)
}

func (h *Handler) flashAndBack(w http.ResponseWriter, r *http.Request, text string) {
	err := h.store.AddFlashError(w, r, text)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("set flash")
	}
	http.Redirect(w, r, "/gestao/nova-entrega", http.StatusSeeOther)
}

func formValue(r *http.Request, key string) *string {
	value := r.PostFormValue(key)
	return &value
}

func formFloat(r *http.Request, key string) (*float64, error) {
	raw := r.PostFormValue(key)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", key, err)
	}
	return &value, nil
}
