package contact_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"expresso/internal/entities"
	"expresso/internal/service/contact"
	"expresso/pkg/logger"
)

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
	err := r.ParseForm()
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, ContactResponse{
			Success: false,
			Message: "Erro ao enviar mensagem. Tente novamente.",
		})
		return
	}

	msg := entities.ContactMessage{
		Name:    r.PostFormValue("nome"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("telefone"),
		Subject: r.PostFormValue("assunto"),
		Body:    r.PostFormValue("mensagem"),
	}

	err = h.service.Submit(r.Context(), msg)
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrMissingRequiredFields):
			h.writeJSON(w, http.StatusBadRequest, ContactResponse{
				Success: false,
				Message: "Preencha todos os campos obrigatórios.",
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("contact submission")
			h.writeJSON(w, http.StatusInternalServerError, ContactResponse{
				Success: false,
				Message: "Erro ao enviar mensagem. Tente novamente.",
			})
		}
		return
	}

	h.writeJSON(w, http.StatusOK, ContactResponse{
		Success: true,
		Message: "Mensagem enviada com sucesso! Entraremos em contato em breve.",
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response ContactResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
