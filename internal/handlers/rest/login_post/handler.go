package login_post

import (
	"errors"
	"net/http"

	"expresso/internal/pkg/web"
	"expresso/internal/service/auth"
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
	err := r.ParseForm()
	if err != nil {
		http.Redirect(w, r, "/gestao", http.StatusSeeOther)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	session, err := h.service.Authenticate(r.Context(), username, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.log.With(
				logger.NewField("error", err),
			).Error("authenticate")
		}

		// same flash for every failure mode, no credential oracle
		if err := h.store.AddFlashError(w, r, "Usuário ou senha inválidos"); err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("set flash")
		}
		http.Redirect(w, r, "/gestao", http.StatusSeeOther)
		return
	}

	err = h.store.SetToken(w, r, session.Token)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("set session cookie")
		http.Redirect(w, r, "/gestao", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/gestao/dashboard", http.StatusSeeOther)
}
