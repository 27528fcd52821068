package logout_get

import (
	"net/http"

	"expresso/internal/pkg/web"
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

// ServeHTTP clears the session unconditionally; logging out twice is fine.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := h.store.Token(r)

	err := h.service.Logout(r.Context(), token)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("logout")
	}

	err = h.store.ClearToken(w, r)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("clear session cookie")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
