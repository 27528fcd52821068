package dashboard_get

import (
	"net/http"

	"expresso/internal/pkg/middlewares/session_auth"
	"expresso/internal/pkg/web"
	"expresso/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	renderer *web.Renderer
	store    *web.Store
}

func New(log handlerLogger, service Service, renderer *web.Renderer, store *web.Store) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		renderer: renderer,
		store:    store,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	account, _ := session_auth.AccountFrom(r.Context())

	stats, err := h.service.ComputeStats(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("compute stats")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	data := web.PageData{
		Title:   "Dashboard",
		Account: account,
		Flashes: h.store.Flashes(w, r),
		Data:    stats,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = h.renderer.Render(w, "gestao/dashboard", data)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render dashboard")
	}
}
