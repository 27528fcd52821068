package page_get

import (
	"net/http"

	"expresso/internal/pkg/middlewares/session_auth"
	"expresso/internal/pkg/web"
	"expresso/pkg/logger"
)

// Handler renders one embedded template. The same handler serves public
// pages and, mounted behind the session middleware, static staff pages.
type Handler struct {
	log      handlerLogger
	renderer *web.Renderer
	store    *web.Store
	template string
	title    string
}

func New(log handlerLogger, renderer *web.Renderer, store *web.Store, template, title string) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		renderer: renderer,
		store:    store,
		template: template,
		title:    title,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	account, _ := session_auth.AccountFrom(r.Context())

	data := web.PageData{
		Title:   h.title,
		Account: account,
		Flashes: h.store.Flashes(w, r),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := h.renderer.Render(w, h.template, data)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("template", h.template),
		).Error("render page")
	}
}
