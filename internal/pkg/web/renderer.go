package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"expresso/internal/entities"
)

//go:embed templates/*.html templates/gestao/*.html
var templateFS embed.FS

// PageData is the payload every template receives.
type PageData struct {
	Title   string
	Account *entities.Account
	Flashes []Flash
	Data    interface{}
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.New("").Funcs(template.FuncMap{
		"statusLabel": statusLabel,
	}).ParseFS(templateFS, "templates/*.html", "templates/gestao/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data PageData) error {
	err := r.templates.ExecuteTemplate(w, name, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func statusLabel(status entities.ShipmentStatusType) string {
	switch status {
	case entities.StatusPending:
		return "Pendente"
	case entities.StatusInTransit:
		return "Em trânsito"
	case entities.StatusDelivered:
		return "Entregue"
	case entities.StatusReturned:
		return "Devolvida"
	default:
		return status.String()
	}
}
