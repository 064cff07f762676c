// Package web serves a small read-only UI over the stored sessions.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/s3r3ga/ftracker/internal/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	store     *storage.Store
	templates *template.Template
}

func NewHandler(store *storage.Store) (*Handler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"fixed": func(v float64) string { return fmt.Sprintf("%.3f", v) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{store: store, templates: tmpl}, nil
}

// Routes builds the application mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/", h.Index)
	mux.HandleFunc("/sessions", h.SessionList)

	return mux
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	totals, err := h.store.Totals()
	if err != nil {
		h.serverError(w, err)
		return
	}
	byType, err := h.store.TotalsByType()
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.render(w, "index.html", struct {
		Totals *storage.Totals
		ByType []storage.KindTotals
	}{totals, byType})
}

func (h *Handler) SessionList(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 50
	}

	sessions, err := h.store.Sessions(storage.SessionFilters{
		TrainingType: r.URL.Query().Get("type"),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.render(w, "sessions.html", struct {
		Sessions []storage.Session
	}{sessions})
}

func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Template %s failed: %v", name, err)
	}
}

func (h *Handler) serverError(w http.ResponseWriter, err error) {
	log.Printf("Handler error: %v", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
