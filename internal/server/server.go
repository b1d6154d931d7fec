package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"GrowthBoard/internal/board"
	"GrowthBoard/internal/model"
	"GrowthBoard/internal/registry"
)

//go:embed index.html
var pageFS embed.FS

// Server exposes the dashboard over HTTP: the page itself on /, the
// render-cycle API on /api/dashboard.
type Server struct {
	Engine *board.Engine

	httpSrv *http.Server
	page    *template.Template
}

// NewServer creates the HTTP server on the given listen address.
func NewServer(addr string, engine *board.Engine) (*Server, error) {
	page, err := template.ParseFS(pageFS, "index.html")
	if err != nil {
		return nil, err
	}

	s := &Server{Engine: engine, page: page}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // a cold cycle fetches ten symbols sequentially
	}
	return s, nil
}

// ListenAndServe blocks serving HTTP until Shutdown is called.
func (s *Server) ListenAndServe() error {
	log.Printf("[INFO] http server listening on %s", s.httpSrv.Addr)
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// pageData feeds the embedded template: the full company table and the
// tickers pre-selected on first load.
type pageData struct {
	Companies []model.CompanyRef
	Default   []string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	defaults := make([]string, 0, registry.DefaultSelectionSize)
	for _, c := range registry.DefaultSelection() {
		defaults = append(defaults, c.Ticker)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, pageData{Companies: registry.Companies(), Default: defaults}); err != nil {
		log.Printf("[ERROR] render page: %v", err)
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	selection, ok := s.resolveSelection(w, r)
	if !ok {
		return
	}

	dash, err := s.Engine.Render(selection)
	switch {
	case errors.Is(err, board.ErrEmptySelection):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, board.ErrNoData):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		log.Printf("[ERROR] render cycle: %v", err)
		writeError(w, http.StatusInternalServerError, "render cycle failed")
		return
	}

	writeJSON(w, http.StatusOK, dash)
}

// resolveSelection maps the tickers query parameter onto registry entries,
// preserving request order. An unrecognized ticker is a client error.
func (s *Server) resolveSelection(w http.ResponseWriter, r *http.Request) ([]model.CompanyRef, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("tickers"))
	if raw == "" {
		return nil, true // empty selection: the engine reports it
	}
	var selection []model.CompanyRef
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		ref, ok := registry.Lookup(t)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown ticker: "+t)
			return nil, false
		}
		selection = append(selection, ref)
	}
	return selection, true
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "source": s.Engine.Fetcher.Name()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
