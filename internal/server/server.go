package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"StockScout/internal/config"
	"StockScout/internal/model"
	"StockScout/internal/scanner"
)

// Server exposes the scan trigger and notification config over HTTP.
// It is the surface a dashboard front-end consumes; rendering itself
// lives elsewhere.
type Server struct {
	Scanner          *scanner.Scanner
	DefaultLimit     int
	NotifyConfigPath string
}

// New creates a Server.
func New(sc *scanner.Scanner, defaultLimit int, notifyConfigPath string) *Server {
	return &Server{
		Scanner:          sc,
		DefaultLimit:     defaultLimit,
		NotifyConfigPath: notifyConfigPath,
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/scan", s.handleScan)
		r.Get("/config/notify", s.handleGetNotify)
		r.Put("/config/notify", s.handlePutNotify)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type scanRequest struct {
	Limit int `json:"limit"`
}

type scanResponse struct {
	Count   int                `json:"count"`
	Results []model.ScanResult `json:"results"`
}

// handleScan runs a synchronous scan. Progress is logged server side;
// the scan is sequential so the request blocks until it completes.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	limit := req.Limit
	if limit <= 0 {
		limit = s.DefaultLimit
	}

	results := s.Scanner.Scan(limit, scanner.ProgressFunc(func(done, total int, label string) {
		log.Printf("[INFO] scan %d/%d: %s", done, total, label)
	}))
	writeJSON(w, http.StatusOK, scanResponse{Count: len(results), Results: results})
}

func (s *Server) handleGetNotify(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, config.LoadNotify(s.NotifyConfigPath))
}

func (s *Server) handlePutNotify(w http.ResponseWriter, r *http.Request) {
	var cfg model.NotifyConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := config.SaveNotify(s.NotifyConfigPath, &cfg); err != nil {
		log.Printf("[ERROR] save notify config: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save config")
		return
	}
	writeJSON(w, http.StatusOK, &cfg)
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
