package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agentics/gatekeeper/internal/biz/domain"
	"github.com/agentics/gatekeeper/internal/biz/usecase"
	"github.com/agentics/gatekeeper/internal/metrics"
)

// Server provides the HTTP vetting API
type Server struct {
	vetUC *usecase.VetUsecase

	router *mux.Router
	server *http.Server
	port   int
}

// NewServer creates a new API server
func NewServer(vetUC *usecase.VetUsecase, port int) *Server {
	s := &Server{
		vetUC:  vetUC,
		router: mux.NewRouter(),
		port:   port,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/vet_join", s.handleVetJoin).Methods(http.MethodPost)
	s.router.HandleFunc("/vet_message", s.handleVetMessage).Methods(http.MethodPost)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// Router returns the HTTP handler, exposed for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.router,
	}

	fmt.Printf("[API] Starting HTTP server on port %d\n", s.port)
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Shutdown(context.Background())
	}
	return nil
}

// GetPort returns the server port
func (s *Server) GetPort() int {
	return s.port
}

// ============ Vet Handlers ============

func (s *Server) handleVetJoin(w http.ResponseWriter, r *http.Request) {
	var req domain.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if req.Note == "" {
		http.Error(w, "note is required", http.StatusBadRequest)
		return
	}

	metrics.VetRequests.WithLabelValues(domain.VetKindJoin).Inc()

	verdict, err := s.vetUC.VetJoin(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.observe(domain.VetKindJoin, verdict)

	// Both fields pass through verbatim, null when the model omitted them
	s.writeJSON(w, map[string]interface{}{
		"decision": verdict.Decision(),
		"reason":   verdict.Reason(),
	})
}

func (s *Server) handleVetMessage(w http.ResponseWriter, r *http.Request) {
	var req domain.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Author == "" {
		http.Error(w, "author is required", http.StatusBadRequest)
		return
	}
	if req.Body == "" {
		http.Error(w, "body is required", http.StatusBadRequest)
		return
	}

	metrics.VetRequests.WithLabelValues(domain.VetKindMessage).Inc()

	verdict, err := s.vetUC.VetMessage(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.observe(domain.VetKindMessage, verdict)

	// is_spam defaults to false when absent; reason stays null
	s.writeJSON(w, map[string]interface{}{
		"is_spam": verdict.IsSpamOrFalse(),
		"reason":  verdict.Reason(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// observe records the per-verdict collectors
func (s *Server) observe(kind string, verdict *domain.Verdict) {
	if verdict.Fallback {
		metrics.Fallbacks.WithLabelValues(kind).Inc()
	}
	metrics.JudgeDuration.WithLabelValues(kind).Observe(float64(verdict.LatencyMS) / 1000)
}

// ============ Helpers ============

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
