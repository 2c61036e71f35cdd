// Package server exposes the prediction service over HTTP. The transport
// is deliberately thin: it deserializes the request, invokes the predictor
// and serializes the result. Computation failures ride inside the result's
// error field with a 200 status; only an undecodable request is rejected.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fjacquet/goalcast/internal/logging"
	"fjacquet/goalcast/internal/predictor"
)

// Server wires the prediction service into an HTTP handler.
type Server struct {
	log logging.Logger
	svc *predictor.Service
}

// New creates a Server around the given prediction service.
func New(log logging.Logger, svc *predictor.Service) *Server {
	return &Server{log: log, svc: svc}
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Post("/predict_goal_completion", s.handlePredict)
	return r
}

// ListenAndServe runs the HTTP server until it fails.
func (s *Server) ListenAndServe(addr string, readTimeout, writeTimeout time.Duration) error {
	s.log.Info("Starting prediction server", logging.F(logging.FieldAddr, addr))
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictor.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.WithError(err).Warn("Failed to decode prediction request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	result := s.svc.Predict(req)
	s.log.Info("Prediction served",
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()),
		logging.F(logging.FieldCount, len(req.History)))

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
