package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Handler is the evaluation logic a Server hosts.
type Handler interface {
	HandleEvaluate(ctx context.Context, req EvaluateRequest) (*EvaluateResponse, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, req EvaluateRequest) (*EvaluateResponse, error)

// HandleEvaluate calls f.
func (f HandlerFunc) HandleEvaluate(ctx context.Context, req EvaluateRequest) (*EvaluateResponse, error) {
	return f(ctx, req)
}

// Server hosts a Handler behind the evaluator HTTP protocol. It serves the
// evaluator card for discovery and forwards evaluate requests.
type Server struct {
	card    EvaluatorCard
	handler Handler
	http    *http.Server
	log     *logrus.Logger
}

// NewServer creates a server for the given card and handler.
func NewServer(card EvaluatorCard, handler Handler, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{card: card, handler: handler, log: log}
}

// Routes returns the server's handler for mounting in tests or a parent mux.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+CardPath, s.handleCard)
	mux.HandleFunc("POST "+EvaluatePath, s.handleEvaluate)
	return mux
}

// Start begins serving on addr in a background goroutine.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
	}

	s.log.WithFields(logrus.Fields{
		"addr":      addr,
		"evaluator": s.card.Name,
	}).Info("remote evaluator listening")

	go s.http.ListenAndServe()

	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// handleCard serves the evaluator card as JSON at the well-known endpoint.
func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(s.card); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleEvaluate decodes a request, runs the handler, and writes the verdict.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "decode request: "+err.Error())
		return
	}

	resp, err := s.handler.HandleEvaluate(r.Context(), req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"specialist": req.Specialist,
			"error":      err,
		}).Warn("evaluate request failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	json.NewEncoder(w).Encode(resp)
}

// errorBody is the JSON shape of an error response.
type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorBody{Error: msg})
}
