// Package api exposes the parser over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"arcparse/conf"
	nlp "arcparse/nlp/types"
	"arcparse/xlog"
)

// Parser is the parsing capability the server exposes.
type Parser interface {
	Parse(nlp.TaggedSentence) (*nlp.BasicDepGraph, error)
}

type Server struct {
	cfg    conf.Server
	parser Parser
	router *chi.Mux
}

type tokenJSON struct {
	Form string `json:"form"`
	POS  string `json:"pos"`
}

type parseRequest struct {
	Tokens []tokenJSON `json:"tokens"`
}

type arcJSON struct {
	Head     int    `json:"head"`
	Modifier int    `json:"modifier"`
	Relation string `json:"relation"`
}

type parseResponse struct {
	Tokens []tokenJSON `json:"tokens"`
	Arcs   []arcJSON   `json:"arcs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// MaxTokens bounds request size; greedy parsing is linear but requests
// should stay sentence-shaped.
const MaxTokens = 512

func NewServer(cfg conf.Server, parser Parser) *Server {
	s := &Server{
		cfg:    cfg,
		parser: parser,
		router: chi.NewRouter(),
	}

	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(xlog.Middleware())
	if cfg.RateLimit > 0 {
		s.router.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
	}

	s.router.Get("/healthz", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	s.router.Post("/v1/parse", s.handleParse)
	return s
}

// Handler exposes the router, e.g. for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Tokens) == 0 {
		writeError(w, http.StatusBadRequest, "empty sentence")
		return
	}
	if len(req.Tokens) > MaxTokens {
		writeError(w, http.StatusRequestEntityTooLarge, "sentence too long")
		return
	}

	sent := make(nlp.TaggedSentence, len(req.Tokens))
	for i, token := range req.Tokens {
		if token.Form == "" || token.POS == "" {
			writeError(w, http.StatusBadRequest, "every token needs form and pos")
			return
		}
		sent[i] = nlp.TaggedToken{Token: token.Form, POS: token.POS}
	}

	start := time.Now()
	graph, err := s.parser.Parse(sent)
	ParseDuration.Observe(time.Since(start).Seconds())
	SentenceLength.Observe(float64(len(sent)))
	if err != nil {
		SentencesParsed.WithLabelValues("error").Inc()
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	SentencesParsed.WithLabelValues("ok").Inc()

	resp := parseResponse{Tokens: req.Tokens, Arcs: make([]arcJSON, 0, len(graph.Arcs))}
	for _, arc := range graph.Arcs {
		resp.Arcs = append(resp.Arcs, arcJSON{Head: arc.Head, Modifier: arc.Modifier, Relation: string(arc.Relation)})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	logger := xlog.WithComponent("api")
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.cfg.Addr).Msg("listening")
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		logger.Info().Msg("shutting down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
