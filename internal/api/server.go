// Package api is the HTTP transport the game server calls every turn.
// Move and hint endpoints are POST-only and, when secure endpoints are on,
// require the shared X-SECURE-KEY header. GET endpoints are public.
package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/talgya/faction-logic/internal/engine"
	"github.com/talgya/faction-logic/internal/game"
)

// SecureKeyHeader carries the shared secret on secured requests.
const SecureKeyHeader = "X-SECURE-KEY"

const maxBodyBytes = 1 << 20

// Hints are never resent, so the limit only guards against runaway clients
// and sits far above any game server's hint rate.
const (
	hintRateLimit  = 1000
	hintRateWindow = time.Minute
)

// Server serves the faction logic over HTTP.
type Server struct {
	Logic     *engine.Logic
	Port      int
	SecureKey string // Expected X-SECURE-KEY value. Empty = endpoints open.

	HintLimiter *RateLimiter

	validate *validator.Validate
	listener net.Listener
	http     *http.Server
}

// NewServer wires a server around logic. Pass an empty key to disable the
// secure key check.
func NewServer(logic *engine.Logic, port int, secureKey string) *Server {
	return &Server{
		Logic:       logic,
		Port:        port,
		SecureKey:   secureKey,
		HintLimiter: NewRateLimiter(hintRateLimit, hintRateWindow),
		validate:    validator.New(),
	}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Turn endpoints, called once per base and once per unit every turn.
	mux.HandleFunc("POST /moves/base", s.secureOnly(s.handleBaseMove))
	mux.HandleFunc("POST /moves/unit", s.secureOnly(s.handleUnitMove))

	// Hints.
	mux.HandleFunc("POST /hints/pois", s.secureOnly(RateLimitMiddleware(s.HintLimiter, s.handlePOIs)))
	mux.HandleFunc("POST /hints/codes", s.secureOnly(RateLimitMiddleware(s.HintLimiter, s.handleBonusCode)))

	mux.HandleFunc("GET /stats", s.handleStats)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return withRequestID(mux)
}

// Start binds the port and serves in a goroutine. A bind failure is
// returned immediately.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind http listener %s: %w", addr, err)
	}
	s.listener = ln
	s.http = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}

	slog.Info("HTTP API starting", "addr", ln.Addr().String(), "secure_endpoints", s.SecureKey != "")
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
		}
	}()
	return nil
}

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// secureOnly rejects requests whose X-SECURE-KEY does not match.
func (s *Server) secureOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.SecureKey != "" {
			got := r.Header.Get(SecureKeyHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(s.SecureKey)) != 1 {
				logger(r.Context()).Warn("rejected request without valid secure key", "path", r.URL.Path)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next(w, r)
	}
}

func (s *Server) handleBaseMove(w http.ResponseWriter, r *http.Request) {
	var in game.BaseMoveInput
	if !s.decode(w, r, &in) {
		return
	}
	move := s.Logic.NextBaseMove(r.Context(), in)
	logger(r.Context()).Debug("base move", "game_id", in.Context.GameID, "turn", in.Context.Turn, "move", move.Type)
	writeJSON(w, move)
}

func (s *Server) handleUnitMove(w http.ResponseWriter, r *http.Request) {
	var in game.UnitMoveInput
	if !s.decode(w, r, &in) {
		return
	}
	writeJSON(w, s.Logic.NextUnitMove(r.Context(), in))
}

type ack struct {
	Status string `json:"status"`
}

func (s *Server) handlePOIs(w http.ResponseWriter, r *http.Request) {
	var hint game.POIsHint
	if !s.decode(w, r, &hint) {
		return
	}
	writeJSON(w, ack{Status: s.Logic.RegisterPOIs(r.Context(), hint)})
}

func (s *Server) handleBonusCode(w http.ResponseWriter, r *http.Request) {
	var code game.BonusCode
	if !s.decode(w, r, &code) {
		return
	}
	writeJSON(w, ack{Status: s.Logic.RegisterBonusCode(r.Context(), code)})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logic.Status())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// decode reads a JSON body into v and validates it. On failure the error
// response is already written.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger(r.Context()).Warn("invalid request body", "path", r.URL.Path, "error", err)
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		logger(r.Context()).Warn("request failed validation", "path", r.URL.Path, "error", err)
		http.Error(w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

type loggerKey struct{}

// withRequestID tags every request with an id, echoed in X-Request-ID and
// attached to the request's logger.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		l := slog.Default().With("request_id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), loggerKey{}, l)))
	})
}

func logger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
