package http

import (
	"context"
	"embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/aretw0/domino/internal/logging"
	"github.com/aretw0/domino/pkg/domain"
	"github.com/aretw0/domino/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

//go:embed static/index.html
var static embed.FS

const (
	writeWait = 5 * time.Second
	idleWait  = 5 * time.Minute
)

// Tile is the subset of a domino tile driven by a websocket connection.
type Tile interface {
	Initialize(ctx context.Context) error
	Dispatch(ctx context.Context, intent domain.Intent) error
}

// TileFactory builds a fresh tile rendering to r. It is called once per
// websocket connection, so connections never share state.
type TileFactory func(r ports.Renderer) Tile

// Server serves the browser frontend and its websocket.
type Server struct {
	newTile TileFactory
	metrics http.Handler
	logger  *slog.Logger

	upgrader websocket.Upgrader
	nextID   atomic.Uint64
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger used for connection events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler mounts h on /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithCheckOrigin overrides the websocket origin policy (same-origin by default).
func WithCheckOrigin(fn func(r *http.Request) bool) Option {
	return func(s *Server) {
		s.upgrader.CheckOrigin = fn
	}
}

// NewServer creates a Server. Use Routes to obtain its handler.
func NewServer(factory TileFactory, opts ...Option) *Server {
	s := &Server{
		newTile: factory,
		logger:  logging.NewNop(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler is a shortcut for NewServer(factory, opts...).Routes().
func NewHandler(factory TileFactory, opts ...Option) http.Handler {
	return NewServer(factory, opts...).Routes()
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.Index)
	r.Get("/healthz", s.Health)
	r.Get("/api/pips", s.Pips)
	r.Get("/ws", s.Socket)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}

// Index serves the tile page.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		s.logger.Error("index: read embedded page", "error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// Health reports liveness.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type pipTableResponse struct {
	Orientation domain.Orientation                 `json:"orientation"`
	Faces       [domain.FaceCount]domain.PipVector `json:"faces"`
}

// Pips returns the visible-pip table for ?orientation= (vertical when omitted).
func (s *Server) Pips(w http.ResponseWriter, r *http.Request) {
	o := domain.Vertical
	if raw := r.URL.Query().Get("orientation"); raw != "" {
		var err error
		if o, err = domain.ParseOrientation(raw); err != nil {
			writeJSON(w, http.StatusBadRequest, domain.NewErrorMessage(err))
			return
		}
	}

	table, err := domain.PipTable(o)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, domain.NewErrorMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, pipTableResponse{Orientation: o, Faces: table})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
