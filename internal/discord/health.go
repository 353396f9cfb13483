package discord

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandUnix atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandUnix.Store(time.Now().UnixNano())
}

// HTTPServer exposes the bot's health and metrics endpoints
type HTTPServer struct {
	bot    *Bot
	server *http.Server
}

// NewHTTPServer creates the bot's side HTTP server
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	h := &HTTPServer{bot: bot}

	r := chi.NewRouter()
	r.Get("/healthz", h.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())

	h.server = &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return h
}

// Start serves in the background
func (h *HTTPServer) Start() {
	slog.Info(LogMsgHealthStarting, "addr", h.server.Addr)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogMsgHealthFailed, "error", err)
		}
	}()
}

// Stop shuts the server down
func (h *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.server.Shutdown(ctx); err != nil {
		slog.Error(LogMsgHealthStopFailed, "error", err)
	}
}

// HandleHealth reports gateway connectivity and core API reachability
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady
	apiReachable := h.bot.Client != nil && h.bot.Client.Healthy(r.Context())

	health := HealthStatus{
		Status:           HealthStatusHealthy,
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		APIReachable:     apiReachable,
	}
	if last := lastCommandUnix.Load(); last > 0 {
		health.LastCommandTime = time.Unix(0, last).UTC()
	}

	status := http.StatusOK
	if !connected || !apiReachable {
		health.Status = HealthStatusDegraded
		status = http.StatusServiceUnavailable
	}

	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(health)
}
