package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cloud-ru/mcp-mortgage-go/internal/config"
)

// NewRouter собирает маршруты API; /metrics не ограничивается по частоте
func NewRouter(h *Handler, limiter *RateLimiter, logger *slog.Logger) http.Handler {
	limited := func(f http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, f)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.Index)
	mux.Handle("/schedule", limited(h.Schedule))
	mux.Handle("/overpayment", limited(h.Overpayment))
	mux.Handle("/compare", limited(h.Compare))
	mux.Handle("/metrics", promhttp.Handler())

	return RequestIDMiddleware(LoggingMiddleware(logger, mux))
}

// NewServer создает HTTP сервер с таймаутами из конфигурации
func NewServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
}
