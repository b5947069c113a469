package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Health is the liveness listener. Download files are served by an external
// static server; this endpoint only tells orchestrators the bot is up.
type Health struct {
	srv *http.Server
}

func NewHealth(port int) *Health {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return &Health{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start runs the listener until Shutdown is called.
func (h *Health) Start() {
	if err := h.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("health listener stopped", "error", err)
	}
}

func (h *Health) Shutdown(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}
