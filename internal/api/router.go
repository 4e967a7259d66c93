package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vhristo/betty/internal/session"
)

// NewRouter constructs the router with all session endpoints registered.
func NewRouter(mgr *session.Manager) http.Handler {
	h := NewHandler(mgr)
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/sessions", h.CreateSessionHandler)
	r.Delete("/sessions/{sessionId}", h.RemoveSessionHandler)
	r.Get("/sessions/{sessionId}/balance", h.GetBalanceHandler)
	r.Post("/sessions/{sessionId}/deposit", h.DepositHandler)
	r.Post("/sessions/{sessionId}/withdraw", h.WithdrawHandler)
	r.Post("/sessions/{sessionId}/bet", h.PlayRoundHandler)
	r.Get("/sessions/{sessionId}/rounds", h.ListRoundsHandler)

	return r
}
