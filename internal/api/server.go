package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vhristo/betty/internal/session"
)

// NewServer creates and returns a configured *http.Server for the session API.
func NewServer(port uint16, mgr *session.Manager) *http.Server {
	mux := NewRouter(mgr)

	addr := fmt.Sprintf(":%d", port)

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
