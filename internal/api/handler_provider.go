package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vhristo/betty/internal/game"
	"github.com/vhristo/betty/internal/session"
	"github.com/vhristo/betty/internal/wallet"
)

// HandlerProvider wraps a session Manager and exposes HTTP handlers.
type HandlerProvider struct {
	mgr *session.Manager
}

// NewHandler returns a new Handler provider.
func NewHandler(mgr *session.Manager) *HandlerProvider {
	return &HandlerProvider{mgr: mgr}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)

		http.Error(w, `{"error":"internal json encode failure"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// parseSessionIDFromPath reads `{sessionId}` from routes like:
//
//	GET  /sessions/{sessionId}/balance
//	POST /sessions/{sessionId}/bet
func parseSessionIDFromPath(r *http.Request) (uuid.UUID, error) {
	idStr := chi.URLParam(r, "sessionId")
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("missing sessionId")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid sessionId: %w", err)
	}

	return id, nil
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// decodeAmount reads an {"amount": "10.00"} body. Amounts travel as
// decimal strings so no binary floating point touches the money path.
func decodeAmount(w http.ResponseWriter, r *http.Request) (decimal.Decimal, error) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB cap
	defer r.Body.Close()

	var req amountRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(&req)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return decimal.Zero, fmt.Errorf("empty body")
		}

		return decimal.Zero, fmt.Errorf("invalid JSON: %w", err)
	}

	return req.Amount, nil
}

func (h *HandlerProvider) lookupSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := parseSessionIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sessionId in path")
		return nil, false
	}

	s, err := h.mgr.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}

	return s, true
}

type outcomeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Balance string `json:"balance"`
}

func toOutcomeResponse(out wallet.Outcome) outcomeResponse {
	return outcomeResponse{
		Success: out.Success,
		Message: out.Message,
		Balance: out.Balance.StringFixed(2),
	}
}

type roundResponse struct {
	Ref      string    `json:"ref"`
	Bet      string    `json:"bet"`
	Win      string    `json:"win"`
	Won      bool      `json:"won"`
	Balance  string    `json:"balance"`
	PlayedAt time.Time `json:"playedAt"`
}

func toRoundResponse(round session.Round) roundResponse {
	return roundResponse{
		Ref:      round.Ref.String(),
		Bet:      round.Bet.StringFixed(2),
		Win:      round.Win.StringFixed(2),
		Won:      round.Win.Sign() > 0,
		Balance:  round.Balance.StringFixed(2),
		PlayedAt: round.PlayedAt,
	}
}

// --- Handlers ---

// CreateSessionHandler handles POST /sessions
func (h *HandlerProvider) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	s := h.mgr.Create()

	writeJSON(w, http.StatusCreated, map[string]any{
		"sessionId": s.ID.String(),
		"balance":   s.Balance().StringFixed(2),
		"minBet":    s.Settings().MinBet.StringFixed(2),
		"maxBet":    s.Settings().MaxBet.StringFixed(2),
	})
}

// RemoveSessionHandler handles DELETE /sessions/{sessionId}
func (h *HandlerProvider) RemoveSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseSessionIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sessionId in path")
		return
	}

	err = h.mgr.Remove(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// GetBalanceHandler handles GET /sessions/{sessionId}/balance
func (h *HandlerProvider) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sessionId": s.ID.String(),
		"balance":   s.Balance().StringFixed(2),
	})
}

// DepositHandler handles POST /sessions/{sessionId}/deposit
func (h *HandlerProvider) DepositHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	amount, err := decodeAmount(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out := s.Deposit(amount)
	if !out.Success {
		writeJSON(w, http.StatusBadRequest, toOutcomeResponse(out))
		return
	}

	writeJSON(w, http.StatusOK, toOutcomeResponse(out))
}

// WithdrawHandler handles POST /sessions/{sessionId}/withdraw
func (h *HandlerProvider) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	amount, err := decodeAmount(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out := s.Withdraw(amount)
	if !out.Success {
		writeJSON(w, http.StatusConflict, toOutcomeResponse(out))
		return
	}

	writeJSON(w, http.StatusOK, toOutcomeResponse(out))
}

// PlayRoundHandler handles POST /sessions/{sessionId}/bet
func (h *HandlerProvider) PlayRoundHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	amount, err := decodeAmount(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	round, err := s.PlayRound(amount)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrBetRejected):
			writeError(w, http.StatusConflict, err.Error())
			return
		case errors.Is(err, game.ErrBetOutOfRange):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	writeJSON(w, http.StatusOK, toRoundResponse(round))
}

// ListRoundsHandler handles GET /sessions/{sessionId}/rounds
func (h *HandlerProvider) ListRoundsHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	rounds := s.Rounds()
	resp := make([]roundResponse, 0, len(rounds))

	for _, round := range rounds {
		resp = append(resp, toRoundResponse(round))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sessionId": s.ID.String(),
		"rounds":    resp,
	})
}
