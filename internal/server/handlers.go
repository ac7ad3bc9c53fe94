package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"splittab/internal/models"
)

// createExpenseRequest mirrors the JSON body the frontend sends. The payer
// may be given as "payerId" (numeric) or "payer" (display name); the id
// wins when both are present.
type createExpenseRequest struct {
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Date           string          `json:"date,omitempty"`
	PayerID        int64           `json:"payerId,omitempty"`
	Payer          string          `json:"payer,omitempty"`
	ParticipantIDs []int64         `json:"participantIds,omitempty"`
}

// createTransferRequest mirrors the JSON body for transfers. Source and
// target each accept "sourceId"/"targetId" or "source"/"target" names.
type createTransferRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date,omitempty"`
	SourceID    int64           `json:"sourceId,omitempty"`
	TargetID    int64           `json:"targetId,omitempty"`
	Source      string          `json:"source,omitempty"`
	Target      string          `json:"target,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.svc.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	feed, err := s.svc.ListTransactions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, feed)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.svc.ListExpenses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleGetExpenseDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	detail, err := s.svc.GetExpenseDetail(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeBadRequest(w, "invalid date, expected RFC 3339 or YYYY-MM-DD")
		return
	}

	expense, err := s.svc.CreateExpense(r.Context(), models.CreateExpenseInput{
		Description:    req.Description,
		Amount:         req.Amount,
		Date:           date,
		Payer:          userRef(req.PayerID, req.Payer),
		ParticipantIDs: req.ParticipantIDs,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (s *Server) handleListTransfers(w http.ResponseWriter, r *http.Request) {
	transfers, err := s.svc.ListTransfers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transfers)
}

func (s *Server) handleGetTransfer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	transfer, err := s.svc.GetTransfer(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transfer)
}

func (s *Server) handleCreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req createTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeBadRequest(w, "invalid date, expected RFC 3339 or YYYY-MM-DD")
		return
	}

	transfer, err := s.svc.CreateTransfer(r.Context(), models.CreateTransferInput{
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		Source:      userRef(req.SourceID, req.Source),
		Target:      userRef(req.TargetID, req.Target),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, transfer)
}

// userRef builds the by-id-or-by-name reference; a given id wins over a name.
func userRef(id int64, name string) models.UserRef {
	if id != 0 {
		return models.RefByID(id)
	}
	return models.RefByName(name)
}

// parseDate accepts an RFC 3339 timestamp or a bare date. Empty means "now"
// and is left to the store as a zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeBadRequest(w, "invalid id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// writeError maps the domain error taxonomy to HTTP statuses. Validation
// failures carry their reason to the caller; infrastructure failures stay
// generic so internals never leak.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case models.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrStoreUnavailable):
		slog.ErrorContext(r.Context(), "store unavailable", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "temporarily unavailable"})
	default:
		slog.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
