package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/webmasterhq/webmaster-backend/internal/config"
	"github.com/webmasterhq/webmaster-backend/internal/models"
	"github.com/webmasterhq/webmaster-backend/internal/store"
)

// SubmissionStore is the data access surface the handlers need.
type SubmissionStore interface {
	CreateSubmission(ctx context.Context, sub store.NewSubmission) (int64, error)
	ListUsers(ctx context.Context) ([]models.UserWithSubmission, error)
}

// Notifier delivers a preformatted notification message.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Handler carries the dependencies of all HTTP handlers.
type Handler struct {
	store    SubmissionStore
	notifier Notifier
	cfg      *config.Config
}

func New(s SubmissionStore, n Notifier, cfg *config.Config) *Handler {
	return &Handler{store: s, notifier: n, cfg: cfg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
