package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/webmasterhq/webmaster-backend/internal/models"
	"github.com/webmasterhq/webmaster-backend/internal/store"
)

// GetUsersResponse represents the admin listing of users and their submissions
type GetUsersResponse struct {
	Users []models.UserWithSubmission `json:"users"`
}

// GetUsers returns every user with its form submission, newest first.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		log.Printf("Get users error: %v", err)
		if errors.Is(err, store.ErrUnavailable) {
			writeError(w, http.StatusInternalServerError, "Database connection failed")
		} else {
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, GetUsersResponse{Users: users})
}
