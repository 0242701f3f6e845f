package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/webmasterhq/webmaster-backend/internal/metrics"
	"github.com/webmasterhq/webmaster-backend/internal/services"
	"github.com/webmasterhq/webmaster-backend/internal/store"
)

const defaultFormType = "price_calculator"

// SubmitFormRequest represents the form submission payload
type SubmitFormRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	FormType string `json:"form_type"`
	Message  string `json:"message"`
}

// SubmitFormResponse represents the response after a successful submission
type SubmitFormResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitForm handles form submission: validates the payload, writes the user
// and submission rows atomically, and dispatches a Telegram notification
// without delaying the response.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	var req SubmitFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if req.FormType == "" {
		req.FormType = defaultFormType
	}

	_, err := h.store.CreateSubmission(r.Context(), store.NewSubmission{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		FormType: req.FormType,
		Message:  req.Message,
	})
	if err != nil {
		log.Printf("Form submission error: %v", err)
		if errors.Is(err, store.ErrUnavailable) {
			writeError(w, http.StatusInternalServerError, "Database connection failed")
		} else {
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	metrics.RecordFormSubmission(req.FormType)

	// Best-effort notification: the response must not wait on Telegram,
	// and a delivery failure never affects the committed write.
	text := services.FormatSubmission(req.FormType, req.Name, req.Email, req.Phone, req.Message, time.Now())
	go func() {
		if err := h.notifier.Send(context.Background(), text); err != nil {
			log.Printf("Telegram send error: %v", err)
		}
	}()

	writeJSON(w, http.StatusOK, SubmitFormResponse{
		Success: true,
		Message: "Form submitted successfully",
	})
}
