package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webmasterhq/webmaster-backend/internal/config"
	"github.com/webmasterhq/webmaster-backend/internal/handlers"
	"github.com/webmasterhq/webmaster-backend/internal/models"
	"github.com/webmasterhq/webmaster-backend/internal/store"
)

// memStore keeps submissions in memory, newest first, mirroring the listing
// order of the SQL store.
type memStore struct {
	users []models.UserWithSubmission
}

func (m *memStore) CreateSubmission(ctx context.Context, sub store.NewSubmission) (int64, error) {
	now := time.Now()
	id := int64(len(m.users) + 1)
	formType := sub.FormType
	message := sub.Message
	m.users = append([]models.UserWithSubmission{{
		ID: id, Name: sub.Name, Email: sub.Email, Phone: sub.Phone,
		CreatedAt: now, FormType: &formType, Message: &message, SubmissionTime: &now,
	}}, m.users...)
	return id, nil
}

func (m *memStore) ListUsers(ctx context.Context) ([]models.UserWithSubmission, error) {
	if m.users == nil {
		return []models.UserWithSubmission{}, nil
	}
	return m.users, nil
}

type nopNotifier struct{}

func (nopNotifier) Send(ctx context.Context, text string) error { return nil }

func newTestRouter() *chi.Mux {
	h := handlers.New(&memStore{}, nopNotifier{}, &config.Config{StaticDir: "testdata"})
	r := chi.NewRouter()
	SetupRoutes(r, h)
	return r
}

func TestSubmitThenList(t *testing.T) {
	r := newTestRouter()

	body := `{"name":"Test User","email":"test@example.com","phone":"+1234567890","form_type":"price_calculator","message":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/submit-form", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Form submitted successfully"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Users []map[string]any `json:"users"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "Test User", resp.Users[0]["name"])
	assert.Equal(t, "price_calculator", resp.Users[0]["form_type"])
	assert.Equal(t, "hello", resp.Users[0]["message"])
}

func TestValidationFailureWritesNothing(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/submit-form", strings.NewReader(`{"name":"","email":"a@b.com","phone":"123"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	assert.JSONEq(t, `{"users":[]}`, rec.Body.String())
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestMetricsRoute(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
