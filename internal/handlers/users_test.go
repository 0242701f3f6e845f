package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webmasterhq/webmaster-backend/internal/models"
	"github.com/webmasterhq/webmaster-backend/internal/store"
)

func getUsers(t *testing.T, h *Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	h.GetUsers(rec, req)
	return rec
}

func TestGetUsers(t *testing.T) {
	formType := "price_calculator"
	message := "hello"
	submitted := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	st := &fakeStore{users: []models.UserWithSubmission{
		{
			ID: 2, Name: "Recent User", Email: "recent@example.com", Phone: "456",
			CreatedAt:      submitted,
			FormType:       &formType,
			Message:        &message,
			SubmissionTime: &submitted,
		},
		{
			ID: 1, Name: "Bare User", Email: "bare@example.com", Phone: "123",
			CreatedAt: submitted.Add(-time.Hour),
		},
	}}
	h := newTestHandler(st, newFakeNotifier())

	rec := getUsers(t, h)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Users []map[string]any `json:"users"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Users, 2)

	assert.Equal(t, "Recent User", resp.Users[0]["name"])
	assert.Equal(t, "price_calculator", resp.Users[0]["form_type"])
	assert.Equal(t, "hello", resp.Users[0]["message"])

	// Users without a submission carry explicit nulls
	assert.Equal(t, "Bare User", resp.Users[1]["name"])
	assert.Nil(t, resp.Users[1]["form_type"])
	assert.Nil(t, resp.Users[1]["message"])
	assert.Nil(t, resp.Users[1]["submission_time"])
}

func TestGetUsers_Empty(t *testing.T) {
	h := newTestHandler(&fakeStore{users: []models.UserWithSubmission{}}, newFakeNotifier())

	rec := getUsers(t, h)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"users":[]}`, rec.Body.String())
}

func TestGetUsers_DatabaseUnavailable(t *testing.T) {
	h := newTestHandler(&fakeStore{listErr: store.ErrUnavailable}, newFakeNotifier())

	rec := getUsers(t, h)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Database connection failed"}`, rec.Body.String())
}

func TestGetUsers_StorageFailure(t *testing.T) {
	h := newTestHandler(&fakeStore{listErr: errors.New("syntax error")}, newFakeNotifier())

	rec := getUsers(t, h)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
