package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fave-tweets/internal/store"
	"github.com/MKhiriev/fave-tweets/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogout_ClearsCookie(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/logout", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, loggedOutMessage, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
}

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestLogout_LogsFailedWrite(t *testing.T) {
	h, _ := newTestHandler(t)

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	w := brokenWriter{httptest.NewRecorder()}
	h.logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), "failed to write response")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestLogout_WithoutSession(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/logout", nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListUsers(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{UserID: 1, UID: 10}, {UserID: 2, UID: 20}}, nil)

	rec := serve(h, http.MethodGet, "/users", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListUsers_StoreError(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.users.EXPECT().ListUsers(gomock.Any()).Return(nil, store.ErrScanningRows)

	rec := serve(h, http.MethodGet, "/users", nil, false)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
