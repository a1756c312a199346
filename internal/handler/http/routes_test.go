package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/service"
	"github.com/MKhiriev/fave-tweets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoutes_Health(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/", nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRoutes_Version(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := serve(h, http.MethodGet, "/version", nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestRoutes_UnknownURL(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/nope", nil, false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "URL not found.", rec.Body.String())
}

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/"},
		{http.MethodDelete, "/version"},
		{http.MethodPost, "/catalog"},
		{http.MethodDelete, "/tweets/1"},
		{http.MethodPatch, "/tweets/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, tt.method, tt.target, nil, false)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "URL not found.", rec.Body.String())
		})
	}
}

func TestRoutes_SessionRequired(t *testing.T) {
	targets := []string{"/catalog", "/tags", "/tweets", "/tweets/1"}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, http.MethodGet, target, nil, false)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, ErrNoSession.Error(), decodeError(t, rec).Error)
		})
	}
}

func TestRoutes_InvalidSession(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.auth.EXPECT().ParseSession(gomock.Any(), testSessionToken).
		Return(models.Session{}, service.ErrSessionInvalid)

	rec := serve(h, http.MethodGet, "/tweets", nil, true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_Metrics(t *testing.T) {
	h, ts := newTestHandler(t)
	router := h.Init()

	for range 2 {
		ts.expectSession()
		ts.expectUser()
		ts.tweets.EXPECT().GetTweet(gomock.Any(), testUserID, int64(5)).Return(models.TweetResponse{}, nil)

		req := newSessionRequest(http.MethodGet, "/tweets/5")
		router.ServeHTTP(newRecorder(), req)
	}
	router.ServeHTTP(newRecorder(), newSessionRequest(http.MethodGet, "/does/not/exist"))

	rec := newRecorder()
	router.ServeHTTP(rec, newSessionRequest(http.MethodGet, "/metrics"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `fave_tweets_http_requests_total{method="GET",route="/tweets/{id}",status="200"} 2`)
	assert.Contains(t, body, `fave_tweets_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestRoutes_MetricsDisabled(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{}, nil, logger.Nop())

	rec := serve(h, http.MethodGet, "/metrics", nil, false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/", nil, false)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
