package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/metrics"
	"github.com/MKhiriev/fave-tweets/internal/mock"
	"github.com/MKhiriev/fave-tweets/internal/service"
	"github.com/MKhiriev/fave-tweets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testCookie       = "fave_test"
	testSessionToken = "signed-session"
	testUID          = int64(4242)
	testUserID       = int64(7)
)

type testServices struct {
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
	users   *mock.MockUserService
	tags    *mock.MockTagService
	tweets  *mock.MockTweetService
	sync    *mock.MockSyncService
	metrics *metrics.Metrics
}

func newTestHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServices{
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		users:   mock.NewMockUserService(ctrl),
		tags:    mock.NewMockTagService(ctrl),
		tweets:  mock.NewMockTweetService(ctrl),
		sync:    mock.NewMockSyncService(ctrl),
		metrics: metrics.New(),
	}

	services := &service.Services{
		AuthService:    ts.auth,
		AppInfoService: ts.appInfo,
		UserService:    ts.users,
		TagService:     ts.tags,
		TweetService:   ts.tweets,
		SyncService:    ts.sync,
	}

	return NewHandler(services, config.App{SessionCookie: testCookie}, ts.metrics, logger.Nop()), ts
}

// expectSession makes the auth mock accept testSessionToken.
func (ts *testServices) expectSession() {
	ts.auth.EXPECT().ParseSession(gomock.Any(), testSessionToken).
		Return(models.Session{UID: testUID}, nil)
}

// expectUser makes the user mock resolve testUID to testUserID.
func (ts *testServices) expectUser() {
	ts.users.EXPECT().FindOrCreateByExternalID(gomock.Any(), testUID).
		Return(models.User{UserID: testUserID, UID: testUID}, nil)
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

func newSessionRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: testSessionToken})
	return req
}

func serve(h *Handler, method, target string, body io.Reader, withSession bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if withSession {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: testSessionToken})
	}
	rec := newRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestNewHandler_DefaultCookieName(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{}, nil, logger.Nop())

	assert.Equal(t, config.DefaultSessionCookie, h.sessionCookie)
	assert.Nil(t, h.metrics)
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	m := metrics.New()
	log := logger.Nop()

	h := NewHandler(svc, config.App{SessionCookie: "c"}, m, log)

	assert.Same(t, svc, h.services)
	assert.Same(t, m, h.metrics)
	assert.Same(t, log, h.logger)
	assert.Equal(t, "c", h.sessionCookie)
}
