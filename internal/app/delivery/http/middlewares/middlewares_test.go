package middlewares

import (
	"net/http"
	"net/http/httptest"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/contracts/mocks"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestMiddlewares() (*Middlewares, *mocks.TokenManager, *mocks.SessionService) {
	tokens := new(mocks.TokenManager)
	sessions := new(mocks.SessionService)
	return &Middlewares{
		Log:            zap.NewNop(),
		SessionService: sessions,
		TokenManager:   tokens,
		InternalConfig: &config.InternalConfig{App: config.App{RequestBodyLimitInMegabyte: 1}},
	}, tokens, sessions
}

func TestAuthenticate(t *testing.T) {
	var seen string
	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Missing bearer token", func(t *testing.T) {
		m, tokens, _ := newTestMiddlewares()
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		rr := httptest.NewRecorder()

		m.Authenticate(protected).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		tokens.AssertNotCalled(t, "ParseSessionToken", mock.Anything)
	})

	t.Run("Invalid token", func(t *testing.T) {
		m, tokens, sessions := newTestMiddlewares()
		tokens.On("ParseSessionToken", "broken").Return("", exceptions.ErrTokenInvalidOrExpired(nil))
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer broken")
		rr := httptest.NewRecorder()

		m.Authenticate(protected).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		sessions.AssertNotCalled(t, "GetSessionData", mock.Anything, mock.Anything)
	})

	t.Run("Expired session", func(t *testing.T) {
		m, tokens, sessions := newTestMiddlewares()
		tokens.On("ParseSessionToken", "good").Return("session-1", nil)
		sessions.On("GetSessionData", mock.Anything, "session-1").Return("", exceptions.ErrInvalidSession(nil))
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good")
		rr := httptest.NewRecorder()

		m.Authenticate(protected).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Valid session reaches the handler", func(t *testing.T) {
		m, tokens, sessions := newTestMiddlewares()
		tokens.On("ParseSessionToken", "good").Return("session-1", nil)
		sessions.On("GetSessionData", mock.Anything, "session-1").Return(`{"userId":"doc-1"}`, nil)
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good")
		rr := httptest.NewRecorder()

		m.Authenticate(protected).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `{"userId":"doc-1"}`, seen)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m, _, _ := newTestMiddlewares()
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	t.Run("Client request id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-123", seen)
		assert.Equal(t, "client-123", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Missing request id is generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestBodyLimit(t *testing.T) {
	m, _, _ := newTestMiddlewares()
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 2<<20)))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestErrorHandler(t *testing.T) {
	m, _, _ := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(zap.NewNop(), 2, time.Minute, 5*time.Minute)
	limiter.now = func() time.Time { return now }
	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:2222"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:3333"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1111"), "other clients are not affected")

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1111"), "still blocked although tokens refilled")

	now = now.Add(4 * time.Minute)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1111"))
}
