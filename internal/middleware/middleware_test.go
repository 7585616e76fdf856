package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/items-api/internal/config"
	"github.com/deppfellow/items-api/internal/database"
	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(rateLimit float64) *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				Port:               "0",
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          rateLimit,
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

type fakeSession struct {
	released int
}

func (f *fakeSession) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeSession) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSession) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func (f *fakeSession) Release() {
	f.released++
}

type fakeProvider struct {
	session  *fakeSession
	err      error
	acquired int
}

func (p *fakeProvider) Acquire(context.Context) (database.Session, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.acquired++
	return p.session, nil
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSessionScopedReleasesOnEveryOutcome(t *testing.T) {
	outcomes := map[string]echo.HandlerFunc{
		"success": func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		"error":   func(c echo.Context) error { return errs.NewNotFoundError("Item not found", false, nil) },
		"panic":   func(c echo.Context) error { panic("boom") },
	}

	for name, h := range outcomes {
		t.Run(name, func(t *testing.T) {
			session := &fakeSession{}
			provider := &fakeProvider{session: session}
			sm := NewSessionMiddleware(provider)

			var seen database.DBTX
			handler := sm.Scoped()(func(c echo.Context) error {
				var err error
				seen, err = GetSession(c)
				require.NoError(t, err)
				return h(c)
			})

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/items", nil), httptest.NewRecorder())

			func() {
				defer func() { _ = recover() }()
				_ = handler(c)
			}()

			assert.Same(t, session, seen)
			assert.Equal(t, 1, provider.acquired)
			assert.Equal(t, 1, session.released)

			_, err := GetSession(c)
			assert.Error(t, err)
		})
	}
}

func TestSessionScopedAcquireFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("pool exhausted")}
	called := false

	handler := NewSessionMiddleware(provider).Scoped()(func(c echo.Context) error {
		called = true
		return nil
	})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/items", nil), httptest.NewRecorder())

	err := handler(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, provider.err)
	assert.False(t, called)
}

func TestGetSessionWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := GetSession(c)
	assert.Error(t, err)
}

func TestRequestIDGeneratedAndReused(t *testing.T) {
	e := echo.New()
	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, rec.Header().Get(RequestIDHeader), rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestGlobalErrorHandler(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "http error passes through",
			err:     errs.NewNotFoundError("Item not found", false, nil),
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Item not found",
		},
		{
			name:    "echo route not found",
			err:     echo.ErrNotFound,
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Route not found",
		},
		{
			name:    "echo method not allowed keeps status",
			err:     echo.ErrMethodNotAllowed,
			status:  http.StatusMethodNotAllowed,
			code:    "METHOD_NOT_ALLOWED",
			message: "Method Not Allowed",
		},
		{
			name:    "storage failure is hidden",
			err:     fmt.Errorf("failed to get item: %w", errors.New("conn reset by peer")),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			global := NewGlobalMiddlewares(testServer(0))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/items/1", nil), rec)

			global.GlobalErrorHandler(tc.err, c)

			assert.Equal(t, tc.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tc.status, body.Status)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusOK, statusFromError(nil, http.StatusOK))
	assert.Equal(t, http.StatusNotFound, statusFromError(errs.NewNotFoundError("x", false, nil), http.StatusOK))
	assert.Equal(t, http.StatusBadRequest, statusFromError(echo.NewHTTPError(http.StatusBadRequest), http.StatusOK))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("x"), http.StatusOK))
}

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	s := testServer(1)
	rl := NewRateLimitMiddleware(s)
	require.True(t, rl.Enabled())

	global := NewGlobalMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = global.GlobalErrorHandler
	e.Use(rl.Limit())
	e.GET("/items", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/items", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/items", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeError(t, second).Code)
}

func TestRateLimitDisabledByDefault(t *testing.T) {
	assert.False(t, NewRateLimitMiddleware(testServer(0)).Enabled())
}
