package serverutils

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/pkg/gate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	sessions map[string]*entity.Session
	err      error
}

func (s *stubSessions) Lookup(_ context.Context, token string) (*entity.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sessions[token], nil
}

func (s *stubSessions) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	session, err := s.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New("no session")
	}
	return session, nil
}

type stubHomes struct {
	homes map[uuid.UUID]*entity.Workspace
}

func (s *stubHomes) FindHomeWorkspace(_ context.Context, userId uuid.UUID) (*entity.Workspace, error) {
	return s.homes[userId], nil
}

type logEntry struct {
	level, module, message string
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, module, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level, module, message})
}

func (l *recordingLogger) Debug(module, message string, _ map[string]interface{}) {
	l.record("debug", module, message)
}

func (l *recordingLogger) Info(module, message string, _ map[string]interface{}) {
	l.record("info", module, message)
}

func (l *recordingLogger) Warn(module, message string, _ map[string]interface{}) {
	l.record("warn", module, message)
}

func (l *recordingLogger) Error(module, message string, _ map[string]interface{}) {
	l.record("error", module, message)
}

func (l *recordingLogger) Sync() error { return nil }

func newGateApp(t *testing.T, sessions *stubSessions, homes *stubHomes) *fiber.App {
	return newGateAppWithLogger(t, sessions, homes, logger.NewNopLogger())
}

func newGateAppWithLogger(t *testing.T, sessions *stubSessions, homes *stubHomes, log logger.ILogger) *fiber.App {
	t.Helper()

	locales, err := gate.NewLocaleRouter([]string{"en", "ru", "kk"}, "en")
	require.NoError(t, err)
	public, err := gate.NewPublicPaths(locales.Supported(), nil)
	require.NoError(t, err)

	g := gate.New(locales, public, sessions, homes, "/login", log)

	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(log))
	app.Use(GateMiddleware(g, GateOptions{SessionCookieName: "session_token", LocaleCookieName: "NEXT_LOCALE"}, log))
	app.Get("/*", func(ctx *fiber.Ctx) error {
		if session, ok := SessionFrom(ctx); ok {
			return ctx.SendString("user:" + session.UserId.String())
		}
		return ctx.SendString("anonymous:" + LocaleFrom(ctx))
	})
	return app
}

func TestGateMiddleware(t *testing.T) {
	userId := uuid.New()
	homeId := uuid.New()
	sessions := &stubSessions{sessions: map[string]*entity.Session{
		"good":   {Id: "s1", UserId: userId},
		"orphan": {Id: "s2", UserId: uuid.New()},
	}}
	homes := &stubHomes{homes: map[uuid.UUID]*entity.Workspace{
		userId: {Id: homeId, UserId: userId, IsHome: true},
	}}
	app := newGateApp(t, sessions, homes)

	tests := []struct {
		name         string
		path         string
		token        string
		lang         string
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{name: "public login page", path: "/login", wantStatus: 200, wantBody: "anonymous:en"},
		{name: "public api", path: "/api/public/health", wantStatus: 200, wantBody: "anonymous:en"},
		{name: "page without session", path: "/settings", wantStatus: 302, wantLocation: "/login"},
		{name: "localized page without session", path: "/ru/settings", wantStatus: 302, wantLocation: "/ru/login"},
		{name: "api without session", path: "/api/workspace/v1/state", wantStatus: 401},
		{name: "ws without session", path: "/ws/workspace", wantStatus: 401},
		{name: "locale rewrite keeps query", path: "/settings?tab=1", lang: "kk", wantStatus: 302, wantLocation: "/kk/settings?tab=1"},
		{name: "root goes home", path: "/", token: "good", wantStatus: 302, wantLocation: "/" + homeId.String() + "/chat"},
		{name: "localized root goes home", path: "/ru", token: "good", wantStatus: 302, wantLocation: "/ru/" + homeId.String() + "/chat"},
		{name: "missing home goes to entry with message", path: "/", token: "orphan", wantStatus: 302, wantLocation: "/login?message=workspace_not_found"},
		{name: "authenticated page continues", path: "/" + homeId.String() + "/chat", token: "good", wantStatus: 200, wantBody: "user:" + userId.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			if tt.lang != "" {
				req.Header.Set("Accept-Language", tt.lang)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, resp.Header.Get("Location"))
			}
			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestGateMiddleware_LookupErrorFailsClosed(t *testing.T) {
	app := newGateApp(t, &stubSessions{err: errors.New("redis down")}, &stubHomes{})

	req := httptest.NewRequest("GET", "/settings", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "good"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestGateMiddleware_MissingHomeLoggedAsError(t *testing.T) {
	userId := uuid.New()
	sessions := &stubSessions{sessions: map[string]*entity.Session{"orphan": {Id: "s1", UserId: userId}}}
	log := &recordingLogger{}
	app := newGateAppWithLogger(t, sessions, &stubHomes{}, log)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer orphan")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Contains(t, log.entries, logEntry{level: "error", module: "Gate", message: "Root redirect failed"})
	assert.NotContains(t, log.entries, logEntry{level: "warn", module: "Gate", message: "Root redirect failed"})
}

func TestRequireSession(t *testing.T) {
	userId := uuid.New()
	auth := &stubSessions{sessions: map[string]*entity.Session{"good": {Id: "s1", UserId: userId}}}

	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/me", RequireSession(auth, "session_token"), func(ctx *fiber.Ctx) error {
		session, _ := SessionFrom(ctx)
		return ctx.SendString(session.UserId.String())
	})

	t.Run("query token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/me?token=good", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("missing token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("unknown token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/me?token=bad", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}
