//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voicejournal/backend/internal/adapter/postgres"
	analyticsrepo "github.com/voicejournal/backend/internal/adapter/postgres/analytics"
	"github.com/voicejournal/backend/internal/adapter/postgres/entry"
	"github.com/voicejournal/backend/internal/adapter/postgres/tag"
	"github.com/voicejournal/backend/internal/adapter/postgres/testhelper"
	"github.com/voicejournal/backend/internal/adapter/postgres/token"
	userrepo "github.com/voicejournal/backend/internal/adapter/postgres/user"
	authpkg "github.com/voicejournal/backend/internal/auth"
	"github.com/voicejournal/backend/internal/config"
	analyticssvc "github.com/voicejournal/backend/internal/service/analytics"
	authsvc "github.com/voicejournal/backend/internal/service/auth"
	journalsvc "github.com/voicejournal/backend/internal/service/journal"
	"github.com/voicejournal/backend/internal/transport/middleware"
	"github.com/voicejournal/backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	userRepo := userrepo.New(pool)
	tokenRepo := token.New(pool)
	entryRepo := entry.New(pool)
	tagRepo := tag.New(pool)
	analyticsRepo := analyticsrepo.New(pool)

	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtMgr := authpkg.NewJWTManager(jwtSecret, "test-issuer", 15*time.Minute)

	authService := authsvc.NewService(logger, userRepo, tokenRepo, jwtMgr, config.AuthConfig{
		JWTSecret:        jwtSecret,
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4,
	})

	journalService := journalsvc.NewService(logger, entryRepo, tagRepo, txm, config.JournalConfig{
		DefaultPageSize: 10,
		MaxPageSize:     100,
		MaxTitleLen:     200,
		MaxTagsPerEntry: 20,
		MaxTagNameLen:   50,
	})

	analyticsService := analyticssvc.NewService(logger, analyticsRepo, config.AnalyticsConfig{
		TopLimit:       10,
		TimeSeriesDays: 30,
		TrailingMonths: 12,
	})

	mux := rest.NewRouter(rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Journal:   rest.NewJournalHandler(journalService, logger),
		Tags:      rest.NewTagHandler(journalService, logger),
		Analytics: rest.NewAnalyticsHandler(analyticsService, logger),
		Health:    rest.NewHealthHandler(pool, "test-version"),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON sends an HTTP request with an optional JSON body and bearer token,
// and returns the status code plus decoded JSON body (nil for empty bodies).
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, accessToken string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
	return resp.StatusCode, result
}

func jsonDecode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

// registerUser registers a fresh user through the API and returns
// the access token plus the refresh token.
func registerUser(t *testing.T, ts *testServer) (accessToken, refreshToken string) {
	t.Helper()

	suffix := uuid.NewString()[:8]
	status, body := ts.doJSON(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    fmt.Sprintf("user-%s@example.com", suffix),
		"username": "user_" + suffix,
		"password": "secret-password-123",
	}, "")
	if status != http.StatusCreated {
		t.Fatalf("register: expected status 201, got %d: %v", status, body)
	}

	accessToken, _ = body["accessToken"].(string)
	refreshToken, _ = body["refreshToken"].(string)
	if accessToken == "" || refreshToken == "" {
		t.Fatalf("register: missing tokens in response: %v", body)
	}
	return accessToken, refreshToken
}

// createEntry creates a journal entry through the API and returns its id.
func createEntry(t *testing.T, ts *testServer, token string, payload map[string]any) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/api/journal", payload, token)
	if status != http.StatusCreated {
		t.Fatalf("create entry: expected status 201, got %d: %v", status, body)
	}
	id, _ := body["id"].(string)
	if id == "" {
		t.Fatalf("create entry: missing id in response: %v", body)
	}
	return id
}
