//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tagger-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/tagger-backend/internal/app"
	"github.com/heartmarshall/tagger-backend/internal/auth"
	"github.com/heartmarshall/tagger-backend/internal/config"
	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/internal/metrics"
)

const testPassword = "correct-horse-battery"

// testServer wraps the full HTTP stack backed by a real PostgreSQL container.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Repos  *app.Repos
	Svcs   *app.Services
	Config *config.Config
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "tagger-e2e",
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         600,
		},
		Import:    config.ImportConfig{MaxUploadBytes: 64 << 10, MaxSentences: 100},
		Search:    config.SearchConfig{TextConfig: "english"},
		Report:    config.ReportConfig{Dir: t.TempDir(), Timezone: "UTC"},
		RateLimit: config.RateLimitConfig{LoginPerMinute: 100, CleanupInterval: time.Minute},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

// setupTestServer bootstraps the application stack the way app.Run does.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig(t)

	m, err := metrics.New()
	require.NoError(t, err)

	repos := app.NewRepos(pool)
	svcs := app.NewServices(logger, cfg, repos, m)

	handler, stop := app.NewHTTPHandler(logger, cfg, pool, svcs, m)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Repos:  repos,
		Svcs:   svcs,
		Config: cfg,
	}
}

// do sends a JSON request and decodes the JSON response into out (if non-nil).
func (ts *testServer) do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return ts.send(t, req, out)
}

func (ts *testServer) send(t *testing.T, req *http.Request, out any) int {
	t.Helper()

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// errorBody decodes the standard error envelope.
type errorBody struct {
	Error  string `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

func (ts *testServer) doError(t *testing.T, method, path, token string, body any) (int, errorBody) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var eb errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&eb))
	return resp.StatusCode, eb
}

// createUser stores a user with testPassword and returns a token for it.
func (ts *testServer) createUser(t *testing.T, username string, isAdmin bool) (string, *domain.User) {
	t.Helper()

	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	u, err := ts.Repos.Users.Create(context.Background(), &domain.User{
		ID:           domain.NewID(),
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)

	tok, err := ts.Svcs.JWT.GenerateAccessToken(u.ID, u.Role())
	require.NoError(t, err)
	return tok, u
}

// createOperator stores a user with an operator record.
func (ts *testServer) createOperator(t *testing.T, username string) (string, *domain.Operator) {
	t.Helper()

	tok, u := ts.createUser(t, username, false)
	op, err := ts.Repos.Operators.Create(context.Background(), &domain.Operator{
		ID:        domain.NewID(),
		UserID:    u.ID,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return tok, op
}

func uniqueName(prefix string) string {
	return prefix + "-" + domain.NewID().String()[:8]
}
