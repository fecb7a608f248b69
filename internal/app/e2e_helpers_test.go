//go:build e2e

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/evoting-backend/internal/adapter/ledger"
	"github.com/heartmarshall/evoting-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/evoting-backend/internal/auth"
	"github.com/heartmarshall/evoting-backend/internal/config"
	"github.com/heartmarshall/evoting-backend/internal/domain"
)

const testJWTSecret = "e2e-secret-e2e-secret-e2e-secret"

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Mail   *mailbox
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// mailbox records every notification instead of delivering it.
type mailbox struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (m *mailbox) Send(_ context.Context, msg domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

// last returns the most recent notification to addr with the given template.
func (m *mailbox) last(t *testing.T, addr, template string) domain.Notification {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.sent) - 1; i >= 0; i-- {
		if m.sent[i].To == addr && m.sent[i].Template == template {
			return m.sent[i]
		}
	}
	t.Fatalf("no %s notification sent to %s", template, addr)
	return domain.Notification{}
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      testJWTSecret,
			JWTIssuer:      "evoting",
			AccessTokenTTL: 15 * time.Minute,
		},
		Ledger: config.LedgerConfig{
			CallTimeout:        time.Second,
			MaxConcurrentCalls: 4,
		},
		Passcode: config.PasscodeConfig{
			TTL:                  5 * time.Minute,
			SweepInterval:        time.Hour,
			RequestRatePerMinute: 100,
		},
		Nullifier: config.NullifierConfig{Salt: "e2e-salt"},
		Ballot: config.BallotConfig{
			RelayToLedger:     true,
			PlaceholderPrefix: "local-",
		},
		Tally: config.TallyConfig{Source: config.TallySourceStore},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
	}
}

// setupTestServer builds the full stack over a real PostgreSQL with the
// ledger offline, so every ledger write falls back to a placeholder.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()
	mail := &mailbox{}

	c, err := wire(cfg, pool, ledger.Offline{}, mail, logger)
	require.NoError(t, err)
	t.Cleanup(c.limiter.Stop)

	srv := httptest.NewServer(c.handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Mail:   mail,
		jwt:    auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

// token mints an access token for a fresh subject with the given role.
func (ts *testServer) token(t *testing.T, role domain.UserRole) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	tok, err := ts.jwt.Generate(id, role)
	require.NoError(t, err)
	return id, tok
}

// do sends a JSON request and decodes the JSON response into out when out
// is non-nil. It returns the status code.
func (ts *testServer) do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// errorCode sends a request expected to fail and returns the envelope code.
func (ts *testServer) errorCode(t *testing.T, method, path, token string, body any) (int, string) {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	status := ts.do(t, method, path, token, body, &env)
	return status, env.Error.Code
}

type electionBody struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type candidateBody struct {
	ID         uuid.UUID `json:"id"`
	ChainIndex int       `json:"chain_index"`
}

// createElection creates an election with the named candidates as admin.
func (ts *testServer) createElection(t *testing.T, admin string, candidates ...string) (electionBody, []candidateBody) {
	t.Helper()

	var e electionBody
	status := ts.do(t, http.MethodPost, "/admin/elections", admin, map[string]any{
		"title":    "Board " + uuid.NewString()[:8],
		"start_at": time.Now().UTC(),
		"end_at":   time.Now().UTC().Add(24 * time.Hour),
	}, &e)
	require.Equal(t, http.StatusCreated, status)

	out := make([]candidateBody, 0, len(candidates))
	for _, name := range candidates {
		var c candidateBody
		status := ts.do(t, http.MethodPost, "/admin/elections/"+e.ID.String()+"/candidates", admin,
			map[string]any{"name": name, "party": "Independent"}, &c)
		require.Equal(t, http.StatusCreated, status)
		out = append(out, c)
	}
	return e, out
}

// verifiedVoter registers a voter with a wallet, approves them and assigns
// them to the election. It returns the voter's token and email.
func (ts *testServer) verifiedVoter(t *testing.T, admin string, electionID uuid.UUID) (uuid.UUID, string, string) {
	t.Helper()

	voterID, tok := ts.token(t, domain.UserRoleVoter)
	email := "voter-" + voterID.String()[:8] + "@example.com"
	wallet := "0x" + voterID.String()[:8] + "00000000000000000000000000000000"

	status := ts.do(t, http.MethodPost, "/voters/me", tok, map[string]any{
		"full_name":      "Test Voter",
		"email":          email,
		"wallet_address": wallet,
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	status = ts.do(t, http.MethodPost, "/admin/voters/"+voterID.String()+"/approve", admin, nil, nil)
	require.Equal(t, http.StatusOK, status)

	status = ts.do(t, http.MethodPost, "/admin/elections/"+electionID.String()+"/voters/"+voterID.String(), admin, nil, nil)
	require.Equal(t, http.StatusCreated, status)

	return voterID, tok, email
}
