//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/laneline/swimreg-backend/internal/adapter/postgres"
	athleterepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/athlete"
	auditrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/audit"
	coachrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/coach"
	entryrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/entry"
	meetrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/meet"
	meetteamrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/meetteam"
	teamrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/team"
	"github.com/laneline/swimreg-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/token"
	userrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/user"
	authpkg "github.com/laneline/swimreg-backend/internal/auth"
	"github.com/laneline/swimreg-backend/internal/config"
	authsvc "github.com/laneline/swimreg-backend/internal/service/auth"
	"github.com/laneline/swimreg-backend/internal/service/entries"
	"github.com/laneline/swimreg-backend/internal/service/league"
	"github.com/laneline/swimreg-backend/internal/service/roster"
	"github.com/laneline/swimreg-backend/internal/transport/middleware"
	"github.com/laneline/swimreg-backend/internal/transport/rest"
)

// testEnv is one fully wired application over a real database, served from
// an httptest server.
type testEnv struct {
	srv  *httptest.Server
	pool *pgxpool.Pool
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authCfg := config.AuthConfig{
		JWTSecret:       "e2e-test-secret",
		JWTIssuer:       "swimreg-e2e",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		BcryptCost:      bcrypt.MinCost,
	}
	regCfg := config.RegistrationConfig{
		EntriesPerIndividualEvent: 4,
		EntriesPerRelayEvent:      4,
	}

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	teams := teamrepo.New(pool)
	meets := meetrepo.New(pool)
	meetTeams := meetteamrepo.New(pool)
	coaches := coachrepo.New(pool)
	athletes := athleterepo.New(pool)
	entryStore := entryrepo.New(pool)
	audit := auditrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, tokens, jwtManager, authCfg)
	leagueService := league.NewService(logger, teams, meets, meetTeams, coaches, users, audit, txManager)
	rosterService := roster.NewService(logger, athletes, teams, coaches, users, audit, txManager)
	entriesService := entries.NewService(logger, entryStore, athletes, meets, teams, meetTeams, coaches, users, audit, txManager, regCfg)

	router := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Entries: rest.NewEntriesHandler(entriesService, logger),
		League:  rest.NewLeagueHandler(leagueService, logger),
		Roster:  rest.NewRosterHandler(rosterService, logger),
		Health:  rest.NewHealthHandler(pool, "e2e"),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(authService),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, pool: pool}
}

// noRedirectClient returns the redirect response itself instead of following it.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// doJSON sends a JSON request and returns the response with its decoded body.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := noRedirectClient().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

// doJSONList is doJSON for endpoints returning a JSON array.
func (e *testEnv) doJSONList(t *testing.T, method, path, token string) (*http.Response, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, e.srv.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := noRedirectClient().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

// postForm submits a form-encoded body with a bearer token.
func (e *testEnv) postForm(t *testing.T, path, token string, form url.Values) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, e.srv.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := noRedirectClient().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

// registerUser registers a user through the API and returns its access token
// and user id.
func (e *testEnv) registerUser(t *testing.T, email, username, password string) (string, string) {
	t.Helper()

	resp, body := e.doJSON(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"username": username,
		"name":     "Test " + username,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register %s: %v", email, body)

	user := body["user"].(map[string]any)
	return body["accessToken"].(string), user["id"].(string)
}

// login obtains a fresh access token for an existing user.
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	resp, body := e.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "login %s: %v", email, body)
	return body["accessToken"].(string)
}

// promoteToAdmin flips a registered user's role directly in the database.
// The user must log in again to pick up the new role in their token.
func (e *testEnv) promoteToAdmin(t *testing.T, userID string) {
	t.Helper()

	tag, err := e.pool.Exec(t.Context(), `UPDATE users SET role = 'admin' WHERE id = $1`, userID)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}
