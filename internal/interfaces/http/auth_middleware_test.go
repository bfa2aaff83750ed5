package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/inventario-ledger/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/inventario-ledger/pkg/jwt"
)

// countingUsers UserRepository que cuenta llamadas por usuario.
type countingUsers struct {
	mu    sync.Mutex
	calls map[string]int
	names map[string]string
	err   error
}

func newCountingUsers() *countingUsers {
	return &countingUsers{calls: map[string]int{}, names: map[string]string{}}
}

func (u *countingUsers) EnsureExists(_ context.Context, id, username string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls[id]++
	u.names[id] = username
	return u.err
}

func (u *countingUsers) count(id string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls[id]
}

func meApp(users *countingUsers) *fiber.App {
	app := fiber.New(apphttp.FiberConfig("test"))
	app.Get("/me",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.EnsureUser(users),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
		},
	)
	return app
}

func getMe(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	users := newCountingUsers()
	app := meApp(users)

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "ana", testIssuer, 60)
	require.NoError(t, err)

	resp := getMe(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "ana", users.names[testUserID])
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := meApp(newCountingUsers())

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", testIssuer, 60)
	require.NoError(t, err)

	for _, header := range []string{tok, "Basic " + tok, "Bearer "} {
		resp := getMe(t, app, header)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, header)
	}
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := meApp(newCountingUsers())
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", testIssuer, -1)
	require.NoError(t, err)

	resp := getMe(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEnsureUser_UnaVezPorUsuario(t *testing.T) {
	users := newCountingUsers()
	app := meApp(users)

	tokA, err := pkgjwt.Generate(testJWTSecret, testUserID, "", testIssuer, 60)
	require.NoError(t, err)
	tokB, err := pkgjwt.Generate(testJWTSecret, otherUserID, "", testIssuer, 60)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		resp := getMe(t, app, "Bearer "+tokA)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp := getMe(t, app, "Bearer "+tokB)
	resp.Body.Close()

	assert.Equal(t, 1, users.count(testUserID))
	assert.Equal(t, 1, users.count(otherUserID))
}

func TestEnsureUser_ErrorNoSeCachea(t *testing.T) {
	users := newCountingUsers()
	users.err = errors.New("db caída")
	app := meApp(users)

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", testIssuer, 60)
	require.NoError(t, err)

	resp := getMe(t, app, "Bearer "+tok)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	users.mu.Lock()
	users.err = nil
	users.mu.Unlock()

	resp = getMe(t, app, "Bearer "+tok)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, users.count(testUserID))
}
