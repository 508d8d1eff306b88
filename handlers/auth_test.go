package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	sessionRepo "neuroglove/database/repository/session"
	userRepo "neuroglove/database/repository/user"
	"neuroglove/handlers"
	"neuroglove/models"
	"neuroglove/routes"
	"neuroglove/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ---- in-memory fakes ----

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return userRepo.ErrEmailTaken
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) UpdateFields(id string, fields bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user with id %s not found", id)
	}
	if v, ok := fields["name"].(string); ok {
		u.Name = v
	}
	if v, ok := fields["picture"].(string); ok {
		u.Picture = v
	}
	if v, ok := fields["emailNotifications"].(bool); ok {
		u.EmailNotifications = v
	}
	return nil
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*models.Session)}
}

func (r *memSessionRepo) Create(session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[session.Token]; exists {
		return sessionRepo.ErrTokenExists
	}
	cp := *session
	r.sessions[session.Token] = &cp
	return nil
}

func (r *memSessionRepo) UpsertByToken(session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.sessions[session.Token] = &cp
	return nil
}

func (r *memSessionRepo) GetByToken(token string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memSessionRepo) DeleteByToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

func (r *memSessionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// stubBridge satisfies auth.BridgeClient with a canned outcome.
type stubBridge struct {
	identity *auth.BridgeIdentity
	err      error
}

func (b *stubBridge) Exchange(ctx context.Context, externalSessionID string) (*auth.BridgeIdentity, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.identity, nil
}

// ---- harness ----

type testEnv struct {
	router   *gin.Engine
	svc      *auth.DefaultAuthService
	sessions *memSessionRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	sessions := newMemSessionRepo()
	svc := &auth.DefaultAuthService{
		Repo:     newMemUserRepo(),
		Sessions: auth.NewSessionManager(sessions, nil, time.Hour),
		Bridge:   &stubBridge{err: fmt.Errorf("bridge not configured")},
	}

	router := gin.New()
	routes.RegisterAuthRoutes(router, &handlers.HandlerBundle{
		AuthService: svc,
		Auth:        handlers.NewAuthHandler(svc),
	})
	return &testEnv{router: router, svc: svc, sessions: sessions}
}

func (e *testEnv) do(t *testing.T, method, path, body string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_token" {
			return c
		}
	}
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// ---- tests ----

func TestRegisterSessionLogoutFlow(t *testing.T) {
	env := newTestEnv(t)

	// Register: 200, cookie set, body echoes the identity.
	w := env.do(t, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"pw1","name":"A"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.True(t, cookie.Secure)
	require.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	require.Equal(t, "/", cookie.Path)

	body := decodeBody(t, w)
	require.Equal(t, true, body["success"])
	require.Equal(t, "a@x.com", body["user"].(map[string]any)["email"])

	// Session check with the cookie: authenticated.
	w = env.do(t, http.MethodGet, "/api/auth/session", "", func(r *http.Request) {
		r.AddCookie(cookie)
	})
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	require.Equal(t, true, body["authenticated"])
	require.Equal(t, "a@x.com", body["user"].(map[string]any)["email"])

	// Logout: cookie cleared, session revoked.
	w = env.do(t, http.MethodPost, "/api/auth/logout", "", func(r *http.Request) {
		r.AddCookie(cookie)
	})
	require.Equal(t, http.StatusOK, w.Code)
	cleared := sessionCookie(t, w)
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)
	require.Equal(t, 0, env.sessions.count())

	// The revoked token no longer authenticates.
	w = env.do(t, http.MethodGet, "/api/auth/session", "", func(r *http.Request) {
		r.AddCookie(cookie)
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, decodeBody(t, w)["authenticated"])

	// No cookie at all: unauthenticated, not an error.
	w = env.do(t, http.MethodGet, "/api/auth/session", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, decodeBody(t, w)["authenticated"])
}

func TestRegister_DuplicateEmailIs400(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"pw1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"pw2"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_InvalidBodyIs400(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register",
		`{"email":"not-an-email","password":"pw1"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/auth/register", `{"email":"a@x.com"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_WrongPasswordIs401(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"pw1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	issued := env.sessions.count()

	w = env.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"wrong"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Nil(t, sessionCookie(t, w))
	require.Equal(t, issued, env.sessions.count())

	// Unknown email gets the identical response.
	w = env.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"missing@x.com","password":"pw1"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_AuthorizationHeaderFallback(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"pw1"}`, nil)
	token := sessionCookie(t, w).Value

	w = env.do(t, http.MethodGet, "/api/auth/session", "", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decodeBody(t, w)["authenticated"])
}

func TestSession_BridgeExchange(t *testing.T) {
	env := newTestEnv(t)
	env.svc.Bridge = &stubBridge{identity: &auth.BridgeIdentity{
		Email:        "oauth@x.com",
		Name:         "O Auth",
		SessionToken: "bridge-token",
	}}

	w := env.do(t, http.MethodGet, "/api/auth/session", "", func(r *http.Request) {
		r.Header.Set("X-Session-ID", "ext-handle")
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, true, body["authenticated"])
	require.Equal(t, "oauth@x.com", body["user"].(map[string]any)["email"])

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)
	require.Equal(t, "bridge-token", cookie.Value)
}

func TestSession_BridgeFailureSoftFails(t *testing.T) {
	env := newTestEnv(t)
	env.svc.Bridge = &stubBridge{err: fmt.Errorf("upstream down")}

	w := env.do(t, http.MethodGet, "/api/auth/session", "", func(r *http.Request) {
		r.Header.Set("X-Session-ID", "ext-handle")
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, decodeBody(t, w)["authenticated"])
	require.Nil(t, sessionCookie(t, w))
}

func TestLogout_IgnoresAuthorizationHeader(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"pw1"}`, nil)
	token := sessionCookie(t, w).Value

	// Logout is cookie-only; a header-borne token stays valid.
	w = env.do(t, http.MethodPost, "/api/auth/logout", "", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, env.sessions.count())
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/auth/profile", `{"name":"X"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"pw1","name":"A"}`, nil)
	cookie := sessionCookie(t, w)

	w = env.do(t, http.MethodPut, "/api/auth/profile",
		`{"name":"Renamed","email_notifications":true}`, func(r *http.Request) {
			r.AddCookie(cookie)
		})
	require.Equal(t, http.StatusOK, w.Code)

	user := decodeBody(t, w)["user"].(map[string]any)
	require.Equal(t, "Renamed", user["name"])
	require.Equal(t, true, user["emailNotifications"])
}
