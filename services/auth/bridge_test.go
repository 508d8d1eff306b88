package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"neuroglove/models"

	"github.com/stretchr/testify/require"
)

func newBridgeServer(t *testing.T, status int, identity *BridgeIdentity) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.NotEmpty(t, r.Header.Get("X-Session-ID"))
		w.WriteHeader(status)
		if identity != nil {
			_ = json.NewEncoder(w).Encode(identity)
		}
	}))
}

func TestHTTPBridgeClient_Exchange(t *testing.T) {
	srv := newBridgeServer(t, http.StatusOK, &BridgeIdentity{
		Email:        "oauth@x.com",
		Name:         "O Auth",
		Picture:      "https://example.com/p.png",
		SessionToken: "bridge-token",
	})
	defer srv.Close()

	client := NewHTTPBridgeClient(srv.URL)
	identity, err := client.Exchange(context.Background(), "ext-handle")
	require.NoError(t, err)
	require.Equal(t, "oauth@x.com", identity.Email)
	require.Equal(t, "bridge-token", identity.SessionToken)
}

func TestHTTPBridgeClient_ExchangeNon200(t *testing.T) {
	srv := newBridgeServer(t, http.StatusUnauthorized, nil)
	defer srv.Close()

	client := NewHTTPBridgeClient(srv.URL)
	_, err := client.Exchange(context.Background(), "ext-handle")
	require.Error(t, err)
}

func TestHTTPBridgeClient_ExchangeMissingFields(t *testing.T) {
	srv := newBridgeServer(t, http.StatusOK, &BridgeIdentity{Email: "oauth@x.com"})
	defer srv.Close()

	client := NewHTTPBridgeClient(srv.URL)
	_, err := client.Exchange(context.Background(), "ext-handle")
	require.Error(t, err)
}

func TestBridgeExchange_ProvisionsUserAndKeepsBridgeToken(t *testing.T) {
	srv := newBridgeServer(t, http.StatusOK, &BridgeIdentity{
		Email:        "oauth@x.com",
		Name:         "O Auth",
		SessionToken: "bridge-token",
	})
	defer srv.Close()

	svc, users, _ := newTestService()
	svc.Bridge = NewHTTPBridgeClient(srv.URL)

	res, err := svc.BridgeExchange(context.Background(), "ext-handle")
	require.NoError(t, err)
	require.Equal(t, "oauth@x.com", res.User.Email)
	require.Equal(t, "bridge-token", res.Token)
	require.True(t, res.ExpiresAt.After(time.Now()))

	// Provisioned without a password hash.
	stored, err := users.GetByEmail("oauth@x.com")
	require.NoError(t, err)
	require.Empty(t, stored.PasswordHash)

	// The bridge-supplied token resolves like any local session.
	resolved, err := svc.ResolveUser("bridge-token")
	require.NoError(t, err)
	require.Equal(t, res.User.ID, resolved.ID)
}

func TestBridgeExchange_ExistingUserIsReused(t *testing.T) {
	srv := newBridgeServer(t, http.StatusOK, &BridgeIdentity{
		Email:        "a@x.com",
		SessionToken: "bridge-token",
	})
	defer srv.Close()

	svc, users, _ := newTestService()
	svc.Bridge = NewHTTPBridgeClient(srv.URL)

	require.NoError(t, users.Create(&models.User{ID: "u1", Email: "a@x.com", Name: "A"}))

	res, err := svc.BridgeExchange(context.Background(), "ext-handle")
	require.NoError(t, err)
	require.Equal(t, "u1", res.User.ID)
}

func TestBridgeExchange_UpstreamFailure(t *testing.T) {
	srv := newBridgeServer(t, http.StatusBadGateway, nil)
	defer srv.Close()

	svc, users, sessions := newTestService()
	svc.Bridge = NewHTTPBridgeClient(srv.URL)

	_, err := svc.BridgeExchange(context.Background(), "ext-handle")
	require.ErrorIs(t, err, ErrBridgeUnavailable)

	// No partial state: no user provisioned, no session issued.
	require.Empty(t, users.users)
	require.Equal(t, 0, sessions.count())
}
