package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"neuroglove/models"
	"neuroglove/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BridgeIdentity is the verified identity returned by the trusted
// third-party identity endpoint.
type BridgeIdentity struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// BridgeClient exchanges an external session handle for a verified identity.
type BridgeClient interface {
	Exchange(ctx context.Context, externalSessionID string) (*BridgeIdentity, error)
}

// HTTPBridgeClient calls the identity endpoint over HTTP. Single attempt,
// no retries; any network or non-200 outcome is an exchange failure.
type HTTPBridgeClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPBridgeClient builds a bridge client for the given endpoint.
func NewHTTPBridgeClient(baseURL string) *HTTPBridgeClient {
	return &HTTPBridgeClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Exchange sends the external session handle in the X-Session-ID header and
// decodes the identity payload.
func (c *HTTPBridgeClient) Exchange(ctx context.Context, externalSessionID string) (*BridgeIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build bridge request: %w", err)
	}
	req.Header.Set("X-Session-ID", externalSessionID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bridge request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bridge returned status %d", resp.StatusCode)
	}

	var identity BridgeIdentity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("failed to decode bridge response: %w", err)
	}
	if identity.Email == "" || identity.SessionToken == "" {
		return nil, fmt.Errorf("bridge response missing identity fields")
	}
	return &identity, nil
}

// BridgeExchange trades an external session handle for a local identity and
// session. Users seen for the first time are provisioned without a password
// hash; the local session token is the bridge-supplied one, not a locally
// generated value.
func (s *DefaultAuthService) BridgeExchange(ctx context.Context, externalSessionID string) (*AuthResult, error) {
	identity, err := s.Bridge.Exchange(ctx, externalSessionID)
	if err != nil {
		utils.GetLogger().Warn("Delegated auth exchange failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrBridgeUnavailable, err)
	}

	userRec, err := s.Repo.GetByEmail(identity.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up bridge user: %w", err)
	}
	if userRec == nil {
		userRec = &models.User{
			ID:        uuid.New().String(),
			Email:     identity.Email,
			Name:      identity.Name,
			Picture:   identity.Picture,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.Repo.Create(userRec); err != nil {
			return nil, fmt.Errorf("failed to provision bridge user: %w", err)
		}
	}

	expiresAt, err := s.Sessions.IssueToken(userRec.ID, identity.SessionToken)
	if err != nil {
		return nil, fmt.Errorf("failed to issue bridge session: %w", err)
	}

	userRec.PasswordHash = ""
	return &AuthResult{User: userRec, Token: identity.SessionToken, ExpiresAt: expiresAt}, nil
}
