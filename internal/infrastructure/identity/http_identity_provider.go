package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"studioops/internal/usecase/interfaces"
)

var ErrIdentityProviderNotConfigured = errors.New("identity provider not configured")

const identityTimeout = 5 * time.Second

// HTTPIdentityProvider talks to the external auth service that owns portal
// logins. ResolveUser provisions (or finds) a login for a client contact;
// ResolveRole answers the admin check the destructive booking operations
// gate on.
//
// Mock mode (IDENTITY_PROVIDER_MOCK) answers locally: every contact resolves
// to a deterministic user id and every user is an admin. Good enough for
// local dev where there is no auth service to call.

type HTTPIdentityProvider struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IIdentityProvider = (*HTTPIdentityProvider)(nil)

func NewHTTPIdentityProvider() (*HTTPIdentityProvider, error) {
	if isIdentityMockEnabled() {
		log.Printf("[identity][infra] mock mode enabled")
		return &HTTPIdentityProvider{mockMode: true}, nil
	}

	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("IDENTITY_PROVIDER_URL")), "/")
	if baseURL == "" {
		log.Printf("[identity][infra] missing IDENTITY_PROVIDER_URL")
		return nil, ErrIdentityProviderNotConfigured
	}
	return &HTTPIdentityProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: identityTimeout},
	}, nil
}

type resolveUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type resolveUserResponse struct {
	UserID string `json:"user_id"`
}

type resolveRoleResponse struct {
	Role string `json:"role"`
}

func (p *HTTPIdentityProvider) ResolveUser(ctx context.Context, email, name string) (string, error) {
	if p.mockMode {
		return "mock-" + email, nil
	}

	body, err := json.Marshal(resolveUserRequest{Email: email, Name: name})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/users/resolve", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[identity][infra] resolve user failed email=%s err=%v", email, err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("identity provider returned status %d resolving user", resp.StatusCode)
	}

	var out resolveUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.UserID == "" {
		return "", errors.New("identity provider returned empty user id")
	}
	log.Printf("[identity][infra] resolved user email=%s user_id=%s", email, out.UserID)
	return out.UserID, nil
}

func (p *HTTPIdentityProvider) ResolveRole(ctx context.Context, userID string) (string, error) {
	if p.mockMode {
		return interfaces.RoleAdmin, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v1/users/"+url.PathEscape(userID)+"/role", nil)
	if err != nil {
		return "", err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[identity][infra] resolve role failed user_id=%s err=%v", userID, err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Unknown user carries no role; callers treat it as not authorized.
		return interfaces.RoleClient, nil
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("identity provider returned status %d resolving role", resp.StatusCode)
	}

	var out resolveRoleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Role, nil
}

func isIdentityMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("IDENTITY_PROVIDER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
