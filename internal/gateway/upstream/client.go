// Package upstream is the typed client for the remote registration API. All
// feature handlers go through it; it owns the bearer-token attachment and the
// silent refresh-and-retry contract.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/conexpo/registra/internal/gateway/domain"
)

// Observer receives client events for metrics. Implementations must be
// cheap; a nil Observer disables observation.
type Observer interface {
	UpstreamRequest(statusCode int)
	Refresh(ok bool)
}

// Client holds the connection to the remote registration API. It performs
// the unauthenticated operations itself (login, refresh) and hands
// everything else to per-request Callers.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Observer   Observer
}

// NewClient creates a client for the remote registration API.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

func (c *Client) observe(statusCode int) {
	if c.Observer != nil {
		c.Observer.UpstreamRequest(statusCode)
	}
}

func (c *Client) observeRefresh(ok bool) {
	if c.Observer != nil {
		c.Observer.Refresh(ok)
	}
}

// Ping checks that the remote API is reachable. Any HTTP response counts as
// reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/"), nil)
	if err != nil {
		return fmt.Errorf("upstream: create ping request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: ping: %w", err)
	}
	resp.Body.Close()
	return nil
}

// LoginResult is the remote login response: both tokens plus the user they
// belong to.
type LoginResult struct {
	AuthToken    string      `json:"authToken"`
	RefreshToken string      `json:"refreshToken"`
	User         domain.User `json:"user"`
}

// Login authenticates against the remote API. Credentials never pass
// through a Caller: this is one of the two endpoints that carries no bearer
// token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/users/"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("upstream: create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream: login request: %w", err)
	}
	defer resp.Body.Close()

	c.observe(resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream: read login response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, newAPIError(resp.StatusCode, raw)
	}

	var result LoginResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("upstream: decode login response: %w", err)
	}
	return &result, nil
}

// Refresh exchanges a refresh token for a new bearer token. The refresh
// token is not rotated: the remote API keeps honouring it until logout.
// Every failure reduces to ok=false; this boundary never raises.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (newBearer string, ok bool) {
	if refreshToken == "" {
		return "", false
	}

	body, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/users/refresh"), bytes.NewReader(body))
	if err != nil {
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.observeRefresh(false)
		return "", false
	}
	defer resp.Body.Close()

	c.observe(resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		c.observeRefresh(false)
		return "", false
	}

	var result struct {
		AuthToken string `json:"authToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.AuthToken == "" {
		c.observeRefresh(false)
		return "", false
	}

	c.observeRefresh(true)
	return result.AuthToken, true
}
