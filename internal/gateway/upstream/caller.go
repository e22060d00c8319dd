package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/conexpo/registra/pkg/slogx"
)

// maxAttempts bounds the request/refresh/retry loop per request lifetime.
// It guards against refresh "succeeding" while the remote API keeps
// rejecting the new token for some other reason.
const maxAttempts = 3

// CredentialSource supplies and stores the tokens a Caller works with. The
// session cookie store is the production implementation; tests substitute
// in-memory ones.
type CredentialSource interface {
	BearerToken() string
	RefreshToken() string
	SetBearerToken(token string)
	Clear()
}

// Caller performs authenticated requests on behalf of one inbound request.
// Every outgoing call carries the current bearer token; authorization
// failures trigger one silent refresh round before the retry.
type Caller struct {
	client *Client
	creds  CredentialSource
}

// WithCredentials binds the client to a request's credential source.
func (c *Client) WithCredentials(creds CredentialSource) *Caller {
	return &Caller{client: c, creds: creds}
}

// do runs the request/refresh/retry loop and returns the final response
// body. All responses other than 2xx map to errors: auth failures that
// survive refresh become ErrSessionExpired, the rest become *APIError.
func (a *Caller) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	log := slogx.FromContext(ctx)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, raw, err := a.send(ctx, method, path, payload)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return raw, nil
		}

		if !isAuthFailure(resp.StatusCode) {
			return nil, newAPIError(resp.StatusCode, raw)
		}

		if attempt == maxAttempts {
			break
		}

		log.Debug("authorization failure, attempting token refresh",
			"path", path, "status", resp.StatusCode, "attempt", attempt)

		newBearer, ok := a.client.Refresh(ctx, a.creds.RefreshToken())
		if !ok {
			// Hard failure: the session is gone. Clear credentials so the
			// caller can only land back on the login page.
			a.creds.Clear()
			return nil, ErrSessionExpired
		}
		a.creds.SetBearerToken(newBearer)
	}

	a.creds.Clear()
	return nil, ErrSessionExpired
}

func (a *Caller) send(ctx context.Context, method, path string, payload []byte) (*http.Response, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.client.url(path), reader)
	if err != nil {
		return nil, nil, fmt.Errorf("upstream: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := a.creds.BearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("upstream: send request: %w", err)
	}
	defer resp.Body.Close()

	a.client.observe(resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("upstream: read response: %w", err)
	}
	return resp, raw, nil
}

// getJSON runs a GET and decodes the response into out.
func getJSON[T any](ctx context.Context, a *Caller, path string) (T, error) {
	var out T
	raw, err := a.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("upstream: decode response: %w", err)
	}
	return out, nil
}

// sendJSON runs a mutating request and decodes the response into out.
func sendJSON[T any](ctx context.Context, a *Caller, method, path string, body any) (T, error) {
	var out T
	raw, err := a.do(ctx, method, path, body)
	if err != nil {
		return out, err
	}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("upstream: decode response: %w", err)
	}
	return out, nil
}

// delete runs a DELETE and discards any response body.
func (a *Caller) delete(ctx context.Context, path string) error {
	_, err := a.do(ctx, http.MethodDelete, path, nil)
	return err
}

func escape(id string) string {
	return url.PathEscape(id)
}
