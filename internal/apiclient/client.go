// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package apiclient implements the HTTP gateway client for the Inventa
// backend. It is the single choke point for all outbound API calls: it
// attaches the bearer token from the session store, short-circuits when the
// connectivity oracle reports offline, classifies failures into a small
// error taxonomy, and owns the single-flight refresh-token protocol that
// queues and replays requests which fail with an expired access token.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"inventa/cli/internal/alerts"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// refreshPath is the endpoint exchanging the refresh cookie for a new
// access token. No request body; the credential travels in the cookie jar.
const refreshPath = "/auth/refresh-token"

// SessionStore is the client's view of the session state. Reads are
// snapshots; writes happen only from login/logout flows and from the
// refresh protocol in this package.
type SessionStore interface {
	Token() string
	SetToken(token string)
	Clear()
}

// Connectivity reports the last-known online state. The check must be
// non-blocking; the client consults it before every request.
type Connectivity interface {
	Online() bool
}

// Alerter shows a user-facing notice for a failure condition. Deduplication
// of concurrent notices is the Alerter's responsibility.
type Alerter interface {
	Notify(kind alerts.Kind, message string)
}

// Client wraps outbound HTTP calls to the Inventa backend.
type Client struct {
	baseURL string
	client  *http.Client
	session SessionStore
	net     Connectivity
	alerts  Alerter
	log     zerolog.Logger

	refresh refreshGroup
}

// New creates a Client for the given base URL. The underlying HTTP client
// carries a cookie jar so the refresh cookie set at login is replayed on
// refresh calls, and a 15-second timeout bounds every request.
func New(baseURL string, session SessionStore, net Connectivity, alerter Alerter, log zerolog.Logger) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second, Jar: jar},
		session: session,
		net:     net,
		alerts:  alerter,
		log:     log,
	}
}

// serverError is the JSON shape of structured error bodies.
type serverError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Do sends an API request and decodes a 2xx JSON response into out (which
// may be nil). in, when non-nil, is marshaled as the JSON request body.
// Failures are classified per the gateway contract: ErrOffline,
// *NetworkError, *ServerError, ErrSessionExpired, or *APIError.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	if !c.net.Online() {
		c.alerts.Notify(alerts.KindOffline, "")
		return ErrOffline
	}

	var payload []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = b
	}
	return c.do(ctx, method, path, payload, out, false)
}

// do performs one send/classify cycle. retried marks requests already
// replayed once after a token refresh; those never trigger a second refresh.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any, retried bool) error {
	resp, err := c.send(ctx, method, path, payload, c.session.Token())
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("transport failure")
		c.alerts.Notify(alerts.KindNetwork, err.Error())
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.alerts.Notify(alerts.KindNetwork, err.Error())
		return &NetworkError{Err: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil

	case resp.StatusCode >= 500:
		c.alerts.Notify(alerts.KindServer, fmt.Sprintf("status %d", resp.StatusCode))
		return &ServerError{Status: resp.StatusCode}

	case resp.StatusCode == http.StatusUnauthorized:
		var se serverError
		_ = json.Unmarshal(body, &se)

		if se.Code == CodeAccessExpired && !retried {
			return c.recover(ctx, method, path, payload, out)
		}
		if isTerminalCode(se.Code) {
			c.expireSession()
			return ErrSessionExpired
		}
		return &APIError{Status: resp.StatusCode, Code: se.Code, Message: se.Message}

	default:
		var se serverError
		_ = json.Unmarshal(body, &se)
		return &APIError{Status: resp.StatusCode, Code: se.Code, Message: se.Message}
	}
}

// send builds and transmits a single HTTP request with standard headers and
// the given bearer token (when present).
func (c *Client) send(ctx context.Context, method, path string, payload []byte, token string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "inventa-cli")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.client.Do(req)
}

// expireSession surfaces the session-expired notice (only when a token
// existed, so an anonymous 401 stays quiet) and clears the session.
func (c *Client) expireSession() {
	if c.session.Token() != "" {
		c.alerts.Notify(alerts.KindSessionExpired, "")
	}
	c.session.Clear()
}

// callRefresh invokes the refresh endpoint and returns the new access
// token. The refresh credential is the cookie stored in the client's jar.
func (c *Client) callRefresh(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "inventa-cli")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("refresh failed: %d %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var result struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("refresh response missing accessToken")
	}
	return result.AccessToken, nil
}
