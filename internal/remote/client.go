package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"guzo/internal/domain"
	"guzo/internal/domain/models"
	"guzo/internal/session"
)

const refreshPath = "/users/token/refresh/"

// Client issues requests to the upstream booking API. It attaches the
// session's bearer token, refreshes it once on a 401 and replays the
// request, and reports every non-recoverable failure as a typed error.
// It never falls back to demo data itself; that is the facade's job.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
}

func NewClient(baseURL string, timeout time.Duration, sess *session.Session) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, false)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, false)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out, false)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, false)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, retried bool) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return domain.InternalError{Msg: "encode request body", Err: err}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return domain.InternalError{Msg: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if access, _ := c.session.Tokens(); access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.UnavailableError{Op: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && !retried {
		_, refresh := c.session.Tokens()
		if refresh != "" {
			if err := c.refreshTokens(ctx, refresh); err != nil {
				return err
			}
			return c.do(ctx, method, path, body, out, true)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return domain.UnavailableError{Op: path, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.UnavailableError{Op: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// refreshTokens exchanges the refresh token for a new pair and persists it.
// On failure both tokens are cleared and the session counts as expired.
func (c *Client) refreshTokens(ctx context.Context, refresh string) error {
	raw, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return domain.InternalError{Msg: "encode refresh body", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, bytes.NewReader(raw))
	if err != nil {
		return domain.InternalError{Msg: "build refresh request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.session.ClearTokens()
		return domain.AuthExpiredError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.session.ClearTokens()
		return domain.AuthExpiredError{Err: fmt.Errorf("refresh returned status %d", resp.StatusCode)}
	}

	var pair models.TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		c.session.ClearTokens()
		return domain.AuthExpiredError{Err: err}
	}
	return c.session.SetTokens(pair)
}
