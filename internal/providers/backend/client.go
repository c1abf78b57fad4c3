package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nathadriele/creditlens/internal/config"
	"github.com/nathadriele/creditlens/internal/core"
	"github.com/nathadriele/creditlens/pkg/retry"
)

const (
	pathQuery        = "/api/ai/rag/query"
	pathConversation = "/api/ai/rag/conversation"
	pathHealth       = "/health"
)

// Client talks to the credit-decision API over HTTP JSON. Every response
// arrives in a {success, data} / {success:false, error} envelope.
type Client struct {
	client  *http.Client
	baseURL string
	token   func() string
	retrier *retry.Retrier
}

// NewClient builds a backend client. token is consulted per request so a
// refreshed session token is picked up without rebuilding the client.
func NewClient(cfg *config.BackendConfig, token func() string) *Client {
	rc := retry.NewDefaultConfig()
	rc.MaxRetries = cfg.MaxRetries

	if token == nil {
		token = func() string { return "" }
	}

	return &Client{
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   token,
		retrier: retry.NewRetrier(rc),
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) Query(ctx context.Context, query, collection string) (*core.RetrievalResponse, error) {
	payload := map[string]string{
		"query":      query,
		"collection": collection,
	}
	return c.retrieval(ctx, pathQuery, payload)
}

func (c *Client) Conversation(ctx context.Context, query, conversationID, collection string) (*core.RetrievalResponse, error) {
	payload := map[string]string{
		"query":          query,
		"conversationId": conversationID,
		"collection":     collection,
	}
	return c.retrieval(ctx, pathConversation, payload)
}

func (c *Client) Health(ctx context.Context) (*core.Health, error) {
	data, err := c.do(ctx, http.MethodGet, pathHealth, nil)
	if err != nil {
		return nil, err
	}

	var health core.Health
	if err := json.Unmarshal(data, &health); err != nil {
		return nil, &core.TransportError{Err: fmt.Errorf("decode health: %w", err)}
	}
	return &health, nil
}

func (c *Client) retrieval(ctx context.Context, path string, payload any) (*core.RetrievalResponse, error) {
	data, err := c.doWithRetry(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}

	var resp core.RetrievalResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &core.TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return &resp, nil
}

// doWithRetry retries transport failures only; a backend rejection is
// deterministic and surfaced immediately.
func (c *Client) doWithRetry(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	var data json.RawMessage
	var permanent error

	err := c.retrier.Do(ctx, func() error {
		d, err := c.do(ctx, method, path, payload)
		if err != nil {
			if core.IsTransport(err) {
				return err
			}
			permanent = err
			return nil
		}
		data = d
		return nil
	})
	if permanent != nil {
		return nil, permanent
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	var bodyReader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", core.UserAgent)
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &core.TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.TransportError{Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &core.BackendRejected{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(data)),
		}
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &core.TransportError{Err: fmt.Errorf("decode envelope: %w", err)}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "unknown error"
		}
		return nil, &core.BackendRejected{Message: msg}
	}
	return env.Data, nil
}
