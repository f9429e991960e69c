package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	"github.com/Noel007-cse/plot-twist-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

// Client talks to the Plot Twist backend over its JSON HTTP API. It
// implements every collaborator port; the backend is one process on
// the other side.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var (
	_ ports.AuthAPI       = (*Client)(nil)
	_ ports.InterestAPI   = (*Client)(nil)
	_ ports.SuggestionAPI = (*Client)(nil)
	_ ports.HistoryAPI    = (*Client)(nil)
	_ ports.ChatAPI       = (*Client)(nil)
)

func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL}
}

type authResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Error  string `json:"error"`
}

// Authenticate runs the login or signup exchange. A body carrying an
// error field becomes *domain.ServerError with the message untouched;
// anything the transport or decoder chokes on wraps
// domain.ErrConnection so callers can tell the two apart.
func (c *Client) Authenticate(ctx context.Context, mode domain.AuthMode, email, password string) (domain.Session, error) {
	if !mode.Valid() {
		return domain.Session{}, fmt.Errorf("unsupported auth mode %q", mode)
	}

	var payload authResponse
	err := c.postJSON(ctx, "/"+string(mode), map[string]any{
		"email":    email,
		"password": password,
	}, &payload)
	if err != nil {
		return domain.Session{}, connectionError(string(mode), err)
	}

	if payload.Error != "" {
		return domain.Session{}, &domain.ServerError{Message: payload.Error}
	}

	return domain.Session{
		Token:  payload.Token,
		UserID: payload.UserID,
		Email:  payload.Email,
	}, nil
}

type interestsResponse struct {
	Interests []string `json:"interests"`
}

func (c *Client) Interests(ctx context.Context, userID string) ([]string, error) {
	query := url.Values{}
	query.Set("userId", userID)

	var payload interestsResponse
	if err := c.getJSON(ctx, "/get-interests", query, &payload); err != nil {
		return nil, connectionError("get interests", err)
	}

	return payload.Interests, nil
}

type updateInterestsResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (c *Client) UpdateInterests(ctx context.Context, userID string, interests []string) error {
	var payload updateInterestsResponse
	err := c.postJSON(ctx, "/update-interests", map[string]any{
		"userId":    userID,
		"interests": interests,
	}, &payload)
	if err != nil {
		return connectionError("update interests", err)
	}

	if payload.Error != "" {
		return &domain.ServerError{Message: payload.Error}
	}
	if !payload.Success {
		return connectionError("update interests", errors.New("response missing success flag"))
	}

	return nil
}

type suggestResponse struct {
	Suggestion string `json:"suggestion"`
	Error      string `json:"error"`
}

func (c *Client) Suggest(ctx context.Context, userID string, req domain.FreeTime) (string, error) {
	query := url.Values{}
	query.Set("minutes", fmt.Sprintf("%d", req.Minutes))
	query.Set("energy", string(req.Energy))
	query.Set("userId", userID)

	var payload suggestResponse
	if err := c.getJSON(ctx, "/suggest", query, &payload); err != nil {
		return "", connectionError("suggest", err)
	}

	if payload.Error != "" {
		return "", &domain.ServerError{Message: payload.Error}
	}
	if payload.Suggestion == "" {
		return "", connectionError("suggest", errors.New("response missing suggestion"))
	}

	return payload.Suggestion, nil
}

type historyEntrySchema struct {
	ID         string `json:"_id"`
	Suggestion string `json:"suggestion"`
	Minutes    int    `json:"minutes"`
	Energy     string `json:"energy"`
	CreatedAt  string `json:"createdAt"`
}

func (c *Client) History(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	query := url.Values{}
	query.Set("userId", userID)

	var payload []historyEntrySchema
	if err := c.getJSON(ctx, "/history", query, &payload); err != nil {
		return nil, connectionError("history", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(payload))
	for _, entry := range payload {
		entries = append(entries, domain.HistoryEntry{
			ID:         entry.ID,
			Suggestion: entry.Suggestion,
			Minutes:    entry.Minutes,
			Energy:     domain.Energy(entry.Energy),
			CreatedAt:  parseTime(entry.CreatedAt),
		})
	}

	return entries, nil
}

type chatResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

func (c *Client) Chat(ctx context.Context, userID, suggestion, userMessage string) (string, error) {
	var payload chatResponse
	err := c.postJSON(ctx, "/chat", map[string]any{
		"userId":      userID,
		"suggestion":  suggestion,
		"userMessage": userMessage,
	}, &payload)
	if err != nil {
		return "", connectionError("chat", err)
	}

	if payload.Error != "" {
		return "", &domain.ServerError{Message: payload.Error}
	}
	if payload.Response == "" {
		return "", connectionError("chat", errors.New("response missing reply"))
	}

	return payload.Response, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint, err := c.endpoint(path, query)
	if err != nil {
		return err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	endpoint, err := c.endpoint(path, nil)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do sends the request and decodes the body regardless of status: the
// backend reports domain errors in the body, and those must reach the
// caller verbatim rather than be flattened into a status failure.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func (c *Client) endpoint(path string, query url.Values) (string, error) {
	if c.BaseURL == "" {
		return "", errors.New("backend base url is required")
	}

	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse backend base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("backend base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("backend base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse backend path: %w", err)
	}
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	return endpoint.String(), nil
}

func connectionError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrConnection, err)
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
