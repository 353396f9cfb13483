package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/user"
)

// APIClient handles communication with the FishingBot core API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string

	maxRetries int
	retryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: ClientTimeout,
		},
		APIKey:     apiKey,
		maxRetries: MaxRetries,
		retryDelay: RetryBaseDelay,
	}
}

// retryable reports whether a status is worth another attempt. Plain 500s
// carry a business result or a fault that will not go away on its own.
func retryable(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgMarshalBody, err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<uint(attempt-1))
			if c.retryDelay > 0 {
				delay += time.Duration(rand.Int64N(100)) * time.Millisecond
			}
			slog.Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCreateRequest, err)
		}
		req.Header.Set(HeaderContentType, ContentTypeJSON)
		if c.APIKey != "" {
			req.Header.Set(HeaderAPIKey, c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		if !retryable(resp.StatusCode) {
			return resp, nil
		}

		_ = resp.Body.Close()
		lastErr = fmt.Errorf(ErrMsgServerStatus, resp.StatusCode)
		slog.Warn(LogMsgServerError, "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf(ErrMsgMaxRetries, lastErr)
}

// envelope distinguishes a typed result body from a plain error body
type envelope struct {
	Error   string `json:"error"`
	Success *bool  `json:"success"`
}

// call sends a request and decodes the typed result into out. Business
// failures arrive with 4xx/5xx statuses but still decode; plain error
// bodies become Go errors.
func (c *APIClient) call(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodeResponse, path, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf(ErrMsgDecodeResponse, path, err)
	}
	if env.Error != "" {
		return fmt.Errorf(ErrMsgAPIError, env.Error)
	}
	if env.Success == nil {
		return fmt.Errorf(ErrMsgUnexpectedState, resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf(ErrMsgDecodeResponse, path, err)
	}
	return nil
}

func userQuery(path, userID string) string {
	return path + "?" + url.Values{"user_id": {userID}}.Encode()
}

// Register creates the user in the core
func (c *APIClient) Register(ctx context.Context, userID, nickname string) (domain.Result, error) {
	var res domain.Result
	err := c.call(ctx, http.MethodPost, PathRegister, map[string]string{
		"user_id":  userID,
		"nickname": nickname,
	}, &res)
	return res, err
}

// SignIn performs the daily check-in
func (c *APIClient) SignIn(ctx context.Context, userID string) (user.SignInResult, error) {
	var res user.SignInResult
	err := c.call(ctx, http.MethodPost, PathSignIn, map[string]string{"user_id": userID}, &res)
	return res, err
}

// GetCurrency returns both balances
func (c *APIClient) GetCurrency(ctx context.Context, userID string) (user.CurrencyResult, error) {
	var res user.CurrencyResult
	err := c.call(ctx, http.MethodGet, userQuery(PathCurrency, userID), nil, &res)
	return res, err
}

// GetTitles lists owned titles
func (c *APIClient) GetTitles(ctx context.Context, userID string) (user.TitlesResult, error) {
	var res user.TitlesResult
	err := c.call(ctx, http.MethodGet, userQuery(PathTitles, userID), nil, &res)
	return res, err
}

// UseTitle selects an owned title
func (c *APIClient) UseTitle(ctx context.Context, userID string, titleID int) (domain.Result, error) {
	var res domain.Result
	err := c.call(ctx, http.MethodPost, PathUseTitle, map[string]any{
		"user_id":  userID,
		"title_id": titleID,
	}, &res)
	return res, err
}

// GetAccessory returns the equipped accessory
func (c *APIClient) GetAccessory(ctx context.Context, userID string) (user.AccessoryResult, error) {
	var res user.AccessoryResult
	err := c.call(ctx, http.MethodGet, userQuery(PathAccessory, userID), nil, &res)
	return res, err
}

// GetTaxRecords returns the tax ledger, newest first
func (c *APIClient) GetTaxRecords(ctx context.Context, userID string) (user.TaxRecordsResult, error) {
	var res user.TaxRecordsResult
	err := c.call(ctx, http.MethodGet, userQuery(PathTaxes, userID), nil, &res)
	return res, err
}

// GetLeaderboard returns the coin ranking. A non-positive limit uses the server default.
func (c *APIClient) GetLeaderboard(ctx context.Context, limit int) (user.LeaderboardResult, error) {
	path := PathLeaderboard
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}
	var res user.LeaderboardResult
	err := c.call(ctx, http.MethodGet, path, nil, &res)
	return res, err
}

// Healthy reports whether the core answers its liveness probe
func (c *APIClient) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, HealthCheckWait)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+PathHealthz, nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK
}
