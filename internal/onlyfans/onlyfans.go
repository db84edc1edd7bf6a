// Package onlyfans talks to the OnlyFans API (or the local mock of it).
package onlyfans

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/GlebRadaev/ofgateway/internal/config"
	"github.com/GlebRadaev/ofgateway/internal/domain"
	"github.com/GlebRadaev/ofgateway/pkg/clients"
	"go.uber.org/zap"
)

const DefaultTransactionsLimit = "10"

var (
	ErrAPI              = errors.New("onlyfans api error")
	ErrUnexpectedStatus = fmt.Errorf("%w: unexpected status code", ErrAPI)
	ErrMalformedBody    = fmt.Errorf("%w: malformed response body", ErrAPI)
)

var nullData = json.RawMessage("null")

type Client struct {
	baseURL string
	apiKey  string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: cfg.OnlyFansAPIURL,
		apiKey:  cfg.OnlyFansAPIKey,
		client:  client,
	}
}

func (c *Client) GetEarningStatistics(ctx context.Context, accountID string) (*domain.Envelope, error) {
	return c.get(ctx, c.accountURL(accountID, "earning-statistics"))
}

// GetTransactions forwards limit and marker as given; an empty limit becomes
// DefaultTransactionsLimit and an empty marker is left out.
func (c *Client) GetTransactions(ctx context.Context, accountID string, q domain.TransactionsQuery) (*domain.Envelope, error) {
	return c.get(ctx, c.accountURL(accountID, "transactions")+"?"+TransactionsQueryString(q))
}

func TransactionsQueryString(q domain.TransactionsQuery) string {
	limit := q.Limit
	if limit == "" {
		limit = DefaultTransactionsLimit
	}
	query := "limit=" + url.QueryEscape(limit)
	if q.Marker != "" {
		query += "&marker=" + url.QueryEscape(q.Marker)
	}
	return query
}

func (c *Client) accountURL(accountID, resource string) string {
	return c.baseURL + "/api/" + url.PathEscape(accountID) + "/payouts/" + resource
}

func (c *Client) headers() http.Header {
	headers := http.Header{}
	headers.Set("Accept", "application/json")
	if c.apiKey != "" {
		headers.Set("Authorization", "Bearer "+c.apiKey)
	}
	return headers
}

func (c *Client) get(ctx context.Context, endpoint string) (*domain.Envelope, error) {
	statusCode, body, _, err := c.client.Get(ctx, endpoint, c.headers())
	if err != nil {
		zap.L().Error("onlyfans api request failed", zap.String("url", endpoint), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrAPI, err)
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("url", endpoint))
		return nil, fmt.Errorf("%w %d (%s)", ErrUnexpectedStatus, statusCode, http.StatusText(statusCode))
	}

	return decodeEnvelope(body)
}

func decodeEnvelope(body []byte) (*domain.Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrMalformedBody
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	if envelope.Data == nil {
		envelope.Data = nullData
	}

	return &domain.Envelope{
		Data: envelope.Data,
		Raw:  json.RawMessage(trimmed),
	}, nil
}
