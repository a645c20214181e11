package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"krw-converter/internal/logger"
	"krw-converter/internal/models"
)

const maxBodyBytes = 32 << 10

var (
	ErrMissingRate    = errors.New("missing rate")
	ErrInvalidRate    = errors.New("invalid rate")
	ErrUnexpectedBase = errors.New("unexpected base currency")
)

// LatestResponse is the subset of the upstream payload the converter reads.
// Rates are "units of CODE per 1 KRW".
type LatestResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]json.RawMessage `json:"rates"`
}

type Fetcher interface {
	Fetch(ctx context.Context) (models.RateTable, error)
}

type Client struct {
	url        string
	httpClient *http.Client
	logger     logger.Logger
}

var _ Fetcher = (*Client)(nil)

func NewClient(url string, timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

// Fetch performs one GET and returns the inverted rate table. On any error the
// zero table is returned alongside it, so callers never see a partial table.
func (c *Client) Fetch(ctx context.Context) (models.RateTable, error) {
	start := time.Now()

	resp, err := c.latest(ctx)
	if err != nil {
		c.logger.Error("RateFetcher", err, map[string]interface{}{"url": c.url})
		return models.ZeroRates(), err
	}

	table, err := Invert(resp)
	if err != nil {
		c.logger.Error("RateFetcher", err, map[string]interface{}{"url": c.url})
		return models.ZeroRates(), err
	}

	c.logger.Info("RateFetcher", "rates fetched", map[string]interface{}{
		"as_of":    table.AsOf(),
		"duration": time.Since(start).String(),
	})
	return table, nil
}

func (c *Client) latest(ctx context.Context) (*LatestResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("rates http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out LatestResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &out, nil
}

// Invert turns "units per KRW" quotes into "KRW per unit" for every supported
// currency. It fails as a whole if any supported quote is absent or unusable.
func Invert(resp *LatestResponse) (models.RateTable, error) {
	if resp == nil || resp.Rates == nil {
		return models.RateTable{}, fmt.Errorf("response has no rates: %w", ErrMissingRate)
	}
	if base := strings.TrimSpace(resp.Base); base != "" && !strings.EqualFold(base, models.KRW) {
		return models.RateTable{}, fmt.Errorf("%w: %q", ErrUnexpectedBase, resp.Base)
	}

	one := decimal.NewFromInt(1)
	inverted := make(map[models.Code]decimal.Decimal, len(models.SupportedCodes()))

	for _, code := range models.SupportedCodes() {
		raw, ok := resp.Rates[code.String()]
		if !ok {
			return models.RateTable{}, fmt.Errorf("%w: %s", ErrMissingRate, code)
		}

		perKRW, err := parseQuote(raw)
		if err != nil {
			return models.RateTable{}, fmt.Errorf("%w: %s=%s: %v", ErrInvalidRate, code, string(raw), err)
		}
		if !perKRW.IsPositive() {
			return models.RateTable{}, fmt.Errorf("%w: %s=%s is not positive", ErrInvalidRate, code, perKRW)
		}

		inverted[code] = one.Div(perKRW)
	}

	return models.NewRateTable(inverted, resp.Date)
}

// parseQuote only accepts JSON numbers; quoted strings are a schema error
func parseQuote(raw json.RawMessage) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" || strings.HasPrefix(s, `"`) {
		return decimal.Decimal{}, errors.New("not a number")
	}
	return decimal.NewFromString(s)
}
