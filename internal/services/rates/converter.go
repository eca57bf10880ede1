// Package rates provides currency conversion backed by the CoinConvert
// public API, with an optional Redis-cached wrapper.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Converter resolves the value of amount units of fromSymbol in
// toSymbol. Transport failures are returned as errors; the pipeline
// does not retry.
type Converter interface {
	Convert(ctx context.Context, fromSymbol, toSymbol string, amount decimal.Decimal) (decimal.Decimal, error)
}

const defaultBaseURL = "https://api.coinconvert.net"

type CoinConvertClient struct {
	baseURL string
	client  *http.Client
}

func NewCoinConvertClient() *CoinConvertClient {
	return &CoinConvertClient{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewCoinConvertClientWithBaseURL is used by tests to point the client
// at a local server.
func NewCoinConvertClientWithBaseURL(baseURL string) *CoinConvertClient {
	c := NewCoinConvertClient()
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

func (c *CoinConvertClient) Convert(ctx context.Context, fromSymbol, toSymbol string, amount decimal.Decimal) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/convert/%s/%s?amount=%s", c.baseURL, fromSymbol, toSymbol, amount.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build conversion request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("conversion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("converter returned status %d", resp.StatusCode)
	}

	// The response maps currency symbols to converted values, e.g.
	// {"status":"success","BTC":1,"USD":64023.11}. Only the target
	// symbol's entry matters.
	var body map[string]any
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode conversion response: %w", err)
	}

	symbol := strings.ToUpper(toSymbol)
	raw, ok := body[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("conversion response missing %q", symbol)
	}

	num, ok := raw.(json.Number)
	if !ok {
		return decimal.Zero, fmt.Errorf("conversion value for %q is not numeric", symbol)
	}
	value, err := decimal.NewFromString(num.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid conversion value %q: %w", num.String(), err)
	}
	return value, nil
}
