package coinmarketcap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"resty.dev/v3"

	"nibblesprice/internal/host"
	"nibblesprice/internal/metrics"
	"nibblesprice/internal/provider"
)

const logMessage = "Error fetching NIBBLES price data"

// PriceProvider supplies current NIBBLES market data from CoinMarketCap as
// language model context
type PriceProvider struct {
	variant Variant
	client  *resty.Client
	metrics *metrics.Metrics
}

// Option configures a PriceProvider
type Option func(*PriceProvider)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(client *resty.Client) Option {
	return func(p *PriceProvider) {
		p.client = client
	}
}

// WithMetrics records every call in m
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *PriceProvider) {
		p.metrics = m
	}
}

// NewPriceProvider creates a NIBBLES price provider for the given variant.
// An empty baseURL selects the production API host.
func NewPriceProvider(variant Variant, baseURL string, opts ...Option) *PriceProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	p := &PriceProvider{
		variant: variant,
		client:  provider.NewHTTPClient(baseURL, 0),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Get returns the NIBBLES market data text, or the variant's failure sentence
func (p *PriceProvider) Get(ctx context.Context, rt host.Runtime) string {
	start := time.Now()
	res := p.fetch(ctx, rt)

	outcome := metrics.OutcomeOK
	if res.Err != nil {
		outcome = string(provider.TypeOf(res.Err))
	}
	p.metrics.Observe(p.Name(), outcome, time.Since(start))

	return res.Resolve(p.variant.FailureText, func(err error) {
		if rt == nil {
			slog.Error(logMessage, "provider", p.Name(), "error", err.Error())
			return
		}
		rt.LogError(logMessage, err)
	})
}

// Name returns the identifier for this provider
func (p *PriceProvider) Name() string {
	return fmt.Sprintf("coinmarketcap:nibbles:%s", p.variant.Name)
}

// Variant returns the variant this provider was built with
func (p *PriceProvider) Variant() Variant {
	return p.variant
}

func (p *PriceProvider) fetch(ctx context.Context, rt host.Runtime) provider.Result {
	var apiKey string
	var ok bool
	if rt != nil {
		apiKey, ok = rt.GetSetting(p.variant.SettingKey)
	}
	if !ok || apiKey == "" {
		return provider.Fail(provider.NewConfigurationError(p.variant.SettingKey))
	}

	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeaderVerbatim(APIKeyHeader, apiKey).
		SetQueryParams(p.variant.QueryParams()).
		Get(p.variant.Endpoint)

	if err != nil {
		return provider.Fail(provider.ClassifyTransportError(err))
	}

	if !resp.IsSuccess() {
		return provider.Fail(provider.ClassifyHTTPError(resp.StatusCode()))
	}

	body := resp.Bytes()
	text, err := Render(p.variant, body)
	if err != nil {
		return provider.Fail(err)
	}

	p.logQuote(body)

	return provider.Ok(text)
}

// logQuote writes a debug summary of the fetched quote. Bodies that do not
// decode into QuoteResponse are still rendered; they just get no summary.
func (p *PriceProvider) logQuote(body []byte) {
	var parsed QuoteResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		slog.Debug("quote summary unavailable", "provider", p.Name(), "error", err.Error())
		return
	}

	token, found := parsed.Token(Symbol)
	if !found {
		return
	}
	if q, hasQuote := token.Quote[Currency]; hasQuote {
		slog.Debug("fetched quote",
			"provider", p.Name(),
			"symbol", token.Symbol,
			"price", q.Price,
			"last_updated", q.LastUpdated)
	}
}
