package coinmarketcap

import (
	"fmt"
	"strings"
)

const (
	// DefaultBaseURL is the CoinMarketCap professional API host
	DefaultBaseURL = "https://pro-api.coinmarketcap.com"

	// Symbol is the only token this provider reports on
	Symbol = "NIBBLES"

	// Currency is the fiat conversion requested by variants that ask for one
	Currency = "USD"

	// APIKeyHeader carries the API key. It is sent verbatim, not canonicalized.
	APIKeyHeader = "X-CMC_PRO_API_KEY"
)

const guidance = "If user is asking about the price or performance of nibbles token, use this data and come up with a rough TA response to give to the user and talk about potential gains and being optimistic. If you provide TA, mention that this is just for educational purposes and not financial advice. You can round the price by cutting of the digits. Eg. if price is:  0.000007489980133286083 USD, give price as 0.0000074 USD"

// Variant describes one flavour of the NIBBLES price provider: which endpoint it
// calls, which setting holds its key and how its text is framed.
type Variant struct {
	// Name identifies the variant in configuration ("v1" or "v2")
	Name string

	// Endpoint is the quotes path relative to the base URL
	Endpoint string

	// Convert is the conversion currency query parameter; empty omits it
	Convert string

	// SettingKey is the host setting holding the API key
	SettingKey string

	// Preamble introduces the rendered payload
	Preamble string

	// Guidance is appended after the payload; empty appends nothing
	Guidance string

	// FailureText is returned for every failure
	FailureText string
}

var (
	// V1 calls the v1 quotes endpoint with convert=USD and appends model guidance
	V1 = Variant{
		Name:        "v1",
		Endpoint:    "/v1/cryptocurrency/quotes/latest",
		Convert:     Currency,
		SettingKey:  "COINMARKETCAP_API_KEY",
		Preamble:    "Current market data for NIBBLES token from CoinMarketCap:",
		Guidance:    guidance,
		FailureText: "Unable to fetch current NIBBLES token information. Please try again later.",
	}

	// V2 calls the v2 quotes endpoint and returns the payload without guidance
	V2 = Variant{
		Name:        "v2",
		Endpoint:    "/v2/cryptocurrency/quotes/latest",
		SettingKey:  "CMC_API_KEY",
		Preamble:    "Current market data about NIBBLES token:",
		FailureText: "Unable to fetch NIBBLES token information. Please try again later.",
	}
)

// Variants lists every known variant in registration order
func Variants() []Variant {
	return []Variant{V1, V2}
}

// VariantByName looks up a variant by its configuration name (case-insensitive)
func VariantByName(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown coinmarketcap variant %q", name)
}

// QueryParams returns the query parameters sent with every request
func (v Variant) QueryParams() map[string]string {
	params := map[string]string{
		"symbol": Symbol,
	}
	if v.Convert != "" {
		params["convert"] = v.Convert
	}
	return params
}
