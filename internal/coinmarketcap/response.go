package coinmarketcap

import (
	"bytes"
	"encoding/json"
)

// Status is the envelope CoinMarketCap attaches to every response
type Status struct {
	Timestamp    string  `json:"timestamp"`
	ErrorCode    int     `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
	Elapsed      int     `json:"elapsed"`
	CreditCount  int     `json:"credit_count"`
	Notice       *string `json:"notice"`
}

// Quote holds the market metrics for one token in one conversion currency
type Quote struct {
	Price                 float64  `json:"price"`
	Volume24h             float64  `json:"volume_24h"`
	VolumeChange24h       float64  `json:"volume_change_24h"`
	PercentChange1h       float64  `json:"percent_change_1h"`
	PercentChange24h      float64  `json:"percent_change_24h"`
	PercentChange7d       float64  `json:"percent_change_7d"`
	PercentChange30d      float64  `json:"percent_change_30d"`
	PercentChange60d      float64  `json:"percent_change_60d"`
	PercentChange90d      float64  `json:"percent_change_90d"`
	MarketCap             float64  `json:"market_cap"`
	MarketCapDominance    float64  `json:"market_cap_dominance"`
	FullyDilutedMarketCap float64  `json:"fully_diluted_market_cap"`
	TVL                   *float64 `json:"tvl"`
	LastUpdated           string   `json:"last_updated"`
}

// Platform identifies the chain a token is issued on
type Platform struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Slug         string `json:"slug"`
	TokenAddress string `json:"token_address"`
}

// Tag is a CoinMarketCap tag. v1 sends plain slugs, v2 sends objects.
type Tag struct {
	Slug     string `json:"slug"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
}

// UnmarshalJSON accepts either a bare string or a tag object
func (t *Tag) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &t.Slug)
	}

	type plain Tag
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = Tag(p)
	return nil
}

// TokenData is the per-token record of a quotes response
type TokenData struct {
	ID                            int              `json:"id"`
	Name                          string           `json:"name"`
	Symbol                        string           `json:"symbol"`
	Slug                          string           `json:"slug"`
	NumMarketPairs                int              `json:"num_market_pairs"`
	DateAdded                     string           `json:"date_added"`
	Tags                          []Tag            `json:"tags"`
	MaxSupply                     *float64         `json:"max_supply"`
	CirculatingSupply             *float64         `json:"circulating_supply"`
	TotalSupply                   *float64         `json:"total_supply"`
	IsActive                      int              `json:"is_active"`
	InfiniteSupply                bool             `json:"infinite_supply"`
	Platform                      *Platform        `json:"platform"`
	CMCRank                       *int             `json:"cmc_rank"`
	IsFiat                        int              `json:"is_fiat"`
	SelfReportedCirculatingSupply *float64         `json:"self_reported_circulating_supply"`
	SelfReportedMarketCap         *float64         `json:"self_reported_market_cap"`
	TVLRatio                      *float64         `json:"tvl_ratio"`
	LastUpdated                   string           `json:"last_updated"`
	Quote                         map[string]Quote `json:"quote"`
}

// TokenList holds the records returned for one symbol.
// v1 responses carry a single object per symbol, v2 responses an array.
type TokenList []TokenData

// UnmarshalJSON accepts either a single token object or an array of them
func (l *TokenList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var many []TokenData
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*l = many
		return nil
	}

	var one TokenData
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = TokenList{one}
	return nil
}

// QuoteResponse represents the CoinMarketCap quotes/latest response
type QuoteResponse struct {
	Status Status               `json:"status"`
	Data   map[string]TokenList `json:"data"`
}

// Token returns the first record for symbol, if any
func (r QuoteResponse) Token(symbol string) (TokenData, bool) {
	list, ok := r.Data[symbol]
	if !ok || len(list) == 0 {
		return TokenData{}, false
	}
	return list[0], true
}
