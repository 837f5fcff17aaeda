package fetch

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CryptoBaseURL is the default CoinGecko API endpoint.
const CryptoBaseURL = "https://api.coingecko.com/api/v3"

// CoinPrice is the exported shape of one cryptocurrency price record.
type CoinPrice struct {
	Name      string  `json:"name"`
	Symbol    string  `json:"symbol"`
	PriceUSD  float64 `json:"current_price"`
	MarketCap float64 `json:"market_cap"`
	Change24h float64 `json:"price_change_24h"`
	High24h   float64 `json:"high_24h"`
	Low24h    float64 `json:"low_24h"`
	Timestamp string  `json:"timestamp"`
}

// CSVHeader implements CSVRecord.
func (CoinPrice) CSVHeader() []string {
	return []string{"name", "symbol", "current_price", "market_cap", "price_change_24h", "high_24h", "low_24h", "timestamp"}
}

// CSVRow implements CSVRecord.
func (p CoinPrice) CSVRow() []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return []string{p.Name, p.Symbol, f(p.PriceUSD), f(p.MarketCap), f(p.Change24h), f(p.High24h), f(p.Low24h), p.Timestamp}
}

// coinResponse is the wire shape of the fields we read from the API.
type coinResponse struct {
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	MarketData struct {
		CurrentPrice struct {
			USD float64 `json:"usd"`
		} `json:"current_price"`
		MarketCap struct {
			USD float64 `json:"usd"`
		} `json:"market_cap"`
		Change24h float64 `json:"price_change_percentage_24h"`
		High24h   struct {
			USD float64 `json:"usd"`
		} `json:"high_24h"`
		Low24h struct {
			USD float64 `json:"usd"`
		} `json:"low_24h"`
	} `json:"market_data"`
}

// FetchCoinPrice fetches the current USD price data for one coin ID
// (CoinGecko naming, e.g. "bitcoin"). Callers fetching several coins should
// pause between requests; the public API is rate limited.
func FetchCoinPrice(ctx context.Context, c *Client, id string) (CoinPrice, error) {
	var raw coinResponse
	if err := c.Get(ctx, "coins/"+id, nil, &raw); err != nil {
		return CoinPrice{}, err
	}
	if raw.Name == "" {
		return CoinPrice{}, fmt.Errorf("no price data for %q", id)
	}

	return CoinPrice{
		Name:      raw.Name,
		Symbol:    strings.ToUpper(raw.Symbol),
		PriceUSD:  raw.MarketData.CurrentPrice.USD,
		MarketCap: raw.MarketData.MarketCap.USD,
		Change24h: raw.MarketData.Change24h,
		High24h:   raw.MarketData.High24h.USD,
		Low24h:    raw.MarketData.Low24h.USD,
		Timestamp: time.Now().Format(time.RFC3339),
	}, nil
}
