package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"SentimentPulse/internal/model"
)

// CoinGeckoFetcher implements PriceSource using the CoinGecko market
// chart API.
type CoinGeckoFetcher struct {
	BaseURL string
	Coin    string // CoinGecko coin id, e.g. "bitcoin"
	Client  *http.Client
}

// NewCoinGeckoFetcher creates a new fetcher with optional proxy support.
func NewCoinGeckoFetcher(coin, proxyURL string) *CoinGeckoFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &CoinGeckoFetcher{
		BaseURL: "https://api.coingecko.com",
		Coin:    coin,
		Client: &http.Client{
			Timeout:   20 * time.Second,
			Transport: transport,
		},
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

// marketChart is the response structure from the CoinGecko market_chart
// API. Each prices entry is [timestamp_ms, price].
type marketChart struct {
	Prices [][]float64 `json:"prices"`
}

// FetchDailyPrices returns daily close prices for the trailing `days`
// days in ascending time order.
func (f *CoinGeckoFetcher) FetchDailyPrices(days int) ([]model.PricePoint, error) {
	u := fmt.Sprintf("%s/api/v3/coins/%s/market_chart?vs_currency=usd&days=%d&interval=daily",
		f.BaseURL, url.PathEscape(f.Coin), days)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("coingecko read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart marketChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}
	if len(chart.Prices) == 0 {
		return nil, fmt.Errorf("coingecko: no price data returned")
	}

	points := make([]model.PricePoint, 0, len(chart.Prices))
	for _, entry := range chart.Prices {
		if len(entry) < 2 {
			continue
		}
		points = append(points, model.PricePoint{
			Time:  time.UnixMilli(int64(entry[0])).UTC(),
			Price: entry[1],
		})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("coingecko: no usable price entries")
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	return points, nil
}
