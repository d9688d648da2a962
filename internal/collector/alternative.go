package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"SentimentPulse/internal/model"
)

// AlternativeFetcher implements SentimentSource using the alternative.me
// Fear & Greed API.
type AlternativeFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewAlternativeFetcher creates a new fetcher with optional proxy support.
func NewAlternativeFetcher(proxyURL string) *AlternativeFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &AlternativeFetcher{
		BaseURL: "https://api.alternative.me",
		Client: &http.Client{
			Timeout:   20 * time.Second,
			Transport: transport,
		},
	}
}

func (f *AlternativeFetcher) Name() string { return "alternative.me" }

// fngResponse is the response structure from the alternative.me fng API.
// Numeric fields arrive as JSON strings.
type fngResponse struct {
	Data []struct {
		Value               string `json:"value"`
		ValueClassification string `json:"value_classification"`
		Timestamp           string `json:"timestamp"`
	} `json:"data"`
	Metadata struct {
		Error any `json:"error"`
	} `json:"metadata"`
}

// FetchHistory returns the last `days` daily index points in ascending
// time order.
func (f *AlternativeFetcher) FetchHistory(days int) ([]model.FearGreedPoint, error) {
	u := fmt.Sprintf("%s/fng/?limit=%d&format=json", f.BaseURL, days)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fng fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fng read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fng: status %d, body: %s", resp.StatusCode, string(body))
	}

	var payload fngResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("fng decode: %w", err)
	}
	if payload.Metadata.Error != nil {
		return nil, fmt.Errorf("fng api error: %v", payload.Metadata.Error)
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("fng: no data returned")
	}

	points := make([]model.FearGreedPoint, 0, len(payload.Data))
	for _, row := range payload.Data {
		ts, err := strconv.ParseInt(row.Timestamp, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("fng parse timestamp %q: %w", row.Timestamp, err)
		}
		value, err := strconv.Atoi(row.Value)
		if err != nil {
			return nil, fmt.Errorf("fng parse value %q: %w", row.Value, err)
		}
		points = append(points, model.FearGreedPoint{
			Time:           time.Unix(ts, 0).UTC(),
			Value:          value,
			Classification: row.ValueClassification,
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	return points, nil
}
