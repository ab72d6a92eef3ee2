// Package alphavantage wraps the Alpha Vantage REST API for historical
// time series and symbol search.
package alphavantage

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"papertrade/internal/domain"
)

const baseURL = "https://www.alphavantage.co/query"

type Client struct {
	HttpClient *http.Client
	ApiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		HttpClient: &http.Client{Timeout: 15 * time.Second},
		ApiKey:     apiKey,
	}
}

var functionByInterval = map[domain.Interval]string{
	domain.Interval_Daily:   "TIME_SERIES_DAILY",
	domain.Interval_Weekly:  "TIME_SERIES_WEEKLY",
	domain.Interval_Monthly: "TIME_SERIES_MONTHLY",
}

func (c *Client) get(params url.Values) ([]byte, error) {
	params.Set("apikey", c.ApiKey)
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", baseURL, params.Encode()), nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage returned status %d", response.StatusCode)
	}
	return io.ReadAll(response.Body)
}

type barValues struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// GetTimeSeries fetches historical bars for symbol at the given
// interval and returns them sorted oldest-first. Unknown intervals fall
// back to daily.
func (c *Client) GetTimeSeries(symbol string, interval domain.Interval) ([]domain.Candle, error) {
	function, ok := functionByInterval[interval]
	if !ok {
		function = functionByInterval[domain.Interval_Daily]
	}

	body, err := c.get(url.Values{
		"function":   {function},
		"symbol":     {strings.ToUpper(symbol)},
		"outputsize": {"compact"},
	})
	if err != nil {
		return nil, err
	}

	// The payload keys the series under a name that varies by function
	// ("Time Series (Daily)", "Weekly Time Series", ...), so locate it
	// dynamically.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse alphavantage response: %w", err)
	}

	var series map[string]barValues
	for key, value := range raw {
		if strings.Contains(key, "Time Series") {
			if err := json.Unmarshal(value, &series); err != nil {
				return nil, fmt.Errorf("failed to parse alphavantage time series: %w", err)
			}
			break
		}
	}
	if series == nil {
		return nil, fmt.Errorf("no time series data found for %s", symbol)
	}

	out := make([]domain.Candle, 0, len(series))
	for dateStr, values := range series {
		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			continue
		}
		out = append(out, domain.Candle{
			Date:   date,
			Open:   parseFloat(values.Open),
			High:   parseFloat(values.High),
			Low:    parseFloat(values.Low),
			Close:  parseFloat(values.Close),
			Volume: parseInt(values.Volume),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

type searchResponse struct {
	BestMatches []map[string]string `json:"bestMatches"`
}

func (c *Client) SearchSymbols(query string) ([]domain.SymbolMatch, error) {
	body, err := c.get(url.Values{
		"function": {"SYMBOL_SEARCH"},
		"keywords": {query},
	})
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse alphavantage search response: %w", err)
	}

	out := make([]domain.SymbolMatch, 0, len(resp.BestMatches))
	for _, match := range resp.BestMatches {
		out = append(out, domain.SymbolMatch{
			Symbol: match["1. symbol"],
			Name:   match["2. name"],
			Type:   match["3. type"],
			Region: match["4. region"],
		})
	}
	return out, nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
