// Package finnhub wraps the Finnhub REST API for real-time quotes,
// company profiles, fundamentals and company news. Responses are
// normalized into the flat domain shapes at this boundary so upstream
// schema drift never reaches the core.
package finnhub

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"papertrade/internal/domain"
)

const baseURL = "https://finnhub.io/api/v1"

type Client struct {
	HttpClient *http.Client
	ApiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		HttpClient: &http.Client{Timeout: 10 * time.Second},
		ApiKey:     apiKey,
	}
}

func (c *Client) get(path string, params url.Values, out any) error {
	params.Set("token", c.ApiKey)
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s?%s", baseURL, path, params.Encode()), nil)
	if err != nil {
		return err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("finnhub returned status %d for %s", response.StatusCode, path)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse finnhub response: %w", err)
	}
	return nil
}

type quoteResponse struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	ChangePercent float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
}

func (c *Client) GetQuote(symbol string) (*domain.Quote, error) {
	symbol = strings.ToUpper(symbol)

	var resp quoteResponse
	if err := c.get("/quote", url.Values{"symbol": {symbol}}, &resp); err != nil {
		return nil, err
	}
	if resp.Current == 0 && resp.PreviousClose == 0 {
		return nil, fmt.Errorf("finnhub returned empty quote for %s", symbol)
	}

	return &domain.Quote{
		Symbol:        symbol,
		CurrentPrice:  resp.Current,
		Change:        resp.Change,
		ChangePercent: resp.ChangePercent,
		High:          resp.High,
		Low:           resp.Low,
		Open:          resp.Open,
		PreviousClose: resp.PreviousClose,
		Timestamp:     time.Now().UTC(),
	}, nil
}

type profileResponse struct {
	Ticker            string  `json:"ticker"`
	Name              string  `json:"name"`
	Country           string  `json:"country"`
	Currency          string  `json:"currency"`
	Exchange          string  `json:"exchange"`
	FinnhubIndustry   string  `json:"finnhubIndustry"`
	Logo              string  `json:"logo"`
	MarketCap         float64 `json:"marketCapitalization"`
	ShareOutstanding  float64 `json:"shareOutstanding"`
	WebURL            string  `json:"weburl"`
}

func (c *Client) GetCompanyProfile(symbol string) (*domain.CompanyProfile, error) {
	symbol = strings.ToUpper(symbol)

	var resp profileResponse
	if err := c.get("/stock/profile2", url.Values{"symbol": {symbol}}, &resp); err != nil {
		return nil, err
	}
	if resp.Ticker == "" {
		return nil, fmt.Errorf("finnhub returned empty profile for %s", symbol)
	}

	out := &domain.CompanyProfile{Symbol: resp.Ticker}
	out.Name = optionalStr(resp.Name)
	out.Country = optionalStr(resp.Country)
	out.Currency = optionalStr(resp.Currency)
	out.Exchange = optionalStr(resp.Exchange)
	out.Industry = optionalStr(resp.FinnhubIndustry)
	out.Logo = optionalStr(resp.Logo)
	out.WebURL = optionalStr(resp.WebURL)
	if resp.MarketCap > 0 {
		// finnhub reports market cap in millions
		cap := resp.MarketCap * 1e6
		out.MarketCap = &cap
	}
	if resp.ShareOutstanding > 0 {
		shares := resp.ShareOutstanding
		out.SharesOutstanding = &shares
	}
	return out, nil
}

type metricsResponse struct {
	Metric map[string]*float64 `json:"metric"`
}

func (c *Client) GetFundamentals(symbol string) (*domain.Fundamentals, error) {
	var resp metricsResponse
	params := url.Values{"symbol": {strings.ToUpper(symbol)}, "metric": {"all"}}
	if err := c.get("/stock/metric", params, &resp); err != nil {
		return nil, err
	}

	return &domain.Fundamentals{
		PERatio:       resp.Metric["peNormalizedAnnual"],
		EPS:           resp.Metric["epsBasicExclExtraItemsTTM"],
		DividendYield: resp.Metric["dividendYieldIndicatedAnnual"],
		Beta:          resp.Metric["beta"],
		Week52High:    resp.Metric["52WeekHigh"],
		Week52Low:     resp.Metric["52WeekLow"],
		MarketCap:     resp.Metric["marketCapitalization"],
	}, nil
}

type companyNewsItem struct {
	ID       int64  `json:"id"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Image    string `json:"image"`
	Datetime int64  `json:"datetime"`
}

// GetCompanyNews fetches articles for symbol from the past week.
// Sentiment is left zeroed; scoring happens in the news service.
func (c *Client) GetCompanyNews(symbol string, limit int) ([]domain.NewsArticle, error) {
	now := time.Now().UTC()
	params := url.Values{
		"symbol": {strings.ToUpper(symbol)},
		"from":   {now.AddDate(0, 0, -7).Format(time.DateOnly)},
		"to":     {now.Format(time.DateOnly)},
	}

	var items []companyNewsItem
	if err := c.get("/company-news", params, &items); err != nil {
		return nil, err
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	out := make([]domain.NewsArticle, 0, len(items))
	for _, item := range items {
		id := item.URL
		if item.ID != 0 {
			id = fmt.Sprintf("%d", item.ID)
		}
		out = append(out, domain.NewsArticle{
			ID:          id,
			Headline:    item.Headline,
			Summary:     item.Summary,
			Source:      item.Source,
			URL:         item.URL,
			Image:       item.Image,
			PublishedAt: time.Unix(item.Datetime, 0).UTC(),
		})
	}
	return out, nil
}

func optionalStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
