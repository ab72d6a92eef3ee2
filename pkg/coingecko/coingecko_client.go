// Package coingecko wraps the CoinGecko REST API for crypto market
// prices and the global market snapshot. No API key is required.
package coingecko

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

const baseURL = "https://api.coingecko.com/api/v3"

type Client struct {
	HttpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		HttpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) get(path string, params url.Values, out any) error {
	u := baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("coingecko returned status %d for %s", response.StatusCode, path)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse coingecko response: %w", err)
	}
	return nil
}

type marketItem struct {
	ID                       string  `json:"id"`
	Symbol                   string  `json:"symbol"`
	Name                     string  `json:"name"`
	CurrentPrice             float64 `json:"current_price"`
	MarketCap                float64 `json:"market_cap"`
	MarketCapRank            int     `json:"market_cap_rank"`
	PriceChange24h           float64 `json:"price_change_24h"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	High24h                  float64 `json:"high_24h"`
	Low24h                   float64 `json:"low_24h"`
	TotalVolume              float64 `json:"total_volume"`
}

func (c *Client) GetMarkets(ids []string) ([]domain.CryptoPrice, error) {
	params := url.Values{
		"vs_currency":             {"usd"},
		"ids":                     {strings.Join(ids, ",")},
		"order":                   {"market_cap_desc"},
		"price_change_percentage": {"24h"},
	}

	var items []marketItem
	if err := c.get("/coins/markets", params, &items); err != nil {
		return nil, err
	}

	out := make([]domain.CryptoPrice, 0, len(items))
	for _, item := range items {
		out = append(out, domain.CryptoPrice{
			ID:                    item.ID,
			Symbol:                strings.ToUpper(item.Symbol),
			Name:                  item.Name,
			CurrentPrice:          item.CurrentPrice,
			MarketCap:             item.MarketCap,
			MarketCapRank:         item.MarketCapRank,
			PriceChange24h:        item.PriceChange24h,
			PriceChangePercent24h: item.PriceChangePercentage24h,
			High24h:               item.High24h,
			Low24h:                item.Low24h,
			Volume24h:             item.TotalVolume,
		})
	}
	return out, nil
}

type globalResponse struct {
	Data struct {
		TotalMarketCap         map[string]float64 `json:"total_market_cap"`
		TotalVolume            map[string]float64 `json:"total_volume"`
		MarketCapPercentage    map[string]float64 `json:"market_cap_percentage"`
		MarketCapChange24hUSD  float64            `json:"market_cap_change_percentage_24h_usd"`
		ActiveCryptocurrencies int                `json:"active_cryptocurrencies"`
	} `json:"data"`
}

func (c *Client) GetGlobal() (*domain.GlobalMarket, error) {
	var resp globalResponse
	if err := c.get("/global", nil, &resp); err != nil {
		return nil, err
	}

	return &domain.GlobalMarket{
		TotalMarketCap:            resp.Data.TotalMarketCap["usd"],
		TotalVolume:               resp.Data.TotalVolume["usd"],
		MarketCapPercentage:       resp.Data.MarketCapPercentage,
		MarketCapChangePercent24h: resp.Data.MarketCapChange24hUSD,
		ActiveCryptocurrencies:    resp.Data.ActiveCryptocurrencies,
	}, nil
}
