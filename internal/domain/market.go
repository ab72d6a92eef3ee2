package domain

import "time"

// Quote is the normalized real-time quote shape shared by every provider.
// Quotes are ephemeral: each refresh replaces the previous one wholesale.
type Quote struct {
	Symbol        string    `json:"symbol"`
	CurrentPrice  float64   `json:"currentPrice"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	High          float64   `json:"high"`
	Low           float64   `json:"low"`
	Open          float64   `json:"open"`
	PreviousClose float64   `json:"previousClose"`
	Timestamp     time.Time `json:"timestamp"`
}

type Interval string

const (
	Interval_Daily   Interval = "daily"
	Interval_Weekly  Interval = "weekly"
	Interval_Monthly Interval = "monthly"
)

// Candle is one bar of a historical series, oldest-first once assembled.
type Candle struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

type SymbolMatch struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Region string `json:"region"`
}

// CompanyProfile is a flat record of nullable fields. Absent fields
// render as "N/A" downstream, never as errors.
type CompanyProfile struct {
	Symbol            string   `json:"symbol"`
	Name              *string  `json:"name"`
	Country           *string  `json:"country"`
	Currency          *string  `json:"currency"`
	Exchange          *string  `json:"exchange"`
	Industry          *string  `json:"industry"`
	Logo              *string  `json:"logo"`
	MarketCap         *float64 `json:"marketCap"`
	SharesOutstanding *float64 `json:"sharesOutstanding"`
	WebURL            *string  `json:"weburl"`
}

type Fundamentals struct {
	PERatio       *float64 `json:"peRatio"`
	EPS           *float64 `json:"eps"`
	DividendYield *float64 `json:"dividendYield"`
	Beta          *float64 `json:"beta"`
	Week52High    *float64 `json:"week52High"`
	Week52Low     *float64 `json:"week52Low"`
	MarketCap     *float64 `json:"marketCap"`
}

type NewsArticle struct {
	ID          string    `json:"id"`
	Headline    string    `json:"headline"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	Image       string    `json:"image"`
	PublishedAt time.Time `json:"publishedAt"`
	Sentiment   Sentiment `json:"sentiment"`
}

// Sentiment is the keyword-scored classification attached to news text.
type Sentiment struct {
	Label      string `json:"sentiment"`
	Score      int    `json:"score"`
	Confidence int    `json:"confidence"`
}

type CryptoPrice struct {
	ID                    string  `json:"id"`
	Symbol                string  `json:"symbol"`
	Name                  string  `json:"name"`
	CurrentPrice          float64 `json:"currentPrice"`
	MarketCap             float64 `json:"marketCap"`
	MarketCapRank         int     `json:"marketCapRank"`
	PriceChange24h        float64 `json:"priceChange24h"`
	PriceChangePercent24h float64 `json:"priceChangePercent24h"`
	High24h               float64 `json:"high24h"`
	Low24h                float64 `json:"low24h"`
	Volume24h             float64 `json:"volume24h"`
}

type GlobalMarket struct {
	TotalMarketCap            float64            `json:"totalMarketCap"`
	TotalVolume               float64            `json:"totalVolume"`
	MarketCapPercentage       map[string]float64 `json:"marketCapPercentage"`
	MarketCapChangePercent24h float64            `json:"marketCapChangePercent24h"`
	ActiveCryptocurrencies    int                `json:"activeCryptocurrencies"`
}
