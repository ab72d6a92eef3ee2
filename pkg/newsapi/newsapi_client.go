// Package newsapi wraps the NewsAPI.org top-headlines endpoint for
// general business news.
package newsapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"papertrade/internal/domain"
)

const baseURL = "https://newsapi.org/v2"

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

type headlinesResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		URLToImage  string    `json:"urlToImage"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

// GetTopBusinessHeadlines fetches up to limit US business headlines.
// Sentiment is attached later by the news service.
func (c *Client) GetTopBusinessHeadlines(limit int) ([]domain.NewsArticle, error) {
	if limit <= 0 {
		limit = 10
	}
	params := url.Values{
		"category": {"business"},
		"country":  {"us"},
		"pageSize": {strconv.Itoa(limit)},
		"apiKey":   {c.ApiKey},
	}

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/top-headlines?%s", baseURL, params.Encode()), nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi returned status %d", response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	var resp headlinesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse newsapi response: %w", err)
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("newsapi returned status %q", resp.Status)
	}

	out := make([]domain.NewsArticle, 0, len(resp.Articles))
	for _, article := range resp.Articles {
		out = append(out, domain.NewsArticle{
			ID:          article.URL,
			Headline:    article.Title,
			Summary:     article.Description,
			Source:      article.Source.Name,
			URL:         article.URL,
			Image:       article.URLToImage,
			PublishedAt: article.PublishedAt.UTC(),
		})
	}
	return out, nil
}
