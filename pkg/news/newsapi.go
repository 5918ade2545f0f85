package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const newsAPIEndpoint = "https://newsapi.org/v2/everything"

var categoryQueries = map[string]string{
	"crypto":      `cryptocurrency OR bitcoin OR ethereum OR blockchain`,
	"economy":     `economy OR "federal reserve" OR inflation OR GDP`,
	"stocks":      `"stock market" OR NYSE OR NASDAQ OR "dow jones"`,
	"markets":     `"financial markets" OR trading OR "wall street"`,
	"investing":   `investing OR investment OR portfolio OR "mutual funds"`,
	"real-estate": `"real estate" OR property OR "housing market" OR mortgage`,
}

const defaultQuery = `finance OR investing OR "stock market" OR economy`

type NewsAPIClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) Fetch(ctx context.Context, category string) ([]Article, error) {
	params := url.Values{}
	params.Set("q", queryForCategory(category))
	params.Set("apiKey", c.apiKey)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", "20")
	params.Set("from", time.Now().AddDate(0, 0, -7).Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, newsAPIEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi status %d", resp.StatusCode)
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	if raw.Status != "ok" {
		return nil, fmt.Errorf("newsapi error: %s", raw.Message)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			ImageURL:    item.URLToImage,
			PublishedAt: item.PublishedAt,
			Source:      Source{Name: item.Source.Name},
		})
	}

	return articles, nil
}

func queryForCategory(category string) string {
	if q, ok := categoryQueries[category]; ok {
		return q
	}
	return defaultQuery
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source      newsAPISource `json:"source"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
}

type newsAPISource struct {
	Name string `json:"name"`
}
