package news

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) Fetch(ctx context.Context, category string) ([]Article, error) {
	// Finnhub market news only knows a handful of buckets; everything that
	// is not crypto maps to general market news.
	fhCategory := "general"
	if category == "crypto" {
		fhCategory = "crypto"
	}

	res, _, err := c.client.MarketNews(ctx).Category(fhCategory).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub fetch: %w", err)
	}

	var articles []Article
	for _, item := range res {
		a := Article{Source: Source{Name: c.Name()}}

		if item.Headline != nil {
			a.Title = *item.Headline
		}

		if item.Summary != nil {
			a.Description = *item.Summary
		}

		if item.Url != nil {
			a.URL = *item.Url
		}

		if item.Image != nil {
			a.ImageURL = *item.Image
		}

		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0).UTC().Format(time.RFC3339)
		}

		if item.Source != nil && *item.Source != "" {
			a.Source.Name = *item.Source
		}

		articles = append(articles, a)
	}

	return articles, nil
}
