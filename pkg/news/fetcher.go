package news

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

const maxArticles = 20

// Fetcher tries each configured provider in order and falls back to the
// static set. It never returns an error; a degraded payload is always
// produced.
type Fetcher struct {
	providers []Provider
}

func NewFetcher(providers ...Provider) *Fetcher {
	return &Fetcher{providers: providers}
}

func (f *Fetcher) Latest(ctx context.Context, category string) []Article {
	category = strings.ToLower(strings.TrimSpace(category))

	for _, p := range f.providers {
		articles, err := p.Fetch(ctx, category)
		if err != nil {
			slog.Error("news provider failed", "provider", p.Name(), "error", err)
			continue
		}

		cleaned := sanitize(articles, category)
		if len(cleaned) > 0 {
			return cleaned
		}

		slog.Warn("news provider returned no usable articles", "provider", p.Name())
	}

	return FallbackArticles(category)
}

// sanitize drops removed or untitled entries, backfills missing fields with
// category defaults and caps the list at the provider page size.
func sanitize(articles []Article, category string) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.Title == "" || a.Title == "[Removed]" {
			continue
		}

		if a.Description == "" {
			a.Description = "No description available"
		}
		if a.ImageURL == "" {
			a.ImageURL = defaultImage(category)
		}
		if a.URL == "" {
			a.URL = "#"
		}
		if a.PublishedAt == "" {
			a.PublishedAt = time.Now().Format(time.RFC3339)
		}
		if a.Source.Name == "" {
			a.Source.Name = "Unknown"
		}

		out = append(out, a)
		if len(out) == maxArticles {
			break
		}
	}
	return out
}
