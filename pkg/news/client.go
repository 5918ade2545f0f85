// Package news fetches financial headlines from external providers and
// degrades to a static article set when none of them can answer.
package news

import "context"

type Source struct {
	Name string `json:"name"`
}

// Article is the wire shape the frontend consumes; provider payloads are
// normalized into it.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Source      Source `json:"source"`
	Category    string `json:"category,omitempty"`
}

type Provider interface {
	Fetch(ctx context.Context, category string) ([]Article, error)
	Name() string
}
