package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestQueryForCategory(t *testing.T) {
	assert.Equal(t, true, strings.Contains(queryForCategory("crypto"), "bitcoin"))
	assert.Equal(t, true, strings.Contains(queryForCategory("real-estate"), "housing market"))
	assert.Equal(t, defaultQuery, queryForCategory("unknown"))
	assert.Equal(t, defaultQuery, queryForCategory(""))
}

func TestFetch(t *testing.T) {
	payload := map[string]interface{}{
		"status": "ok",
		"articles": []map[string]interface{}{
			{
				"source":      map[string]interface{}{"name": "Reuters"},
				"title":       "Fed Holds Rates Steady",
				"description": "The Federal Reserve kept interest rates unchanged.",
				"url":         "https://example.com/fed-rates",
				"urlToImage":  "https://example.com/fed.jpg",
				"publishedAt": "2026-02-26T12:00:00Z",
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &NewsAPIClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Fetch(context.Background(), "economy")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Fed Holds Rates Steady", a.Title)
	assert.Equal(t, "The Federal Reserve kept interest rates unchanged.", a.Description)
	assert.Equal(t, "https://example.com/fed-rates", a.URL)
	assert.Equal(t, "https://example.com/fed.jpg", a.ImageURL)
	assert.Equal(t, "2026-02-26T12:00:00Z", a.PublishedAt)
	assert.Equal(t, "Reuters", a.Source.Name)
}

func TestFetch_ProviderReportedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"message": "apiKeyInvalid",
		})
	}))
	defer srv.Close()

	client := &NewsAPIClient{
		apiKey:     "bad-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.Fetch(context.Background(), "stocks")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, strings.Contains(err.Error(), "apiKeyInvalid"))
}

func TestFetch_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := &NewsAPIClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.Fetch(context.Background(), "markets")

	assert.NotEqual(t, nil, err)
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
