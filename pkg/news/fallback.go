package news

import (
	"strings"
	"time"
)

const fallbackLimit = 6

var defaultImages = map[string]string{
	"crypto":      "https://images.unsplash.com/photo-1621761191319-c6fb62004040?w=800",
	"economy":     "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800",
	"stocks":      "https://images.unsplash.com/photo-1590283603385-17ffb3a7f29f?w=800",
	"markets":     "https://images.unsplash.com/photo-1535320903710-d993d3d77d29?w=800",
	"investing":   "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?w=800",
	"real-estate": "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=800",
}

func defaultImage(category string) string {
	if img, ok := defaultImages[category]; ok {
		return img
	}
	return defaultImages["markets"]
}

var fallbackSet = []Article{
	{
		Title:       "Bitcoin Surges Past $50,000 as Institutional Adoption Grows",
		Description: "Bitcoin has reached a new milestone as major financial institutions continue to show interest in cryptocurrency investments.",
		URL:         "#",
		ImageURL:    "https://images.unsplash.com/photo-1621761191319-c6fb62004040?w=800",
		Source:      Source{Name: "Financial Times"},
		Category:    "Crypto",
	},
	{
		Title:       "Federal Reserve Signals Potential Rate Cuts in 2024",
		Description: "The Federal Reserve has indicated possible interest rate reductions as inflation continues to moderate.",
		URL:         "#",
		ImageURL:    "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800",
		Source:      Source{Name: "Bloomberg"},
		Category:    "Economy",
	},
	{
		Title:       "Tech Stocks Rally on Strong Earnings Reports",
		Description: "Major technology companies have reported better-than-expected earnings, driving market optimism.",
		URL:         "#",
		ImageURL:    "https://images.unsplash.com/photo-1590283603385-17ffb3a7f29f?w=800",
		Source:      Source{Name: "CNBC"},
		Category:    "Stocks",
	},
	{
		Title:       "Global Markets React to Economic Policy Changes",
		Description: "International markets are responding to new economic policies and trade agreements.",
		URL:         "#",
		ImageURL:    "https://images.unsplash.com/photo-1535320903710-d993d3d77d29?w=800",
		Source:      Source{Name: "Reuters"},
		Category:    "Markets",
	},
	{
		Title:       "Sustainable Investing Gains Momentum",
		Description: "ESG-focused investment strategies are becoming increasingly popular among institutional investors.",
		URL:         "#",
		ImageURL:    "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?w=800",
		Source:      Source{Name: "Wall Street Journal"},
		Category:    "Investing",
	},
	{
		Title:       "AI Revolution Transforms Financial Services",
		Description: "Artificial intelligence is reshaping how financial institutions operate and serve customers.",
		URL:         "#",
		ImageURL:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800",
		Source:      Source{Name: "Financial Times"},
		Category:    "Markets",
	},
}

// FallbackArticles returns the static article set used when every provider
// is unavailable. Filtered by category when any entries match, otherwise
// truncated to the fixed count.
func FallbackArticles(category string) []Article {
	now := time.Now().Format(time.RFC3339)

	var filtered []Article
	if category != "" && category != "all" {
		for _, a := range fallbackSet {
			if strings.EqualFold(a.Category, category) {
				filtered = append(filtered, a)
			}
		}
	}

	if len(filtered) == 0 {
		filtered = append(filtered, fallbackSet[:fallbackLimit]...)
	}

	out := make([]Article, len(filtered))
	copy(out, filtered)
	for i := range out {
		out[i].PublishedAt = now
	}
	return out
}
