package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const maxHeadlines = 5

// Headline is one candidate topic from the news API.
type Headline struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

type headlinesResponse struct {
	Status   string     `json:"status"`
	Articles []Headline `json:"articles"`
}

// FetchTechNews returns up to five technology headlines. It is a read-only
// call and is not consulted by the page-generation pipeline; the standalone
// fetch-news command exposes it.
func (a *Automator) FetchTechNews(ctx context.Context) ([]Headline, error) {
	if a.cfg.NewsAPIKey == "" {
		return nil, fmt.Errorf("missing NEWS_API_KEY environment variable")
	}

	endpoint := fmt.Sprintf("%s/top-headlines?category=technology&apiKey=%s",
		a.cfg.NewsBaseURL, url.QueryEscape(a.cfg.NewsAPIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read headlines response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news api error: status %d body %s", resp.StatusCode, truncate(string(body), 512))
	}

	var hr headlinesResponse
	if err := json.Unmarshal(body, &hr); err != nil {
		return nil, fmt.Errorf("decode headlines response: %w", err)
	}

	articles := hr.Articles
	if len(articles) > maxHeadlines {
		articles = articles[:maxHeadlines]
	}
	return articles, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
