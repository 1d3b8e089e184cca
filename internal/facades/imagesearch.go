package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gradewatch/gradewatch/internal/logger"
)

// Image search provider endpoints.
const (
	GoogleSearchURL     = "https://www.googleapis.com/customsearch/v1"
	DuckDuckGoSearchURL = "https://duckduckgo.com/i.js"
)

// ImageSearchFacade resolves a fallback image for a card name when the
// marketplace supplied none. Providers are tried in fixed order: Google
// custom search first, DuckDuckGo second. Both failing yields "".
type ImageSearchFacade struct {
	client    *http.Client
	googleURL string
	duckURL   string
	apiKey    string // Google API key; Google is skipped when unset
	cx        string // Google custom search engine ID
}

// NewImageSearchFacade creates a facade over both image-search providers.
func NewImageSearchFacade(client *http.Client, googleURL, duckURL, apiKey, cx string) *ImageSearchFacade {
	return &ImageSearchFacade{
		client:    client,
		googleURL: googleURL,
		duckURL:   duckURL,
		apiKey:    apiKey,
		cx:        cx,
	}
}

// Search returns the first image URL either provider yields, or "".
func (f *ImageSearchFacade) Search(ctx context.Context, cardName string) string {
	if img := f.googleImage(ctx, cardName); img != "" {
		return img
	}
	return f.duckDuckGoImage(ctx, cardName)
}

func (f *ImageSearchFacade) googleImage(ctx context.Context, cardName string) string {
	if f.apiKey == "" || f.cx == "" {
		return ""
	}

	params := url.Values{}
	params.Set("q", cardName)
	params.Set("cx", f.cx)
	params.Set("searchType", "image")
	params.Set("key", f.apiKey)
	params.Set("num", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.googleURL+"?"+params.Encode(), nil)
	if err != nil {
		logger.Log.Errorw("failed to build google image request", "card", cardName, "error", err)
		return ""
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("google image search failed", "card", cardName, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("google image search returned non-success status", "card", cardName, "status", resp.StatusCode)
		return ""
	}

	var body struct {
		Items []struct {
			Link string `json:"link"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode google image response", "card", cardName, "error", err)
		return ""
	}
	if len(body.Items) == 0 {
		return ""
	}
	return body.Items[0].Link
}

func (f *ImageSearchFacade) duckDuckGoImage(ctx context.Context, cardName string) string {
	params := url.Values{}
	params.Set("q", cardName)
	params.Set("iax", "images")
	params.Set("ia", "images")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.duckURL+"?"+params.Encode(), nil)
	if err != nil {
		logger.Log.Errorw("failed to build duckduckgo image request", "card", cardName, "error", err)
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("duckduckgo image search failed", "card", cardName, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("duckduckgo image search returned non-success status", "card", cardName, "status", resp.StatusCode)
		return ""
	}

	var body struct {
		Results []struct {
			Image string `json:"image"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode duckduckgo image response", "card", cardName, "error", err)
		return ""
	}
	if len(body.Results) == 0 {
		return ""
	}
	return body.Results[0].Image
}
