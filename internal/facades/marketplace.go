package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gradewatch/gradewatch/internal/logger"
	"github.com/gradewatch/gradewatch/internal/models"
)

// BrowseSearchURL is the marketplace item-search endpoint.
const BrowseSearchURL = "https://api.ebay.com/buy/browse/v1/item_summary/search"

// SearchLimit is the fixed number of listings requested per search.
const SearchLimit = 50

// browseResponse mirrors the marketplace search payload.
type browseResponse struct {
	ItemSummaries []itemSummary `json:"itemSummaries"`
}

type itemSummary struct {
	Title string `json:"title"`
	Price struct {
		Value string `json:"value"`
	} `json:"price"`
	Image struct {
		ImageURL string `json:"imageUrl"`
	} `json:"image"`
	ThumbnailImages []struct {
		ImageURL string `json:"imageUrl"`
	} `json:"thumbnailImages"`
}

// MarketplaceFacade queries the marketplace item-search API.
// Any upstream failure degrades to an empty listing set; errors are logged
// for operators and never surfaced to callers.
type MarketplaceFacade struct {
	client  *http.Client
	baseURL string
	token   string // OAuth bearer token for the marketplace API
}

// NewMarketplaceFacade creates a facade over the marketplace search endpoint.
func NewMarketplaceFacade(client *http.Client, baseURL, token string) *MarketplaceFacade {
	return &MarketplaceFacade{client: client, baseURL: baseURL, token: token}
}

// marketplaceID maps a region code to a marketplace identifier.
func marketplaceID(region string) string {
	if region == models.RegionAU {
		return "EBAY_AU"
	}
	return "EBAY_US"
}

// Search returns listing summaries for a keyword within a regional
// marketplace, in provider order. Returns an empty slice on any failure.
func (f *MarketplaceFacade) Search(ctx context.Context, keyword, region string) []models.Listing {
	if f.token == "" {
		logger.Log.Warnw("marketplace token not configured, skipping search", "keyword", keyword)
		return nil
	}

	params := url.Values{}
	params.Set("q", keyword)
	params.Set("limit", fmt.Sprintf("%d", SearchLimit))
	params.Set("fieldgroups", "ASPECT_REFINEMENT")
	params.Set("filter", fmt.Sprintf("marketplaceIds:(%s)", marketplaceID(region)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		logger.Log.Errorw("failed to build marketplace request", "keyword", keyword, "error", err)
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("marketplace request failed", "keyword", keyword, "region", region, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("marketplace returned non-success status", "keyword", keyword, "status", resp.StatusCode)
		return nil
	}

	var body browseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode marketplace response", "keyword", keyword, "error", err)
		return nil
	}

	listings := make([]models.Listing, 0, len(body.ItemSummaries))
	for _, item := range body.ItemSummaries {
		image := item.Image.ImageURL
		if image == "" && len(item.ThumbnailImages) > 0 {
			image = item.ThumbnailImages[0].ImageURL
		}
		listings = append(listings, models.Listing{
			Title:    item.Title,
			Price:    item.Price.Value,
			ImageURL: image,
		})
	}

	return listings
}
