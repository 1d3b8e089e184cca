package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported marketplace regions
const (
	RegionAU = "AU"
	RegionUS = "US"
)

// Grade bucket labels derived from listing titles
const (
	GradeRaw = "raw"
	GradePSA = "PSA"
	GradeCGC = "CGC"
	GradeBGS = "BGS"
)

// GradeLabels lists all buckets in declaration order.
var GradeLabels = []string{GradeRaw, GradePSA, GradeCGC, GradeBGS}

// Listing is a single marketplace listing summary as returned by the
// marketplace search API, in provider order.
type Listing struct {
	Title    string `json:"title"`
	Price    string `json:"price"`     // Raw amount string, may be empty or malformed
	ImageURL string `json:"image_url"` // Primary image, else first thumbnail, else empty
}

// GradeReport holds the aggregated prices per grade bucket.
type GradeReport struct {
	Avg    map[string]float64   `json:"avg"`    // Mean per bucket, rounded to 2 decimals, 0 if empty
	Prices map[string][]float64 `json:"prices"` // Up to 3 prices per bucket in encounter order
}

// SavedSearch is a saved search annotated for display, with staleness
// derived at read time.
type SavedSearch struct {
	CardName    string      `json:"card_name"`
	Region      string      `json:"region"`
	LastResult  GradeReport `json:"last_result"`
	LastImage   string      `json:"last_image"`
	LastUpdated time.Time   `json:"last_updated"`
	Confirmed   bool        `json:"confirmed"`
	Expired     bool        `json:"expired"`
}

// SearchEvent is the snapshot published to the price feed after a search or
// refresh completes.
type SearchEvent struct {
	EventID   string             `json:"event_id"`
	Timestamp int64              `json:"timestamp"`
	UserID    string             `json:"user_id"`
	CardName  string             `json:"card_name"`
	Region    string             `json:"region"`
	Operation string             `json:"operation"` // search or refresh
	Avg       map[string]float64 `json:"avg"`
}

// SearchDB represents a saved search row in the database, one per
// (user_id, card_name) pair.
type SearchDB struct {
	SearchID   uuid.UUID `json:"search_id" db:"search_id"`     // Primary key
	UserID     uuid.UUID `json:"user_id" db:"user_id"`         // Owning user
	CardName   string    `json:"card_name" db:"card_name"`     // Exact-match key, case-sensitive
	Region     string    `json:"region" db:"region"`           // AU or US
	LastResult string    `json:"last_result" db:"last_result"` // Serialized GradeReport
	LastImage  string    `json:"last_image" db:"last_image"`   // Last resolved image URL
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`   // Monotonically non-decreasing
	Confirmed  bool      `json:"confirmed" db:"confirmed"`     // True only after an explicit confirm
}
