package grades

import (
	"math"
	"strconv"

	"github.com/gradewatch/gradewatch/internal/models"
)

// PricesPerGrade caps how many prices are collected per bucket.
const PricesPerGrade = 3

// Aggregate buckets listing prices by grade and resolves a representative
// image in a single pass over the listings, in provider order.
//
// A listing whose price fails to parse contributes no price but is still a
// candidate for the image, as is a listing whose bucket is already full.
// The first listing with a non-empty image wins. The returned image is ""
// when no listing carried one.
func Aggregate(listings []models.Listing) (models.GradeReport, string) {
	report := models.GradeReport{
		Avg:    make(map[string]float64, len(models.GradeLabels)),
		Prices: make(map[string][]float64, len(models.GradeLabels)),
	}
	for _, label := range models.GradeLabels {
		report.Prices[label] = []float64{}
	}

	var imageURL string
	for _, listing := range listings {
		bucket := Classify(listing.Title)

		if price, err := strconv.ParseFloat(listing.Price, 64); err == nil {
			if len(report.Prices[bucket]) < PricesPerGrade {
				report.Prices[bucket] = append(report.Prices[bucket], price)
			}
		}

		if imageURL == "" && listing.ImageURL != "" {
			imageURL = listing.ImageURL
		}
	}

	for _, label := range models.GradeLabels {
		report.Avg[label] = mean(report.Prices[label])
	}

	return report, imageURL
}

// mean returns the arithmetic mean rounded to 2 decimal places, 0 for an
// empty list.
func mean(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	var sum float64
	for _, p := range prices {
		sum += p
	}
	return math.Round(sum/float64(len(prices))*100) / 100
}
