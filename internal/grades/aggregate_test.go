package grades

import (
	"testing"

	"github.com/gradewatch/gradewatch/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAggregate_BucketsAndAverages(t *testing.T) {
	listings := []models.Listing{
		{Title: "Charizard PSA 10", Price: "100.00"},
		{Title: "Charizard PSA 9", Price: "50.50"},
		{Title: "Charizard holo", Price: "10.00"},
		{Title: "Charizard BGS 9.5", Price: "80.00"},
	}

	report, image := Aggregate(listings)

	assert.Equal(t, []float64{100.00, 50.50}, report.Prices[models.GradePSA])
	assert.Equal(t, []float64{10.00}, report.Prices[models.GradeRaw])
	assert.Equal(t, []float64{80.00}, report.Prices[models.GradeBGS])
	assert.Empty(t, report.Prices[models.GradeCGC])

	assert.Equal(t, 75.25, report.Avg[models.GradePSA])
	assert.Equal(t, 10.00, report.Avg[models.GradeRaw])
	assert.Equal(t, 80.00, report.Avg[models.GradeBGS])
	assert.Equal(t, 0.0, report.Avg[models.GradeCGC])
	assert.Empty(t, image)
}

func TestAggregate_PerBucketCap(t *testing.T) {
	var listings []models.Listing
	for i := 0; i < 6; i++ {
		listings = append(listings, models.Listing{
			Title: "Pikachu PSA 10",
			Price: "10.00",
		})
	}

	report, _ := Aggregate(listings)

	assert.Len(t, report.Prices[models.GradePSA], PricesPerGrade)
	assert.Equal(t, 10.00, report.Avg[models.GradePSA])
}

func TestAggregate_UnparsablePriceStillYieldsImage(t *testing.T) {
	listings := []models.Listing{
		{Title: "Mewtwo PSA 8", Price: "not-a-number", ImageURL: "https://img.example/mewtwo.jpg"},
		{Title: "Mewtwo PSA 8", Price: "42.00"},
	}

	report, image := Aggregate(listings)

	assert.Equal(t, []float64{42.00}, report.Prices[models.GradePSA])
	assert.Equal(t, "https://img.example/mewtwo.jpg", image)
}

func TestAggregate_FirstImageWins(t *testing.T) {
	listings := []models.Listing{
		{Title: "Eevee", Price: "5.00"},
		{Title: "Eevee", Price: "6.00", ImageURL: "https://img.example/first.jpg"},
		{Title: "Eevee", Price: "7.00", ImageURL: "https://img.example/second.jpg"},
	}

	_, image := Aggregate(listings)

	assert.Equal(t, "https://img.example/first.jpg", image)
}

func TestAggregate_SaturatedBucketStillYieldsImage(t *testing.T) {
	listings := []models.Listing{
		{Title: "Snorlax PSA 9", Price: "1.00"},
		{Title: "Snorlax PSA 9", Price: "2.00"},
		{Title: "Snorlax PSA 9", Price: "3.00"},
		{Title: "Snorlax PSA 9", Price: "4.00", ImageURL: "https://img.example/snorlax.jpg"},
	}

	report, image := Aggregate(listings)

	assert.Equal(t, []float64{1.00, 2.00, 3.00}, report.Prices[models.GradePSA])
	assert.Equal(t, 2.00, report.Avg[models.GradePSA])
	assert.Equal(t, "https://img.example/snorlax.jpg", image)
}

func TestAggregate_EmptyListings(t *testing.T) {
	report, image := Aggregate(nil)

	for _, label := range models.GradeLabels {
		assert.Empty(t, report.Prices[label])
		assert.Equal(t, 0.0, report.Avg[label])
	}
	assert.Empty(t, image)
}

func TestAggregate_RoundsToTwoDecimals(t *testing.T) {
	listings := []models.Listing{
		{Title: "Gengar", Price: "10.00"},
		{Title: "Gengar", Price: "10.01"},
		{Title: "Gengar", Price: "10.01"},
	}

	report, _ := Aggregate(listings)

	assert.Equal(t, 10.01, report.Avg[models.GradeRaw])
}
