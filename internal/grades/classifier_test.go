package grades

import (
	"testing"

	"github.com/gradewatch/gradewatch/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "psa with space", title: "Charizard Base Set PSA 10 Gem Mint", want: models.GradePSA},
		{name: "psa with dash", title: "pikachu promo psa-9", want: models.GradePSA},
		{name: "psa no separator", title: "Blastoise PSA8 holo", want: models.GradePSA},
		{name: "bgs decimal", title: "Lugia Neo Genesis BGS 9.5", want: models.GradeBGS},
		{name: "cgc with dash", title: "Umbreon CGC-8", want: models.GradeCGC},
		{name: "no grading token", title: "Charizard Base Set holo rare", want: models.GradeRaw},
		{name: "empty title", title: "", want: models.GradeRaw},
		{name: "company without grade number", title: "PSA graded slab lot", want: models.GradeRaw},
		{name: "mixed case", title: "MEWTWO Psa 7 vintage", want: models.GradePSA},
		{name: "psa wins over later bgs", title: "PSA 10 crossover from BGS 9", want: models.GradePSA},
		{name: "three digit number not a grade", title: "card #psa 100", want: models.GradeRaw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.title))
		})
	}
}
