package grades

import (
	"regexp"
	"strings"

	"github.com/gradewatch/gradewatch/internal/models"
)

// gradePattern pairs a grade label with the pattern that detects it.
// Declaration order is the tie-break when several patterns match.
type gradePattern struct {
	label   string
	pattern *regexp.Regexp
}

// Patterns match the grading company abbreviation followed by an optional
// separator and a one-or-two-digit grade, optionally decimal (e.g. "PSA 10",
// "bgs-9.5", "CGC8"). The numeric grade itself is not retained.
var gradePatterns = []gradePattern{
	{models.GradePSA, regexp.MustCompile(`\bpsa[\s-]?\d{1,2}(\.\d+)?\b`)},
	{models.GradeBGS, regexp.MustCompile(`\bbgs[\s-]?\d{1,2}(\.\d+)?\b`)},
	{models.GradeCGC, regexp.MustCompile(`\bcgc[\s-]?\d{1,2}(\.\d+)?\b`)},
}

// Classify maps a listing title to a grade bucket label.
// Titles with no grading token, including empty titles, are raw.
func Classify(title string) string {
	if title == "" {
		return models.GradeRaw
	}
	t := strings.ToLower(title)
	for _, gp := range gradePatterns {
		if gp.pattern.MatchString(t) {
			return gp.label
		}
	}
	return models.GradeRaw
}
