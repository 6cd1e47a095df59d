package category

import (
	"math"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Matcher reports near-duplicate category names. Comparison is
// case-insensitive; similarity is the Ratcliff/Obershelp matching ratio
// (matched characters over total length), the same metric difflib's
// SequenceMatcher computes.
type Matcher struct {
	Threshold float64
}

const DefaultSimilarityThreshold = 0.70

func NewMatcher() *Matcher {
	return &Matcher{Threshold: DefaultSimilarityThreshold}
}

type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchSimilar MatchType = "similar"
)

type Match struct {
	Name       string    `json:"name"`
	Similarity float64   `json:"similarity"`
	Type       MatchType `json:"type"`
}

type MatchResult struct {
	HasSimilar        bool    `json:"has_similar"`
	SimilarCategories []Match `json:"similar_categories"`
}

// FindSimilar compares the candidate against every existing name. Exact
// case-insensitive equality is reported with similarity 1.0; otherwise
// names whose ratio exceeds the threshold are reported rounded to two
// decimal places. Pure function of its inputs.
func (m *Matcher) FindSimilar(candidate string, existing []string) MatchResult {
	result := MatchResult{SimilarCategories: []Match{}}

	folded := strings.ToLower(candidate)
	for _, name := range existing {
		if strings.ToLower(name) == folded {
			result.SimilarCategories = append(result.SimilarCategories, Match{
				Name:       name,
				Similarity: 1.0,
				Type:       MatchExact,
			})
			continue
		}

		ratio := similarity(folded, strings.ToLower(name))
		if ratio > m.Threshold {
			result.SimilarCategories = append(result.SimilarCategories, Match{
				Name:       name,
				Similarity: math.Round(ratio*100) / 100,
				Type:       MatchSimilar,
			})
		}
	}

	result.HasSimilar = len(result.SimilarCategories) > 0
	return result
}

func similarity(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}
