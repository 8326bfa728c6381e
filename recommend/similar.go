// Package recommend ranks catalog items similar to a reference course with a
// fixed weighted-sum score.
package recommend

import (
	"slices"

	"travelmaker/metrics"
	"travelmaker/models"
)

// DefaultLimit is the number of similar items shown on a detail page.
const DefaultLimit = 3

// Score weights.
const (
	WeightRegion       = 50
	WeightCategory     = 30
	WeightHashtag      = 5
	WeightCategoryType = 10
)

// Scored pairs a candidate with its similarity score.
type Scored struct {
	Course models.Course `json:"course"`
	Score  int           `json:"score"`
}

// Score rates candidate against ref. Each hashtag shared with ref counts once,
// however often either side repeats it.
func Score(ref, candidate models.Course) int {
	score := 0
	if candidate.Region == ref.Region {
		score += WeightRegion
	}
	if candidate.Category == ref.Category {
		score += WeightCategory
	}
	if candidate.CategoryType == ref.CategoryType {
		score += WeightCategoryType
	}

	tags := make(map[string]bool, len(candidate.Hashtags))
	for _, tag := range candidate.Hashtags {
		tags[tag] = true
	}
	seen := make(map[string]bool, len(ref.Hashtags))
	for _, tag := range ref.Hashtags {
		if tags[tag] && !seen[tag] {
			score += WeightHashtag
			seen[tag] = true
		}
	}
	return score
}

// Rank scores every course except ref itself, drops zero scores and orders
// the rest by descending score. Equal scores keep catalog order.
func Rank(ref models.Course, all []models.Course) []Scored {
	ranked := make([]Scored, 0, len(all))
	for _, c := range all {
		if c.ID == ref.ID {
			continue
		}
		if s := Score(ref, c); s > 0 {
			ranked = append(ranked, Scored{Course: c, Score: s})
		}
	}
	slices.SortStableFunc(ranked, func(a, b Scored) int {
		return b.Score - a.Score
	})
	return ranked
}

// Similar returns at most limit courses most similar to ref.
func Similar(ref models.Course, all []models.Course, limit int) []models.Course {
	out := []models.Course{}
	if limit <= 0 {
		return out
	}
	for _, s := range Rank(ref, all) {
		if len(out) == limit {
			break
		}
		out = append(out, s.Course)
	}
	metrics.Recommendations.Observe(float64(len(out)))
	return out
}

// Heading is the title of the similar-items block for ref's partition.
func Heading(ct models.CategoryType) string {
	switch ct {
	case models.CategorySpecialty:
		return "유사 특산품 추천"
	case models.CategoryGoods:
		return "유사 굿즈 추천"
	default:
		return "유사코스 추천"
	}
}
