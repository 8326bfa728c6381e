package geo

import (
	"strings"

	"travelmaker/models"
)

// Infer returns the province of the longest gazetteer key contained in text
// after whitespace runs are collapsed and the ends trimmed. ok is false when
// nothing matches; callers treat that as "no province filter applies".
func (g *Gazetteer) Infer(text string) (models.Province, bool) {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return "", false
	}
	for _, e := range g.ordered {
		if strings.Contains(normalized, e.key) {
			return e.province, true
		}
	}
	return "", false
}

// InferProvince runs Infer against the built-in gazetteer.
func InferProvince(text string) (models.Province, bool) {
	return defaultGazetteer.Infer(text)
}

// NormalizeProvince derives a course's province: a valid explicit value wins,
// then inference from region, category and the space-joined hashtags, in that
// order. The empty Province means undetermined.
func NormalizeProvince(c models.Course) models.Province {
	if c.Province.Valid() {
		return c.Province
	}
	if p, ok := InferProvince(c.Region); ok {
		return p
	}
	if p, ok := InferProvince(c.Category); ok {
		return p
	}
	if len(c.Hashtags) > 0 {
		if p, ok := InferProvince(strings.Join(c.Hashtags, " ")); ok {
			return p
		}
	}
	return ""
}

// WithProvince returns a copy of c with Province set by NormalizeProvince.
func WithProvince(c models.Course) models.Course {
	c.Province = NormalizeProvince(c)
	return c
}

// FilterByProvince keeps courses whose province equals p. An empty p keeps
// everything.
func FilterByProvince(courses []models.Course, p models.Province) []models.Course {
	if p == "" {
		return courses
	}
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if c.Province == p {
			out = append(out, c)
		}
	}
	return out
}

// FilterByProvinceAndCity narrows by province, then keeps courses whose
// region contains city. An empty city or the "전체" sentinel skips the city
// step.
func FilterByProvinceAndCity(courses []models.Course, p models.Province, city string) []models.Course {
	filtered := FilterByProvince(courses, p)
	if city == "" || city == models.AllSentinel {
		return filtered
	}
	out := make([]models.Course, 0, len(filtered))
	for _, c := range filtered {
		if strings.Contains(c.Region, city) {
			out = append(out, c)
		}
	}
	return out
}

// CountByProvince tallies courses per province. Every province is present in
// the result, courses without a province are not counted.
func CountByProvince(courses []models.Course) map[models.Province]int {
	counts := make(map[models.Province]int, len(models.Provinces))
	for _, p := range models.Provinces {
		counts[p] = 0
	}
	for _, c := range courses {
		if c.Province.Valid() {
			counts[c.Province]++
		}
	}
	return counts
}
