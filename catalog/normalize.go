// Package catalog loads the course list, classifies raw records into the
// three category partitions and backfills empty partitions from seed data.
package catalog

import (
	"regexp"
	"strings"

	"travelmaker/geo"
	"travelmaker/models"
)

// Keyword rules. Specialty is always tested before merchandise; the first
// rule whose category or description pattern matches decides the type.
var (
	specialtyCategory    = regexp.MustCompile(`(?i)특산|local.*product|specialty|지역.*상품`)
	specialtyDescription = regexp.MustCompile(`(?i)특산|지역상품`)
	goodsCategory        = regexp.MustCompile(`(?i)굿즈|goods|merch|merchandise|기념품`)
	goodsDescription     = regexp.MustCompile(`(?i)굿즈|기념품`)
)

// Classify infers a category type from the category label and description.
func Classify(category, description string) models.CategoryType {
	cat := strings.ToLower(strings.TrimSpace(category))
	switch {
	case specialtyCategory.MatchString(cat) || specialtyDescription.MatchString(description):
		return models.CategorySpecialty
	case goodsCategory.MatchString(cat) || goodsDescription.MatchString(description):
		return models.CategoryGoods
	default:
		return models.CategoryTravel
	}
}

// NormalizeCourse resolves the category type of a raw record. An explicit
// categoryType is kept verbatim; otherwise Classify decides.
func NormalizeCourse(raw models.Course) models.Course {
	if raw.CategoryType == "" {
		raw.CategoryType = Classify(raw.Category, raw.Description)
	}
	return raw
}

// NormalizeCourses normalizes every record and annotates its province.
func NormalizeCourses(raw []models.Course) []models.Course {
	out := make([]models.Course, 0, len(raw))
	for _, c := range raw {
		out = append(out, geo.WithProvince(NormalizeCourse(c)))
	}
	return out
}
