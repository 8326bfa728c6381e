package search

import (
	"slices"
	"strings"
	"time"

	"travelmaker/models"
)

// SortOrder names one of the listing sort orders.
type SortOrder string

const (
	SortLatest  SortOrder = "latest"
	SortPopular SortOrder = "popular"
)

// UndatedSentinel is the creation date assumed for records with a missing or
// unparsable createdAt, so they sort as oldest among realistic data.
var UndatedSentinel = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
}

// CreatedAt parses a course's creation timestamp, falling back to
// UndatedSentinel.
func CreatedAt(c models.Course) time.Time {
	s := strings.TrimSpace(c.CreatedAt)
	if s == "" {
		return UndatedSentinel
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return UndatedSentinel
}

// Sort returns a sorted copy. Ties keep their input order. An empty or
// unknown order leaves the input order untouched.
func Sort(courses []models.Course, order SortOrder) []models.Course {
	out := slices.Clone(courses)
	switch order {
	case SortLatest:
		slices.SortStableFunc(out, func(a, b models.Course) int {
			return CreatedAt(b).Compare(CreatedAt(a))
		})
	case SortPopular:
		slices.SortStableFunc(out, func(a, b models.Course) int {
			return b.Popularity() - a.Popularity()
		})
	}
	return out
}
