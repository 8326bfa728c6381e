// Package search is the listing pipeline: independent predicates ANDed over
// the in-memory catalog, followed by a single sort order. Every function is
// pure; the same inputs always produce the same output.
package search

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"travelmaker/models"
)

// Predicate keeps a course when it returns true. A nil Predicate is inactive.
type Predicate func(models.Course) bool

// Apply returns the courses satisfying every non-nil predicate, in input order.
func Apply(courses []models.Course, preds ...Predicate) []models.Course {
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if matchAll(c, preds) {
			out = append(out, c)
		}
	}
	return out
}

func matchAll(c models.Course, preds []Predicate) bool {
	for _, p := range preds {
		if p != nil && !p(c) {
			return false
		}
	}
	return true
}

func isAll(v string) bool {
	return v == "" || v == models.AllSentinel
}

// Tab is the top-level partition selector on the explore listing.
type Tab string

const (
	TabTravel    Tab = "travel"
	TabSpecialty Tab = "specialty"
	TabGoods     Tab = "goods"
)

// CategoryType maps a tab to its partition; unknown tabs map to travel.
func (t Tab) CategoryType() models.CategoryType {
	switch t {
	case TabSpecialty:
		return models.CategorySpecialty
	case TabGoods:
		return models.CategoryGoods
	default:
		return models.CategoryTravel
	}
}

// ByCategoryType keeps one partition. Records without a recognized type count
// as travel.
func ByCategoryType(ct models.CategoryType) Predicate {
	return func(c models.Course) bool {
		return c.CategoryType.Resolved() == ct
	}
}

// CityMatch selects how a city value is compared with a course region.
type CityMatch int

const (
	// CityExact requires region == city (filter panel).
	CityExact CityMatch = iota
	// CityContains requires region to contain city (province navigation).
	CityContains
)

// ByRegionCity applies the filter panel's location pair. It is only active
// when both province and city are set to something other than "전체"; the
// province value itself is not compared against the course.
func ByRegionCity(province, city string, match CityMatch) Predicate {
	if isAll(province) || isAll(city) {
		return nil
	}
	return func(c models.Course) bool {
		if match == CityContains {
			return strings.Contains(c.Region, city)
		}
		return c.Region == city
	}
}

// ByCategory requires an exact category label.
func ByCategory(category string) Predicate {
	if isAll(category) {
		return nil
	}
	return func(c models.Course) bool {
		return c.Category == category
	}
}

// Durations maps the duration picker labels to day counts.
var Durations = map[string]int{
	"1일":     1,
	"2박 3일": 2,
	"3박 4일": 3,
	"4박 5일": 4,
}

// ByDuration requires course.Days to equal the mapped day count. An unknown
// label matches nothing.
func ByDuration(label string) Predicate {
	if isAll(label) {
		return nil
	}
	days, ok := Durations[label]
	return func(c models.Course) bool {
		return ok && c.Days == days
	}
}

// ByPriceRange keeps courses whose explicit total lies in [min, max]. Courses
// with no total, or a zero total, pass unconditionally.
func ByPriceRange(min, max int) Predicate {
	return func(c models.Course) bool {
		if c.Price.Total == nil || *c.Price.Total == 0 {
			return true
		}
		total := *c.Price.Total
		return total >= min && total <= max
	}
}

// ByPetFriendly requires petFriendly when on; off is inactive.
func ByPetFriendly(on bool) Predicate {
	if !on {
		return nil
	}
	return func(c models.Course) bool {
		return c.PetFriendly
	}
}

// ParseDifficultyLabel extracts the leading digit of a "3 (보통)" label.
func ParseDifficultyLabel(label string) (int, bool) {
	r, _ := utf8.DecodeRuneInString(label)
	if r < '0' || r > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(string(r))
	return n, err == nil
}

// ByDifficulty requires course.Difficulty to equal the label's leading digit.
// A label without a leading digit matches nothing.
func ByDifficulty(label string) Predicate {
	if isAll(label) {
		return nil
	}
	level, ok := ParseDifficultyLabel(label)
	return func(c models.Course) bool {
		return ok && int(c.Difficulty) == level
	}
}

// Scope restricts the free-text search to one field.
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeLocation Scope = "location"
	ScopeCategory Scope = "category"
	ScopeKeyword  Scope = "keyword"
)

// BySearch matches a lower-cased, trimmed query by substring. Scoped modes test
// a single field; the unscoped mode accepts a hit in title, region, category
// or description.
func BySearch(query string, scope Scope) Predicate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	has := func(field string) bool {
		return strings.Contains(strings.ToLower(field), q)
	}
	return func(c models.Course) bool {
		switch scope {
		case ScopeLocation:
			return has(c.Region)
		case ScopeCategory:
			return has(c.Category)
		case ScopeKeyword:
			return has(c.Description)
		default:
			return has(c.Title) || has(c.Region) || has(c.Category) || has(c.Description)
		}
	}
}

// ByWishlist keeps courses whose id is in ids.
func ByWishlist(ids []int) Predicate {
	return func(c models.Course) bool {
		return slices.Contains(ids, c.ID)
	}
}

// Selection values for the home category slot besides category ids.
const (
	SelectAll      = "all"
	SelectWishlist = "wishlist"
	SelectHalal    = "halal"
	SelectOfficial = "official"
	SelectPet      = "pet"
)

// CategoryLabels maps home category button ids to catalog category labels.
var CategoryLabels = map[string]string{
	"local":   "로컬",
	"cafe":    "카페",
	"food":    "맛집",
	"nature":  "자연",
	"culture": "문화",
	"budget":  "가성비",
}

// BySelection resolves the home category slot. The wishlist, certification
// and pet shortcuts are boolean tests; any other value is looked up in
// CategoryLabels (falling back to itself) and matched against the course
// category case-insensitively, by equality or containment.
func BySelection(selection string, wishlist []int) Predicate {
	sel := strings.ToLower(strings.TrimSpace(selection))
	switch sel {
	case "", SelectAll:
		return nil
	case SelectWishlist:
		return ByWishlist(wishlist)
	case SelectHalal:
		return func(c models.Course) bool { return c.HalalCertified }
	case SelectOfficial:
		return func(c models.Course) bool { return c.OfficialCertified }
	case SelectPet:
		return func(c models.Course) bool { return c.PetFriendly }
	}

	label := sel
	if mapped, ok := CategoryLabels[sel]; ok {
		label = mapped
	}
	label = strings.ToLower(label)
	return func(c models.Course) bool {
		category := strings.ToLower(strings.TrimSpace(c.Category))
		return category == label || strings.Contains(category, label)
	}
}
