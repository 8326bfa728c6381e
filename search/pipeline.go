package search

import (
	"fmt"

	"travelmaker/geo"
	"travelmaker/models"
)

// DefaultPriceMax is the upper bound of the price slider when it is untouched.
const DefaultPriceMax = 500000

// TopLimit is the size of the popular-courses strip on the explore page.
const TopLimit = 5

// FilterValues is the explore filter panel. A nil *FilterValues means the
// panel has not been applied.
type FilterValues struct {
	Province    string `json:"province"`
	City        string `json:"city"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	PriceMin    int    `json:"priceMin" validate:"gte=0"`
	PriceMax    int    `json:"priceMax" validate:"gtefield=PriceMin"`
	PetFriendly bool   `json:"petFriendly"`
	Difficulty  string `json:"difficulty"`
}

// DefaultFilterValues is the panel with every control at "전체".
func DefaultFilterValues() FilterValues {
	return FilterValues{
		Province:   models.AllSentinel,
		City:       models.AllSentinel,
		Category:   models.AllSentinel,
		Duration:   models.AllSentinel,
		PriceMax:   DefaultPriceMax,
		Difficulty: models.AllSentinel,
	}
}

// Predicates returns the panel's predicates; inactive controls yield nil.
func (f FilterValues) Predicates() []Predicate {
	return []Predicate{
		ByRegionCity(f.Province, f.City, CityExact),
		ByCategory(f.Category),
		ByDuration(f.Duration),
		ByPriceRange(f.PriceMin, f.PriceMax),
		ByPetFriendly(f.PetFriendly),
		ByDifficulty(f.Difficulty),
	}
}

// ExploreParams drives the explore listing.
type ExploreParams struct {
	Tab     Tab
	Sort    SortOrder
	Filters *FilterValues
	// Province and City come from province navigation and are matched by
	// inferred province plus region containment.
	Province models.Province
	City     string
}

// HomeParams drives the home listing.
type HomeParams struct {
	// Selection is the category slot: all, wishlist, halal, official, pet or
	// a category id.
	Selection string
	Wishlist  []int
	Province  models.Province
	City      string
	Query     string
	Scope     Scope
	// Sort is optional; empty keeps catalog order.
	Sort SortOrder
}

// Result is an ordered listing plus the copy a client shows around it.
type Result struct {
	Courses []models.Course `json:"courses"`
	Total   int             `json:"total"`
	Title   string          `json:"title,omitempty"`
	Empty   *EmptyState     `json:"empty,omitempty"`
}

// Explore filters by panel, then by navigation province, then by tab, and
// sorts. Popular is the default order.
func Explore(courses []models.Course, p ExploreParams) Result {
	list := courses
	if p.Filters != nil {
		list = Apply(list, p.Filters.Predicates()...)
	}
	if p.Province != "" {
		list = geo.FilterByProvinceAndCity(list, p.Province, p.City)
	}
	list = Apply(list, ByCategoryType(p.Tab.CategoryType()))

	order := p.Sort
	if order != SortLatest {
		order = SortPopular
	}
	list = Sort(list, order)

	res := Result{
		Courses: list,
		Total:   len(list),
		Title:   ExploreTitle(p.Tab, order, p.Province, p.Filters != nil, len(list)),
	}
	if len(list) == 0 {
		res.Empty = ExploreEmptyState(p.Tab, p.Province, p.Filters != nil)
	}
	return res
}

// Home applies the selection slot, then navigation province, then free-text
// search.
func Home(courses []models.Course, p HomeParams) Result {
	list := Apply(courses, BySelection(p.Selection, p.Wishlist))
	if p.Province != "" {
		list = geo.FilterByProvinceAndCity(list, p.Province, p.City)
	}
	list = Apply(list, BySearch(p.Query, p.Scope))
	if p.Sort != "" {
		list = Sort(list, p.Sort)
	}

	res := Result{Courses: list, Total: len(list)}
	if len(list) == 0 {
		res.Empty = HomeEmptyState(p.Selection, p.Province, p.City)
	}
	return res
}

// Top returns the most popular travel courses.
func Top(courses []models.Course, n int) []models.Course {
	if n <= 0 {
		return []models.Course{}
	}
	list := Sort(Apply(courses, ByCategoryType(models.CategoryTravel)), SortPopular)
	if len(list) > n {
		list = list[:n]
	}
	return list
}

// ExploreTitle is the heading above the explore grid.
func ExploreTitle(tab Tab, order SortOrder, province models.Province, filtered bool, n int) string {
	if filtered {
		return fmt.Sprintf("필터 결과 (%d개)", n)
	}
	prefix := ""
	if province != "" {
		prefix = string(province) + " "
	}
	adj := "인기"
	if order == SortLatest {
		adj = "최신"
	}
	noun := "로컬 코스"
	switch tab {
	case TabSpecialty:
		noun = "특산품"
	case TabGoods:
		noun = "굿즈"
	}
	return prefix + adj + " " + noun
}
