package search

import (
	"strings"

	"travelmaker/models"
)

// EmptyReason says why a listing came back empty.
type EmptyReason string

const (
	ReasonFilter   EmptyReason = "filter"
	ReasonProvince EmptyReason = "province"
	ReasonWishlist EmptyReason = "wishlist"
	ReasonCategory EmptyReason = "category"
	ReasonQuery    EmptyReason = "query"
)

// EmptyState is the copy shown in place of an empty grid. An empty listing is
// a normal outcome; the reason lets clients tell a restrictive filter apart
// from a province with no courses.
type EmptyState struct {
	Reason    EmptyReason `json:"reason"`
	Message   string      `json:"message"`
	Hint      string      `json:"hint"`
	ShowReset bool        `json:"showReset"`
}

const (
	hintProvince = "다른 지역을 선택하거나 필터를 조정하세요"
	hintSoon     = "곧 다양한 상품들이 추가될 예정입니다"
)

// ExploreEmptyState builds the explore empty state. Filters take precedence
// over the navigation province.
func ExploreEmptyState(tab Tab, province models.Province, filtered bool) *EmptyState {
	es := &EmptyState{Hint: hintSoon, ShowReset: filtered}
	if province != "" {
		es.Hint = hintProvince
	}

	switch {
	case filtered:
		es.Reason = ReasonFilter
		es.Message = map[Tab]string{
			TabSpecialty: "필터 조건에 맞는 특산품이 없습니다.",
			TabGoods:     "필터 조건에 맞는 굿즈가 없습니다.",
		}[tab]
		if es.Message == "" {
			es.Message = "필터 조건에 맞는 여행 코스가 없습니다."
		}
	case province != "":
		es.Reason = ReasonProvince
		switch tab {
		case TabSpecialty:
			es.Message = string(province) + "의 특산품이 아직 없습니다."
		case TabGoods:
			es.Message = string(province) + "의 굿즈가 아직 없습니다."
		default:
			es.Message = string(province) + "의 코스가 없습니다."
		}
	default:
		es.Reason = ReasonCategory
		switch tab {
		case TabSpecialty:
			es.Message = "해당 카테고리의 특산품이 아직 없습니다."
		case TabGoods:
			es.Message = "해당 카테고리의 굿즈가 아직 없습니다."
		default:
			es.Message = "해당 카테고리에 코스가 없습니다."
		}
	}
	return es
}

// HomeEmptyState builds the home empty state.
func HomeEmptyState(selection string, province models.Province, city string) *EmptyState {
	if strings.EqualFold(strings.TrimSpace(selection), SelectWishlist) {
		return &EmptyState{
			Reason:  ReasonWishlist,
			Message: "찜한 여행 코스가 없습니다",
			Hint:    "마음에 드는 여행 코스를 찜해보세요",
		}
	}
	if province != "" {
		where := string(province)
		if !isAll(city) {
			where += " " + city
		}
		return &EmptyState{
			Reason:  ReasonProvince,
			Message: where + "의 검색 결과가 없습니다",
			Hint:    hintProvince,
		}
	}
	return &EmptyState{
		Reason:  ReasonQuery,
		Message: "검색 결과가 없습니다",
		Hint:    "다른 키워드로 검색해보세요",
	}
}
