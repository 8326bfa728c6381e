package models

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// CategoryType partitions the catalog into travel courses, regional specialty
// products and merchandise. The wire values are the Korean labels used by the
// catalog JSON.
type CategoryType string

const (
	CategoryTravel    CategoryType = "여행상품"
	CategorySpecialty CategoryType = "특산품"
	CategoryGoods     CategoryType = "굿즈"
)

// CategoryTypes lists the three partitions in display order.
var CategoryTypes = []CategoryType{CategoryTravel, CategorySpecialty, CategoryGoods}

// Valid reports whether c is one of the three known partitions.
func (c CategoryType) Valid() bool {
	switch c {
	case CategoryTravel, CategorySpecialty, CategoryGoods:
		return true
	}
	return false
}

// Resolved returns c, or CategoryTravel when c is empty or unrecognized.
func (c CategoryType) Resolved() CategoryType {
	if c.Valid() {
		return c
	}
	return CategoryTravel
}

// Province is one of the six top-level regions used for geographic filtering.
type Province string

const (
	Gyeonggi    Province = "경기도"
	Gyeongsang  Province = "경상도"
	Jeolla      Province = "전라도"
	Chungcheong Province = "충청도"
	Gangwon     Province = "강원도"
	Jeju        Province = "제주도"
)

// Provinces is the fixed province enumeration in display order.
var Provinces = []Province{Gyeonggi, Gyeongsang, Jeolla, Chungcheong, Gangwon, Jeju}

// Valid reports whether p is one of the six provinces.
func (p Province) Valid() bool {
	for _, known := range Provinces {
		if p == known {
			return true
		}
	}
	return false
}

// AllSentinel is the "전체" option the UI uses for "no selection" in
// province, city, category, duration and difficulty pickers.
const AllSentinel = "전체"

// Price holds optional sub-amounts in KRW. Total, when present, is
// authoritative over the sum of the parts.
type Price struct {
	Total         *int `json:"total,omitempty"`
	Transport     *int `json:"transport,omitempty"`
	Accommodation *int `json:"accommodation,omitempty"`
	Tickets       *int `json:"tickets,omitempty"`
}

// DayEvent is a single stop in a day plan.
type DayEvent struct {
	Time        string `json:"time,omitempty"`
	Title       string `json:"title"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// TimelineDay is one day of a travel itinerary.
type TimelineDay struct {
	Day    int        `json:"day"`
	Title  string     `json:"title"`
	Events []DayEvent `json:"events"`
}

// Coordinate is a lat/lng pair on a course map.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LimitedPeriod marks seasonal or limited-time items.
type LimitedPeriod struct {
	IsLimited bool   `json:"isLimited"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Difficulty is a 1-5 level. The catalog occasionally carries it as a numeric
// string, so decoding accepts both forms.
type Difficulty int

// UnmarshalJSON accepts a number, a numeric string, or null.
func (d *Difficulty) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*d = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			*d = 0
			return nil
		}
		*d = Difficulty(n)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*d = Difficulty(int(f))
	return nil
}

// Course is a catalog record: a travel itinerary, a specialty product or a
// piece of merchandise. Trip attributes only carry meaning for travel items.
type Course struct {
	ID                  int            `json:"id"`
	Title               string         `json:"title"`
	Region              string         `json:"region"`
	Province            Province       `json:"province,omitempty"`
	Category            string         `json:"category"`
	CategoryType        CategoryType   `json:"categoryType,omitempty"`
	Description         string         `json:"description"`
	DetailedDescription string         `json:"detailedDescription,omitempty"`
	Image               string         `json:"image,omitempty"`
	Image2              string         `json:"image2,omitempty"`
	Image3              string         `json:"image3,omitempty"`
	Days                int            `json:"days"`
	Price               Price          `json:"price"`
	Difficulty          Difficulty     `json:"difficulty"`
	Transportation      []string       `json:"transportation"`
	PetFriendly         bool           `json:"petFriendly"`
	Likes               int            `json:"likes"`
	Rating              float64        `json:"rating"`
	Comments            int            `json:"comments"`
	HalalCertified      bool           `json:"halalCertified,omitempty"`
	OfficialCertified   bool           `json:"officialCertified,omitempty"`
	Author              string         `json:"author,omitempty"`
	Hashtags            []string       `json:"hashtags,omitempty"`
	CreatedAt           string         `json:"createdAt,omitempty"`
	Timeline            []TimelineDay  `json:"timeline,omitempty"`
	MapCoordinates      []Coordinate   `json:"mapCoordinates,omitempty"`
	LimitedPeriod       *LimitedPeriod `json:"limitedPeriod,omitempty"`
}

// Popularity is the "popular" sort key: likes plus twice the comment count.
func (c Course) Popularity() int {
	return c.Likes + 2*c.Comments
}

// IsTravelProduct reports whether the card should render trip attributes.
func (c Course) IsTravelProduct() bool {
	return c.Days > 0 && len(c.Transportation) > 0
}

// AdItem is an entry in the static ad rotation pool.
type AdItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	Href  string `json:"href"`
	Badge string `json:"badge,omitempty"`
}
