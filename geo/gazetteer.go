// Package geo maps free-text locality strings onto the six catalog provinces.
//
// The gazetteer is a static table: the base city list per province (what the
// province picker shows) plus alias rows for metropolitan cities,
// administrative suffixes and "province city" compounds. Lookups test every
// key for substring containment, longest key first, so that a compound alias
// is never shadowed by a shorter city name it contains.
package geo

import (
	"sort"
	"unicode/utf8"

	"travelmaker/models"
)

// citiesByProvince is the city picker content; the leading sentinel is not a
// gazetteer key.
var citiesByProvince = map[models.Province][]string{
	models.Gyeonggi: {
		models.AllSentinel, "수원", "성남", "고양", "용인", "부천", "안산", "안양",
		"화성", "평택", "파주", "김포", "이천", "가평", "양평", "포천",
	},
	models.Gyeongsang: {
		models.AllSentinel, "부산", "대구", "울산", "포항", "경주", "안동", "구미",
		"영주", "문경", "창원", "진주", "통영", "김해", "거제", "남해", "하동",
	},
	models.Jeolla: {
		models.AllSentinel, "전주", "군산", "익산", "남원", "목포", "여수", "순천",
		"나주", "광양", "담양", "보성", "완도",
	},
	models.Chungcheong: {
		models.AllSentinel, "대전", "청주", "충주", "제천", "천안", "공주", "보령",
		"아산", "서산", "논산", "부여", "당진",
	},
	models.Gangwon: {
		models.AllSentinel, "춘천", "원주", "강릉", "동해", "속초", "삼척", "태백",
		"양양", "정선", "평창",
	},
	models.Jeju: {
		models.AllSentinel, "제주", "서귀포", "우도",
	},
}

type entry struct {
	key      string
	province models.Province
}

// aliases extends the base lists. Some keys overlap on purpose: 광주 alone is
// the Gyeonggi city, 광주광역시 is the Jeolla metropolitan city.
var aliases = []entry{
	{"수원시", models.Gyeonggi},
	{"평택시", models.Gyeonggi},
	{"가평군", models.Gyeonggi},
	{"양평군", models.Gyeonggi},
	{"광주", models.Gyeonggi},
	{"안성", models.Gyeonggi},
	{"경기 안성", models.Gyeonggi},

	{"부산광역시", models.Gyeongsang},
	{"부산시", models.Gyeongsang},
	{"대구광역시", models.Gyeongsang},
	{"대구시", models.Gyeongsang},
	{"울산광역시", models.Gyeongsang},
	{"울산시", models.Gyeongsang},
	{"거제시", models.Gyeongsang},
	{"하동군", models.Gyeongsang},
	{"남해군", models.Gyeongsang},
	{"안동시", models.Gyeongsang},
	{"경북 영양", models.Gyeongsang},
	{"경북 봉화", models.Gyeongsang},
	{"영양군", models.Gyeongsang},
	{"봉화군", models.Gyeongsang},

	{"광주광역시", models.Jeolla},
	{"전주시", models.Jeolla},
	{"목포시", models.Jeolla},
	{"여수시", models.Jeolla},
	{"순천시", models.Jeolla},
	{"담양군", models.Jeolla},
	{"보성군", models.Jeolla},
	{"군산시", models.Jeolla},
	{"완도군", models.Jeolla},
	{"전남 완도", models.Jeolla},
	{"전남 순천", models.Jeolla},
	{"전남 담양", models.Jeolla},
	{"전남 보성", models.Jeolla},

	{"대전광역시", models.Chungcheong},
	{"대전시", models.Chungcheong},
	{"청주시", models.Chungcheong},
	{"천안시", models.Chungcheong},
	{"공주시", models.Chungcheong},
	{"보령시", models.Chungcheong},
	{"아산시", models.Chungcheong},
	{"서산시", models.Chungcheong},

	{"춘천시", models.Gangwon},
	{"강릉시", models.Gangwon},
	{"속초시", models.Gangwon},
	{"원주시", models.Gangwon},
	{"삼척시", models.Gangwon},
	{"양양군", models.Gangwon},
	{"정선군", models.Gangwon},

	{"제주시", models.Jeju},
	{"서귀포시", models.Jeju},
}

// Gazetteer is an immutable city-to-province lookup table.
type Gazetteer struct {
	index   map[string]models.Province
	ordered []entry
}

// newGazetteer builds a table from per-province city lists and alias rows.
// Alias rows override base rows that share a key.
func newGazetteer(cities map[models.Province][]string, extra []entry) *Gazetteer {
	index := make(map[string]models.Province)
	for province, list := range cities {
		for _, city := range list {
			if city == "" || city == models.AllSentinel {
				continue
			}
			index[city] = province
		}
	}
	for _, e := range extra {
		index[e.key] = e.province
	}

	ordered := make([]entry, 0, len(index))
	for key, province := range index {
		ordered = append(ordered, entry{key: key, province: province})
	}
	// Longest first; ties broken lexically so iteration is deterministic.
	sort.Slice(ordered, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(ordered[i].key), utf8.RuneCountInString(ordered[j].key)
		if li != lj {
			return li > lj
		}
		return ordered[i].key < ordered[j].key
	})

	return &Gazetteer{index: index, ordered: ordered}
}

var defaultGazetteer = newGazetteer(citiesByProvince, aliases)

// Default returns the built-in gazetteer.
func Default() *Gazetteer {
	return defaultGazetteer
}

// Keys returns every lookup key, longest first.
func (g *Gazetteer) Keys() []string {
	keys := make([]string, len(g.ordered))
	for i, e := range g.ordered {
		keys[i] = e.key
	}
	return keys
}

// Lookup returns the province for an exact key.
func (g *Gazetteer) Lookup(key string) (models.Province, bool) {
	p, ok := g.index[key]
	return p, ok
}

// CitiesOf returns the city picker list for a province, led by the "전체"
// sentinel. Unknown provinces get just the sentinel.
func CitiesOf(p models.Province) []string {
	list, ok := citiesByProvince[p]
	if !ok {
		return []string{models.AllSentinel}
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
