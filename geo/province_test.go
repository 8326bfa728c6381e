package geo

import (
	"testing"
	"unicode/utf8"

	"travelmaker/models"
)

func TestInferEveryKey(t *testing.T) {
	g := Default()
	for _, key := range g.Keys() {
		want, _ := g.Lookup(key)
		got, ok := g.Infer(key)
		if !ok {
			t.Errorf("Infer(%q) found nothing", key)
			continue
		}
		if got != want {
			t.Errorf("Infer(%q) = %s, want %s", key, got, want)
		}
	}
}

func TestInferLongestKeyWins(t *testing.T) {
	tests := []struct {
		text string
		want models.Province
	}{
		{"광주광역시 동구 예술의 거리", models.Jeolla},
		{"경기 광주 남한산성", models.Gyeonggi},
		{"전남 완도 청산도 슬로길", models.Jeolla},
		{"완도군 해변", models.Jeolla},
		{"서귀포시 올레길", models.Jeju},
		{"  강릉   경포대  ", models.Gangwon},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := InferProvince(tt.text)
			if !ok || got != tt.want {
				t.Errorf("InferProvince(%q) = %q, %v; want %q", tt.text, got, ok, tt.want)
			}
		})
	}
}

func TestInferCollapsesWhitespace(t *testing.T) {
	got, ok := InferProvince("전남\t\n  순천 낙안읍성")
	if !ok || got != models.Jeolla {
		t.Errorf("InferProvince() = %q, %v", got, ok)
	}
}

func TestInferNoMatch(t *testing.T) {
	for _, text := range []string{"", "   ", "서울 종로", "unknown place"} {
		if p, ok := InferProvince(text); ok {
			t.Errorf("InferProvince(%q) = %q, want no match", text, p)
		}
	}
}

func TestKeysOrderedByLength(t *testing.T) {
	keys := Default().Keys()
	for i := 1; i < len(keys); i++ {
		if utf8.RuneCountInString(keys[i-1]) < utf8.RuneCountInString(keys[i]) {
			t.Fatalf("key %q precedes longer key %q", keys[i-1], keys[i])
		}
	}
	for _, k := range keys {
		if k == models.AllSentinel {
			t.Fatal("sentinel must not be a gazetteer key")
		}
	}
}

func TestNormalizeProvincePrecedence(t *testing.T) {
	tests := []struct {
		name   string
		course models.Course
		want   models.Province
	}{
		{"explicit wins", models.Course{Province: models.Jeju, Region: "순천"}, models.Jeju},
		{"invalid explicit ignored", models.Course{Province: "서울특별시", Region: "순천"}, models.Jeolla},
		{"region", models.Course{Region: "강릉", Category: "부산 맛집"}, models.Gangwon},
		{"category", models.Course{Region: "어딘가", Category: "부산 맛집"}, models.Gyeongsang},
		{"hashtags", models.Course{Region: "어딘가", Hashtags: []string{"#여행", "#제주"}}, models.Jeju},
		{"undetermined", models.Course{Region: "어딘가", Category: "로컬"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeProvince(tt.course); got != tt.want {
				t.Errorf("NormalizeProvince() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterByProvinceAndCity(t *testing.T) {
	courses := []models.Course{
		{ID: 1, Region: "순천", Province: models.Jeolla},
		{ID: 2, Region: "전남 순천", Province: models.Jeolla},
		{ID: 3, Region: "여수", Province: models.Jeolla},
		{ID: 4, Region: "강릉", Province: models.Gangwon},
		{ID: 5, Region: "순천"},
	}

	got := FilterByProvinceAndCity(courses, models.Jeolla, "순천")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("province+city = %v", ids(got))
	}

	got = FilterByProvinceAndCity(courses, models.Jeolla, models.AllSentinel)
	if len(got) != 3 {
		t.Errorf("province only = %v", ids(got))
	}

	got = FilterByProvinceAndCity(courses, "", "")
	if len(got) != len(courses) {
		t.Errorf("no filter = %v", ids(got))
	}

	got = FilterByProvinceAndCity(courses, models.Jeju, "")
	if len(got) != 0 {
		t.Errorf("empty province = %v", ids(got))
	}
}

func TestCountByProvince(t *testing.T) {
	counts := CountByProvince([]models.Course{
		{Province: models.Jeolla},
		{Province: models.Jeolla},
		{Province: models.Jeju},
		{},
	})
	if len(counts) != len(models.Provinces) {
		t.Fatalf("len(counts) = %d", len(counts))
	}
	if counts[models.Jeolla] != 2 || counts[models.Jeju] != 1 || counts[models.Gangwon] != 0 {
		t.Errorf("counts = %v", counts)
	}
}

func TestCitiesOf(t *testing.T) {
	cities := CitiesOf(models.Jeju)
	if cities[0] != models.AllSentinel {
		t.Errorf("first city = %q", cities[0])
	}
	if got := CitiesOf("서울"); len(got) != 1 || got[0] != models.AllSentinel {
		t.Errorf("CitiesOf(unknown) = %v", got)
	}
}

func ids(cs []models.Course) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}
