package search

import (
	"reflect"
	"testing"

	"travelmaker/models"
)

func won(n int) *int { return &n }

func fixture() []models.Course {
	return []models.Course{
		{ID: 1, Title: "순천 골목 속 감성 산책 하루", Region: "순천", Province: models.Jeolla, Category: "로컬",
			Description: "골목 산책", Days: 1, Price: models.Price{Total: won(30000)}, Difficulty: 2,
			Likes: 10, Comments: 1, CreatedAt: "2024-05-01", CategoryType: models.CategoryTravel},
		{ID: 2, Title: "강릉 로컬 로스터리 카페 투어", Region: "강릉", Province: models.Gangwon, Category: "카페",
			Description: "바다 앞 로스터리", Days: 2, Price: models.Price{Total: won(120000)}, Difficulty: 1,
			PetFriendly: true, Likes: 30, Comments: 5, CreatedAt: "2024-07-15", CategoryType: models.CategoryTravel},
		{ID: 3, Title: "경주 구도심 골목 맛집 탐방", Region: "경주", Province: models.Gyeongsang, Category: "맛집",
			Description: "황리단길 맛집", Days: 1, Difficulty: 3, HalalCertified: true,
			Likes: 5, Comments: 0, CategoryType: models.CategoryTravel},
		{ID: 4, Title: "순천만 자연 트레킹", Region: "순천만", Province: models.Jeolla, Category: "자연",
			Description: "갈대밭", Days: 3, Price: models.Price{Total: won(600000)}, Difficulty: 4,
			OfficialCertified: true, Likes: 1, Comments: 0, CreatedAt: "not a date", CategoryType: models.CategoryTravel},
		{ID: 9001, Title: "순천 야생화 꿀", Region: "순천", Province: models.Jeolla, Category: "특산품",
			Likes: 2, CategoryType: models.CategorySpecialty},
		{ID: 9101, Title: "여행 머그", Region: "전주", Province: models.Jeolla, Category: "굿즈",
			Likes: 4, CategoryType: models.CategoryGoods},
	}
}

func ids(cs []models.Course) []int {
	out := make([]int, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		pred Predicate
		want []int
	}{
		{"exact city", ByRegionCity("전라도", "순천", CityExact), []int{1, 9001}},
		{"contains city", ByRegionCity("전라도", "순천", CityContains), []int{1, 4, 9001}},
		{"city without province inactive", ByRegionCity("전체", "순천", CityExact), []int{1, 2, 3, 4, 9001, 9101}},
		{"category exact", ByCategory("카페"), []int{2}},
		{"duration", ByDuration("2박 3일"), []int{2}},
		{"unknown duration", ByDuration("5박 6일"), []int{}},
		{"price bypasses missing total", ByPriceRange(0, 100000), []int{1, 3, 9001, 9101}},
		{"pet", ByPetFriendly(true), []int{2}},
		{"difficulty label", ByDifficulty("3 (보통)"), []int{3}},
		{"bad difficulty label", ByDifficulty("보통"), []int{}},
		{"search all fields", BySearch("  골목 ", ScopeAll), []int{1, 3}},
		{"search location", BySearch("순천", ScopeLocation), []int{1, 4, 9001}},
		{"search keyword", BySearch("로스터리", ScopeKeyword), []int{2}},
		{"search category", BySearch("맛", ScopeCategory), []int{3}},
		{"wishlist", ByWishlist([]int{4, 2}), []int{2, 4}},
		{"partition", ByCategoryType(models.CategoryGoods), []int{9101}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(fixture(), tt.pred))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBySelection(t *testing.T) {
	tests := []struct {
		selection string
		want      []int
	}{
		{"all", []int{1, 2, 3, 4, 9001, 9101}},
		{"", []int{1, 2, 3, 4, 9001, 9101}},
		{"wishlist", []int{3}},
		{"halal", []int{3}},
		{"official", []int{4}},
		{"pet", []int{2}},
		{"cafe", []int{2}},
		{"nature", []int{4}},
		{"특산", []int{9001}},
	}
	for _, tt := range tests {
		t.Run(tt.selection, func(t *testing.T) {
			got := ids(Apply(fixture(), BySelection(tt.selection, []int{3})))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BySelection(%q) = %v, want %v", tt.selection, got, tt.want)
			}
		})
	}
}

func TestApplyIdempotent(t *testing.T) {
	f := FilterValues{
		Province: "전라도", City: "순천", Category: "전체", Duration: "전체",
		PriceMax: DefaultPriceMax, Difficulty: "전체",
	}
	once := Apply(fixture(), f.Predicates()...)
	twice := Apply(fixture(), f.Predicates()...)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("results differ: %v vs %v", ids(once), ids(twice))
	}
	again := Apply(once, f.Predicates()...)
	if !reflect.DeepEqual(ids(once), ids(again)) {
		t.Errorf("re-filtering changed result: %v vs %v", ids(once), ids(again))
	}
}

func TestSortPopularStable(t *testing.T) {
	in := []models.Course{
		{ID: 7, Likes: 4, Comments: 0},
		{ID: 8, Likes: 2, Comments: 1},
		{ID: 9, Likes: 0, Comments: 2},
	}
	got := ids(Sort(in, SortPopular))
	if want := []int{7, 8, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("Sort(popular) = %v, want input order %v", got, want)
	}
}

func TestSortLatestUndatedLast(t *testing.T) {
	got := ids(Sort(fixture(), SortLatest))
	// 2 and 1 are dated after the sentinel; the rest tie on it in input order.
	want := []int{2, 1, 3, 4, 9001, 9101}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sort(latest) = %v, want %v", got, want)
	}
}

func TestSortDoesNotMutate(t *testing.T) {
	in := fixture()
	_ = Sort(in, SortPopular)
	if in[0].ID != 1 {
		t.Error("Sort modified its input")
	}
}

func TestExplore(t *testing.T) {
	t.Run("default popular travel", func(t *testing.T) {
		res := Explore(fixture(), ExploreParams{Tab: TabTravel})
		if want := []int{2, 1, 3, 4}; !reflect.DeepEqual(ids(res.Courses), want) {
			t.Errorf("courses = %v, want %v", ids(res.Courses), want)
		}
		if res.Title != "인기 로컬 코스" {
			t.Errorf("title = %q", res.Title)
		}
		if res.Empty != nil {
			t.Errorf("unexpected empty state %+v", res.Empty)
		}
	})

	t.Run("province navigation", func(t *testing.T) {
		res := Explore(fixture(), ExploreParams{Tab: TabSpecialty, Sort: SortLatest, Province: models.Jeolla})
		if want := []int{9001}; !reflect.DeepEqual(ids(res.Courses), want) {
			t.Errorf("courses = %v, want %v", ids(res.Courses), want)
		}
		if res.Title != "전라도 최신 특산품" {
			t.Errorf("title = %q", res.Title)
		}
	})

	t.Run("filter title counts results", func(t *testing.T) {
		f := DefaultFilterValues()
		f.PetFriendly = true
		res := Explore(fixture(), ExploreParams{Tab: TabTravel, Filters: &f})
		if res.Title != "필터 결과 (1개)" || res.Total != 1 {
			t.Errorf("title = %q total = %d", res.Title, res.Total)
		}
	})
}

func TestEmptyStateDistinguishesFilterFromProvince(t *testing.T) {
	// No courses in 제주도 at all.
	res := Explore(fixture(), ExploreParams{Tab: TabTravel, Province: models.Jeju})
	if len(res.Courses) != 0 || res.Empty == nil {
		t.Fatalf("want empty result with empty state, got %+v", res)
	}
	if res.Empty.Reason != ReasonProvince || res.Empty.Message != "제주도의 코스가 없습니다." {
		t.Errorf("province empty state = %+v", res.Empty)
	}
	if res.Empty.ShowReset {
		t.Error("reset shown without filters")
	}

	f := DefaultFilterValues()
	f.Duration = "4박 5일"
	res = Explore(fixture(), ExploreParams{Tab: TabTravel, Filters: &f, Province: models.Jeolla})
	if res.Empty == nil || res.Empty.Reason != ReasonFilter {
		t.Fatalf("filter empty state = %+v", res.Empty)
	}
	if res.Empty.Message != "필터 조건에 맞는 여행 코스가 없습니다." || !res.Empty.ShowReset {
		t.Errorf("filter empty state = %+v", res.Empty)
	}
	if res.Empty.Hint != "다른 지역을 선택하거나 필터를 조정하세요" {
		t.Errorf("hint = %q", res.Empty.Hint)
	}
}

func TestHome(t *testing.T) {
	res := Home(fixture(), HomeParams{Selection: "all", Province: models.Jeolla, City: "순천", Query: "골목"})
	if want := []int{1}; !reflect.DeepEqual(ids(res.Courses), want) {
		t.Errorf("courses = %v, want %v", ids(res.Courses), want)
	}

	res = Home(fixture(), HomeParams{Selection: "wishlist"})
	if res.Empty == nil || res.Empty.Message != "찜한 여행 코스가 없습니다" {
		t.Errorf("wishlist empty state = %+v", res.Empty)
	}

	res = Home(fixture(), HomeParams{Province: models.Gangwon, City: "속초"})
	if res.Empty == nil || res.Empty.Message != "강원도 속초의 검색 결과가 없습니다" {
		t.Errorf("province empty state = %+v", res.Empty)
	}

	res = Home(fixture(), HomeParams{Query: "없는 키워드"})
	if res.Empty == nil || res.Empty.Reason != ReasonQuery {
		t.Errorf("query empty state = %+v", res.Empty)
	}
}

func TestTop(t *testing.T) {
	got := ids(Top(fixture(), 2))
	if want := []int{2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Top() = %v, want %v", got, want)
	}
	if len(Top(fixture(), 0)) != 0 {
		t.Error("Top(0) should be empty")
	}
}
