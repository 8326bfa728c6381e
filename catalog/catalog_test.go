package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"travelmaker/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		description string
		want        models.CategoryType
	}{
		{"specialty label", "지역특산품 세트", "", models.CategorySpecialty},
		{"goods label", "기념 굿즈", "", models.CategoryGoods},
		{"english specialty", "Local Farm Product", "", models.CategorySpecialty},
		{"english goods", "MERCH", "", models.CategoryGoods},
		{"description specialty", "선물", "완도 지역상품 모음", models.CategorySpecialty},
		{"description goods", "선물", "여행 기념품 키링", models.CategoryGoods},
		{"specialty beats goods", "특산품 굿즈", "", models.CategorySpecialty},
		{"description specialty beats category goods", "굿즈", "특산 한정", models.CategorySpecialty},
		{"default travel", "로컬", "골목 산책", models.CategoryTravel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.category, tt.description); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.category, tt.description, got, tt.want)
			}
		})
	}
}

func TestNormalizeCourseKeepsExplicitType(t *testing.T) {
	raw := models.Course{Category: "지역특산품 세트", CategoryType: models.CategoryGoods}
	if got := NormalizeCourse(raw); got.CategoryType != models.CategoryGoods {
		t.Errorf("CategoryType = %q, want explicit value kept", got.CategoryType)
	}

	raw = models.Course{Category: "로컬", CategoryType: "기타"}
	if got := NormalizeCourse(raw); got.CategoryType != "기타" {
		t.Errorf("CategoryType = %q, want verbatim unknown value", got.CategoryType)
	}
}

func TestNormalizeCoursesIdempotent(t *testing.T) {
	raw := []models.Course{
		{ID: 1, Category: "지역특산품 세트", Region: "순천"},
		{ID: 2, Category: "기념 굿즈"},
		{ID: 3, Category: "로컬", Region: "강릉"},
	}
	once := NormalizeCourses(raw)
	twice := NormalizeCourses(once)
	for i := range once {
		if once[i].CategoryType != twice[i].CategoryType || once[i].Category != twice[i].Category {
			t.Errorf("record %d changed on second pass: %+v vs %+v", i, once[i], twice[i])
		}
		if once[i].Province != twice[i].Province {
			t.Errorf("record %d province changed: %q vs %q", i, once[i].Province, twice[i].Province)
		}
	}
	if once[0].Province != models.Jeolla || once[2].Province != models.Gangwon {
		t.Errorf("provinces = %q, %q", once[0].Province, once[2].Province)
	}
}

func TestMergeWithSeedData(t *testing.T) {
	t.Run("empty partitions take seeds", func(t *testing.T) {
		merged := MergeWithSeedData([]models.Course{
			{ID: 1, CategoryType: models.CategoryTravel},
			{ID: 2, CategoryType: models.CategoryTravel},
		})
		want := len(seedSpecialty) + len(seedGoods) + 2
		if len(merged) != want {
			t.Fatalf("len = %d, want %d", len(merged), want)
		}
		if merged[0].CategoryType != models.CategorySpecialty {
			t.Errorf("first group = %q, want specialty", merged[0].CategoryType)
		}
		last := merged[len(merged)-1]
		if last.ID != 2 {
			t.Errorf("travel group should come last, got id %d", last.ID)
		}
	})

	t.Run("fetched partitions win", func(t *testing.T) {
		merged := MergeWithSeedData([]models.Course{
			{ID: 10, CategoryType: models.CategoryGoods},
			{ID: 11, CategoryType: models.CategorySpecialty},
		})
		if len(merged) != 2 {
			t.Fatalf("len = %d, want 2", len(merged))
		}
		if merged[0].ID != 11 || merged[1].ID != 10 {
			t.Errorf("order = %d, %d; want specialty then goods", merged[0].ID, merged[1].ID)
		}
	})

	t.Run("travel never seeded", func(t *testing.T) {
		merged := MergeWithSeedData(nil)
		for _, c := range merged {
			if c.CategoryType == models.CategoryTravel {
				t.Fatalf("unexpected travel seed %d", c.ID)
			}
		}
	})
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]models.Course{{ID: 1, Title: "a"}, {ID: 2}, {ID: 1, Title: "b"}})
	if len(got) != 2 || got[0].Title != "a" {
		t.Errorf("Dedupe() = %+v", got)
	}
}

func TestLoaderMemoizes(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"순천 골목","region":"순천","category":"로컬","price":{"total":30000},"difficulty":2}]`))
	}))
	defer srv.Close()

	l := NewLoader(NewHTTPSource(srv.URL, 0))
	ctx := context.Background()

	first := l.All(ctx)
	second := l.All(ctx)
	if n := hits.Load(); n != 1 {
		t.Errorf("source hit %d times, want 1", n)
	}
	if len(first) != len(second) {
		t.Errorf("lengths differ: %d vs %d", len(first), len(second))
	}
	if !l.Loaded() {
		t.Error("Loaded() = false after success")
	}

	l.Invalidate()
	l.All(ctx)
	if n := hits.Load(); n != 2 {
		t.Errorf("source hit %d times after Invalidate, want 2", n)
	}
}

func TestLoaderFallbackOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	l := NewLoader(NewHTTPSource(srv.URL, 0))
	got := l.All(context.Background())
	if len(got) != len(Fallback()) {
		t.Fatalf("len = %d, want fallback %d", len(got), len(Fallback()))
	}
	for _, c := range got {
		if c.CategoryType == models.CategoryTravel {
			t.Errorf("fallback contains travel item %d", c.ID)
		}
	}
	if l.Loaded() {
		t.Error("Loaded() = true after a failed fetch")
	}
}

// gatedSource blocks every Fetch until release is closed, then fails or
// serves courses.
type gatedSource struct {
	release chan struct{}
	fail    atomic.Bool
	courses []models.Course
	calls   atomic.Int32
}

func (s *gatedSource) Fetch(ctx context.Context) ([]models.Course, error) {
	s.calls.Add(1)
	<-s.release
	if s.fail.Load() {
		return nil, errors.New("offline")
	}
	return cloneCourses(s.courses), nil
}

func (s *gatedSource) String() string { return "gated" }

func TestLoaderSharesInFlightFetch(t *testing.T) {
	src := &gatedSource{release: make(chan struct{})}
	src.fail.Store(true)
	l := NewLoader(src)

	const callers = 5
	var wg sync.WaitGroup
	results := make([]int, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = len(l.All(context.Background()))
		}(i)
	}
	for src.calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(20 * time.Millisecond)
	close(src.release)
	wg.Wait()

	if n := src.calls.Load(); n != 1 {
		t.Errorf("fetches = %d, want 1 shared fetch", n)
	}
	for i, n := range results {
		if n != len(Fallback()) {
			t.Errorf("caller %d got %d courses, want fallback %d", i, n, len(Fallback()))
		}
	}
}

func TestLoaderFailedFetchServedWithoutRefetch(t *testing.T) {
	src := &gatedSource{release: make(chan struct{}), courses: []models.Course{{ID: 1, Category: "로컬"}}}
	close(src.release)
	src.fail.Store(true)
	l := NewLoader(src)
	ctx := context.Background()

	l.All(ctx)
	l.All(ctx)
	if n := src.calls.Load(); n != 1 {
		t.Fatalf("fetches = %d, want 1 until Refresh", n)
	}

	if err := l.Refresh(ctx); err == nil {
		t.Fatal("Refresh() error = nil while source is down")
	}
	src.fail.Store(false)
	if err := l.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if !l.Loaded() {
		t.Fatal("Loaded() = false after Refresh")
	}
	if _, ok := l.ByID(ctx, 1); !ok {
		t.Error("live course missing after Refresh")
	}
	if n := src.calls.Load(); n != 3 {
		t.Errorf("fetches = %d, want 3", n)
	}
}

func TestLoaderLiveIDBeatsSeed(t *testing.T) {
	l := NewLoader(&StaticSource{Courses: []models.Course{
		{ID: 9001, Title: "순천 야간 투어", Category: "로컬", Region: "순천"},
	}})
	ctx := context.Background()

	count := 0
	for _, c := range l.All(ctx) {
		if c.ID == 9001 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("id 9001 appears %d times, want 1", count)
	}
	c, ok := l.ByID(ctx, 9001)
	if !ok || c.Title != "순천 야간 투어" {
		t.Errorf("ByID(9001) = %q, %v; want live record", c.Title, ok)
	}
}

func TestHTTPSourceBadStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, 0).Fetch(context.Background())
	if !errors.Is(err, ErrBadStatus) {
		t.Errorf("Fetch() error = %v, want ErrBadStatus", err)
	}
}

func TestLoaderLookups(t *testing.T) {
	src := &StaticSource{Courses: []models.Course{
		{ID: 1, Category: "로컬", Region: "순천"},
		{ID: 2, Category: "카페", Region: "강릉"},
	}}
	l := NewLoader(src)
	ctx := context.Background()

	c, ok := l.ByID(ctx, 2)
	if !ok || c.Region != "강릉" {
		t.Errorf("ByID(2) = %+v, %v", c, ok)
	}
	if _, ok := l.ByID(ctx, 404); ok {
		t.Error("ByID(404) should miss")
	}

	travel := l.ByCategoryType(ctx, models.CategoryTravel)
	if len(travel) != 2 {
		t.Errorf("travel = %d items", len(travel))
	}
	goods := l.ByCategoryType(ctx, models.CategoryGoods)
	if len(goods) != len(seedGoods) {
		t.Errorf("goods = %d items, want seeds", len(goods))
	}
}

func TestLoaderEmptyTravelStaysEmpty(t *testing.T) {
	l := NewLoader(&StaticSource{Err: errors.New("offline")})
	if got := l.ByCategoryType(context.Background(), models.CategoryTravel); len(got) != 0 {
		t.Errorf("travel = %d items, want 0", len(got))
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "courses.json")
	if err := os.WriteFile(path, []byte(`[{"id":7,"title":"t","category":"기념 굿즈","difficulty":"3"}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := NewSource("file://"+path, 0).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(got) != 1 || got[0].Difficulty != 3 {
		t.Errorf("Fetch() = %+v", got)
	}

	if err := os.WriteFile(path, []byte(`{"not":"an array"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err = NewSource(path, 0).Fetch(context.Background())
	if err != nil || len(got) != 0 {
		t.Errorf("non-array payload = %v, %v", got, err)
	}
}
