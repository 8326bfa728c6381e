package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"travelmaker/logging"
	"travelmaker/metrics"
	"travelmaker/models"
)

// Loader memoizes the merged catalog for its own lifetime. It is owned by the
// caller; there is no package-level cache. Concurrent callers share a single
// in-flight fetch. After a failed fetch every caller gets the seed fallback
// without touching the source again until Refresh succeeds.
type Loader struct {
	source Source
	group  singleflight.Group

	mu     sync.Mutex
	cache  []models.Course
	loaded bool
	failed bool
}

// NewLoader returns a Loader reading from src.
func NewLoader(src Source) *Loader {
	return &Loader{source: src}
}

// All returns the full, de-duplicated catalog. It never fails: when the source
// is unreachable or answers with a non-success status, the specialty and goods
// seeds are returned instead.
func (l *Loader) All(ctx context.Context) []models.Course {
	l.mu.Lock()
	loaded, failed, cache := l.loaded, l.failed, l.cache
	l.mu.Unlock()

	switch {
	case loaded:
		return cloneCourses(cache)
	case failed:
		return Fallback()
	}

	courses, err := l.load(ctx)
	if err != nil {
		return Fallback()
	}
	return cloneCourses(courses)
}

// Refresh fetches the source again unless a load already succeeded. It is
// how a failed first load gets retried.
func (l *Loader) Refresh(ctx context.Context) error {
	if l.Loaded() {
		return nil
	}
	_, err := l.load(ctx)
	return err
}

const loadKey = "catalog"

// load runs one fetch for all concurrent callers. The fetch is detached from
// the first caller's cancellation so it cannot fail the others.
func (l *Loader) load(ctx context.Context) ([]models.Course, error) {
	v, err, _ := l.group.Do(loadKey, func() (interface{}, error) {
		l.mu.Lock()
		if l.loaded {
			cache := l.cache
			l.mu.Unlock()
			return cache, nil
		}
		l.mu.Unlock()

		raw, err := l.source.Fetch(context.WithoutCancel(ctx))
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("source", l.source.String()).Msg("Catalog fetch failed, serving seed fallback")
			metrics.CatalogLoads.WithLabelValues("fallback").Inc()
			l.mu.Lock()
			l.failed = true
			l.mu.Unlock()
			return nil, err
		}

		courses := MergeWithSeedData(NormalizeCourses(Dedupe(raw)))
		l.mu.Lock()
		l.cache = courses
		l.loaded = true
		l.failed = false
		l.mu.Unlock()

		metrics.CatalogLoads.WithLabelValues("success").Inc()
		metrics.CatalogSize.Set(float64(len(courses)))
		logging.Ctx(ctx).Info().Int("courses", len(courses)).Str("source", l.source.String()).Msg("Catalog loaded")
		return courses, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Course), nil
}

// Loaded reports whether a successful load has been memoized.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Invalidate drops the memoized catalog or failure; the next All refetches.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = nil
	l.loaded = false
	l.failed = false
}

// ByID scans the catalog for id.
func (l *Loader) ByID(ctx context.Context, id int) (models.Course, bool) {
	for _, c := range l.All(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// ByCategoryType returns one partition. An empty specialty or goods partition
// falls back to its seed list; travel never does.
func (l *Loader) ByCategoryType(ctx context.Context, ct models.CategoryType) []models.Course {
	out := []models.Course{}
	for _, c := range l.All(ctx) {
		if c.CategoryType.Resolved() == ct {
			out = append(out, c)
		}
	}
	if len(out) > 0 {
		return out
	}
	switch ct {
	case models.CategorySpecialty:
		return SeedSpecialty()
	case models.CategoryGoods:
		return SeedGoods()
	}
	return out
}

// MergeWithSeedData partitions courses by category type and substitutes the
// seed partition for an empty specialty or goods partition. The result is
// specialty, then goods, then travel; records with an unrecognized type sit
// in the travel group. Seed records never shadow a live record with the same
// id.
func MergeWithSeedData(courses []models.Course) []models.Course {
	live := make(map[int]struct{}, len(courses))
	var travel, specialty, goods []models.Course
	for _, c := range courses {
		live[c.ID] = struct{}{}
		switch c.CategoryType.Resolved() {
		case models.CategorySpecialty:
			specialty = append(specialty, c)
		case models.CategoryGoods:
			goods = append(goods, c)
		default:
			travel = append(travel, c)
		}
	}
	if len(specialty) == 0 {
		specialty = withoutIDs(SeedSpecialty(), live)
	}
	if len(goods) == 0 {
		goods = withoutIDs(SeedGoods(), live)
	}

	merged := make([]models.Course, 0, len(specialty)+len(goods)+len(travel))
	merged = append(merged, specialty...)
	merged = append(merged, goods...)
	merged = append(merged, travel...)
	return merged
}

func withoutIDs(seeds []models.Course, ids map[int]struct{}) []models.Course {
	out := seeds[:0]
	for _, c := range seeds {
		if _, taken := ids[c.ID]; !taken {
			out = append(out, c)
		}
	}
	return out
}

// Dedupe drops records whose id was already seen, keeping the first.
func Dedupe(courses []models.Course) []models.Course {
	seen := make(map[int]struct{}, len(courses))
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}
