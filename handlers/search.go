package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"travelmaker/metrics"
	"travelmaker/models"
	"travelmaker/recommend"
	"travelmaker/search"
)

// filterKeys are the explore query keys that belong to the filter panel. The
// panel counts as applied when any of them is present.
var filterKeys = []string{"province", "city", "category", "duration", "min_price", "max_price", "pet", "difficulty"}

type listingQuery struct {
	Tab   string `validate:"omitempty,oneof=travel specialty goods"`
	Sort  string `validate:"omitempty,oneof=latest popular"`
	Scope string `validate:"omitempty,oneof=all location category keyword"`
}

func parseProvince(raw string) (models.Province, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == models.AllSentinel {
		return "", nil
	}
	p := models.Province(raw)
	if !p.Valid() {
		return "", fmt.Errorf("unknown province %q", raw)
	}
	return p, nil
}

func orAll(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return models.AllSentinel
	}
	return v
}

// ParseHomeParams extracts the home listing parameters. The wishlist is
// filled in by the caller.
func ParseHomeParams(query url.Values) (search.HomeParams, error) {
	q := listingQuery{Sort: query.Get("sort"), Scope: query.Get("scope")}
	if err := validate.Struct(q); err != nil {
		return search.HomeParams{}, err
	}

	province, err := parseProvince(query.Get("province"))
	if err != nil {
		return search.HomeParams{}, err
	}

	p := search.HomeParams{
		Selection: query.Get("selection"),
		Province:  province,
		City:      query.Get("city"),
		Query:     query.Get("q"),
		Scope:     search.Scope(q.Scope),
		Sort:      search.SortOrder(q.Sort),
	}
	if p.Scope == "" {
		p.Scope = search.ScopeAll
	}
	return p, nil
}

// ParseExploreParams extracts the explore listing parameters. province and
// city drive the filter panel; url_province and url_city are province
// navigation.
func ParseExploreParams(query url.Values) (search.ExploreParams, error) {
	q := listingQuery{Tab: query.Get("tab"), Sort: query.Get("sort")}
	if err := validate.Struct(q); err != nil {
		return search.ExploreParams{}, err
	}

	nav, err := parseProvince(query.Get("url_province"))
	if err != nil {
		return search.ExploreParams{}, err
	}

	p := search.ExploreParams{
		Tab:      search.Tab(q.Tab),
		Sort:     search.SortOrder(q.Sort),
		Province: nav,
		City:     query.Get("url_city"),
	}
	if p.Tab == "" {
		p.Tab = search.TabTravel
	}

	applied := false
	for _, k := range filterKeys {
		if query.Has(k) {
			applied = true
			break
		}
	}
	if !applied {
		return p, nil
	}

	f := search.DefaultFilterValues()
	f.Province = orAll(query.Get("province"))
	f.City = orAll(query.Get("city"))
	f.Category = orAll(query.Get("category"))
	f.Duration = orAll(query.Get("duration"))
	f.Difficulty = orAll(query.Get("difficulty"))
	f.PetFriendly = query.Get("pet") == "true"
	if v := query.Get("min_price"); v != "" {
		if f.PriceMin, err = strconv.Atoi(v); err != nil {
			return p, fmt.Errorf("min_price: %w", err)
		}
	}
	if v := query.Get("max_price"); v != "" {
		if f.PriceMax, err = strconv.Atoi(v); err != nil {
			return p, fmt.Errorf("max_price: %w", err)
		}
	}
	if f.Difficulty != models.AllSentinel {
		if _, ok := search.ParseDifficultyLabel(f.Difficulty); !ok {
			return p, errors.New("difficulty must start with a digit")
		}
	}
	if err := validate.Struct(f); err != nil {
		return p, err
	}
	p.Filters = &f
	return p, nil
}

// HomeHandler serves the home listing: category slot, province navigation and
// free-text search.
func HomeHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ParseHomeParams(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if strings.EqualFold(strings.TrimSpace(p.Selection), search.SelectWishlist) {
			ids, err := d.client(r).Wishlist.IDs(r.Context())
			if err != nil {
				storeFailure(w, r, err, "Wishlist read failed")
				return
			}
			p.Wishlist = ids
		}

		res := search.Home(d.Catalog.All(r.Context()), p)
		metrics.SearchResults.WithLabelValues("home").Observe(float64(res.Total))
		writeJSON(w, http.StatusOK, res)
	}
}

// ExploreHandler serves the explore listing: filter panel, province
// navigation, tab partition and sort.
func ExploreHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ParseExploreParams(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		all := d.Catalog.All(r.Context())
		res := search.Explore(all, p)
		metrics.SearchResults.WithLabelValues("explore").Observe(float64(res.Total))

		body := map[string]interface{}{
			"courses": res.Courses,
			"total":   res.Total,
			"title":   res.Title,
		}
		if res.Empty != nil {
			body["empty"] = res.Empty
		}
		if p.Filters == nil && p.Tab == search.TabTravel {
			body["top"] = search.Top(all, search.TopLimit)
		}
		writeJSON(w, http.StatusOK, body)
	}
}

type courseDetail struct {
	Course                models.Course `json:"course"`
	Total                 int           `json:"total"`
	TotalText             string        `json:"totalText"`
	DifficultyText        string        `json:"difficultyText"`
	DifficultyDescription string        `json:"difficultyDescription"`
	DifficultyScale       [5]bool       `json:"difficultyScale"`
	Wishlisted            bool          `json:"wishlisted"`
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, errors.New("id must be an integer")
	}
	return id, nil
}

// CourseHandler returns one course with its display fields.
func CourseHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		c, ok := d.Catalog.ByID(r.Context(), id)
		if !ok {
			writeError(w, http.StatusNotFound, "Course not found")
			return
		}

		wishlisted, err := d.client(r).Wishlist.Contains(r.Context(), id)
		if err != nil {
			storeFailure(w, r, err, "Wishlist read failed")
			return
		}

		total := models.ComputeTotal(c.Price)
		text := models.DifficultyText(int(c.Difficulty))
		writeJSON(w, http.StatusOK, courseDetail{
			Course:                c,
			Total:                 total,
			TotalText:             models.FormatKRW(total),
			DifficultyText:        text,
			DifficultyDescription: models.DifficultyDescription(text),
			DifficultyScale:       models.DifficultyScale(int(c.Difficulty)),
			Wishlisted:            wishlisted,
		})
	}
}

// SimilarHandler returns the similar-items block for a course.
func SimilarHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		limit := d.RecommendLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if limit, err = strconv.Atoi(v); err != nil || limit < 0 {
				writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
				return
			}
		}

		all := d.Catalog.All(r.Context())
		ref, ok := d.Catalog.ByID(r.Context(), id)
		if !ok {
			writeError(w, http.StatusNotFound, "Course not found")
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"heading": recommend.Heading(ref.CategoryType.Resolved()),
			"courses": recommend.Similar(ref, all, limit),
		})
	}
}

var itemTabs = map[string]search.Tab{
	"travel":    search.TabTravel,
	"specialty": search.TabSpecialty,
	"goods":     search.TabGoods,
	"여행상품":      search.TabTravel,
	"특산품":       search.TabSpecialty,
	"굿즈":        search.TabGoods,
}

// ItemsHandler returns one partition of the catalog. Empty specialty and
// goods partitions fall back to the seed items.
func ItemsHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tab, ok := itemTabs[r.PathValue("type")]
		if !ok {
			writeError(w, http.StatusBadRequest, "type must be travel, specialty or goods")
			return
		}
		writeJSON(w, http.StatusOK, d.Catalog.ByCategoryType(r.Context(), tab.CategoryType()))
	}
}
