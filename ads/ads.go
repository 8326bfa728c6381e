// Package ads rotates a static ad pool, showing two different items that stay
// fixed for the rest of a session day.
package ads

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"

	"travelmaker/logging"
	"travelmaker/models"
	"travelmaker/store"
)

// ErrEmptyPool is returned when there is nothing to show.
var ErrEmptyPool = errors.New("ads: empty pool")

// Pool is the default rotation.
var Pool = []models.AdItem{
	{ID: "local-honey", Title: "순천 야생화 꿀 세트", Image: "/honey-jar-flowers.png", Href: "https://example.com/honey", Badge: "지역특산품"},
	{ID: "dried-seaweed", Title: "완도 재래김 선물세트", Image: "/seaweed-gift-set.jpg", Href: "https://example.com/seaweed", Badge: "제휴특가"},
	{ID: "handmade-mug", Title: "핸드메이드 머그·굿즈", Image: "/handmade-ceramic-mug.jpg", Href: "https://example.com/mug", Badge: "굿즈"},
	{ID: "hanok-stay-coupon", Title: "한옥스테이 10% 쿠폰", Image: "/traditional-hanok-stay.jpg", Href: "https://example.com/hanok", Badge: "추천"},
}

// dayLayout matches the date stamp stored with a pick.
const dayLayout = "Mon Jan 02 2006"

type rotation struct {
	A int    `json:"a"`
	B int    `json:"b"`
	D string `json:"d"`
}

// Rotator picks ad pairs from Pool.
type Rotator struct {
	Pool []models.AdItem
	Now  func() time.Time
}

// NewRotator returns a Rotator over the default pool and the wall clock.
func NewRotator() *Rotator {
	return &Rotator{Pool: Pool, Now: time.Now}
}

// PickTwo returns two pool items, distinct whenever the pool has at least two.
//
// The first pick of a session seeds both indices from the clock. Later picks
// on the same day reuse the stored pair, clamped to the pool. A stored pair
// from an earlier day resets to the first two items. Indices are forced
// distinct by advancing the second one, and the pair is written back to the
// session store.
func (r *Rotator) PickTwo(ctx context.Context, session store.KV) ([2]models.AdItem, error) {
	pool := r.Pool
	switch len(pool) {
	case 0:
		return [2]models.AdItem{}, ErrEmptyPool
	case 1:
		return [2]models.AdItem{pool[0], pool[0]}, nil
	}

	now := r.Now()
	day := now.Format(dayLayout)
	n := len(pool)
	a, b := 0, 1

	raw, saved, err := session.Get(ctx, store.KeyLastAds)
	if err != nil {
		return [2]models.AdItem{}, err
	}
	if saved {
		var prev rotation
		if err := json.Unmarshal(raw, &prev); err == nil && prev.D == day {
			a, b = clamp(prev.A, n), clamp(prev.B, n)
		}
	} else {
		base := now.UnixMilli()
		a = int(base % int64(n))
		b = int((base + 1) % int64(n))
	}

	if a == b {
		b = (b + 1) % n
	}

	data, err := json.Marshal(rotation{A: a, B: b, D: day})
	if err != nil {
		return [2]models.AdItem{}, err
	}
	if err := session.Set(ctx, store.KeyLastAds, data); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to persist ad rotation")
	}
	return [2]models.AdItem{pool[a], pool[b]}, nil
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
