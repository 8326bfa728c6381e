package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"travelmaker/logging"
)

// Fixed keys for client-local state.
const (
	KeyWishlist      = "wishlist"
	KeyNotifKeywords = "notif-keywords"
	KeyNotifRegions  = "notif-regions"
	KeyCreatorSubs   = "tm-creator-subs"
	KeyLastAds       = "tm-last-ads"
)

// EventWishlistChanged is published after every wishlist mutation.
const EventWishlistChanged = "wishlistChanged"

// Event is a same-process state-change notification.
type Event struct {
	Name  string
	Scope string
}

// Broadcaster fans events out to subscribers synchronously, in subscription
// order. The zero value is ready to use.
type Broadcaster struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(Event)
	ids  []int
}

// Subscribe registers fn and returns a func that removes it.
func (b *Broadcaster) Subscribe(fn func(Event)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[int]func(Event))
	}
	id := b.next
	b.next++
	b.subs[id] = fn
	b.ids = append(b.ids, id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
		b.ids = slices.DeleteFunc(b.ids, func(v int) bool { return v == id })
	}
}

// Publish delivers e to every current subscriber.
func (b *Broadcaster) Publish(e Event) {
	if b == nil {
		return
	}
	b.mu.RLock()
	fns := make([]func(Event), 0, len(b.ids))
	for _, id := range b.ids {
		fns = append(fns, b.subs[id])
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}

// readJSON decodes key. A missing key or undecodable value yields the zero
// value and no error; only backend failures are returned.
func readJSON[T any](ctx context.Context, kv KV, key string) (T, error) {
	var zero T
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	if !ok || len(raw) == 0 {
		return zero, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("key", key).Msg("Ignoring malformed stored value")
		return zero, nil
	}
	return v, nil
}

func writeJSON(ctx context.Context, kv KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return kv.Set(ctx, key, raw)
}

// Client bundles the stores of one client scope.
type Client struct {
	Wishlist      *Wishlist
	Notifications *NotificationPrefs
	Subscriptions *Subscriptions
	// Session holds session-scoped state such as the ad rotation.
	Session KV
}

// ForClient returns the stores of clientID on kv. sessionID scopes the
// session store; empty falls back to clientID.
func ForClient(kv KV, bus *Broadcaster, clientID, sessionID string) *Client {
	scoped := NewScoped(kv, clientID)
	if sessionID == "" {
		sessionID = clientID
	}
	return &Client{
		Wishlist:      &Wishlist{kv: scoped, bus: bus, scope: clientID},
		Notifications: &NotificationPrefs{kv: scoped},
		Subscriptions: &Subscriptions{kv: scoped},
		Session:       NewSessionScoped(kv, sessionID),
	}
}

// Wishlist is the client's list of saved course ids.
type Wishlist struct {
	kv    KV
	bus   *Broadcaster
	scope string
}

// NewWishlist returns a wishlist stored directly in kv.
func NewWishlist(kv KV, bus *Broadcaster) *Wishlist {
	return &Wishlist{kv: kv, bus: bus}
}

// IDs returns the saved ids in insertion order; never nil.
func (w *Wishlist) IDs(ctx context.Context) ([]int, error) {
	ids, err := readJSON[[]int](ctx, w.kv, KeyWishlist)
	if err != nil {
		return []int{}, err
	}
	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}

// Contains reports whether id is saved.
func (w *Wishlist) Contains(ctx context.Context, id int) (bool, error) {
	ids, err := w.IDs(ctx)
	return slices.Contains(ids, id), err
}

// Toggle adds id when absent and removes it when present. delta is the change
// a client applies to the displayed like count (+1 or -1).
func (w *Wishlist) Toggle(ctx context.Context, id int) (added bool, delta int, err error) {
	ids, err := w.IDs(ctx)
	if err != nil {
		return false, 0, err
	}
	if slices.Contains(ids, id) {
		ids = slices.DeleteFunc(ids, func(v int) bool { return v == id })
		delta = -1
	} else {
		ids = append(ids, id)
		added, delta = true, 1
	}
	if err := writeJSON(ctx, w.kv, KeyWishlist, ids); err != nil {
		return false, 0, err
	}
	w.bus.Publish(Event{Name: EventWishlistChanged, Scope: w.scope})
	return added, delta, nil
}

// NotifKind selects one of the two notification preference lists.
type NotifKind string

const (
	NotifKeywords NotifKind = "keywords"
	NotifRegions  NotifKind = "regions"
)

func (k NotifKind) key() (string, bool) {
	switch k {
	case NotifKeywords:
		return KeyNotifKeywords, true
	case NotifRegions:
		return KeyNotifRegions, true
	}
	return "", false
}

// ErrUnknownKind is returned for a NotifKind other than keywords or regions.
var ErrUnknownKind = errors.New("store: unknown notification kind")

// NotificationPrefs holds the keyword and region alert lists.
type NotificationPrefs struct {
	kv KV
}

// NewNotificationPrefs returns preferences stored directly in kv.
func NewNotificationPrefs(kv KV) *NotificationPrefs {
	return &NotificationPrefs{kv: kv}
}

// List returns one list; never nil.
func (n *NotificationPrefs) List(ctx context.Context, kind NotifKind) ([]string, error) {
	key, ok := kind.key()
	if !ok {
		return []string{}, ErrUnknownKind
	}
	list, err := readJSON[[]string](ctx, n.kv, key)
	if err != nil {
		return []string{}, err
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// Add appends the trimmed value unless it is empty or already present, and
// returns the resulting list.
func (n *NotificationPrefs) Add(ctx context.Context, kind NotifKind, value string) ([]string, error) {
	list, err := n.List(ctx, kind)
	if err != nil {
		return list, err
	}
	value = strings.TrimSpace(value)
	if value == "" || slices.Contains(list, value) {
		return list, nil
	}
	list = append(list, value)
	key, _ := kind.key()
	return list, writeJSON(ctx, n.kv, key, list)
}

// Remove deletes every occurrence of value and returns the resulting list.
func (n *NotificationPrefs) Remove(ctx context.Context, kind NotifKind, value string) ([]string, error) {
	list, err := n.List(ctx, kind)
	if err != nil {
		return list, err
	}
	list = slices.DeleteFunc(list, func(v string) bool { return v == value })
	key, _ := kind.key()
	return list, writeJSON(ctx, n.kv, key, list)
}

// Subscriptions maps creator ids to subscribed state.
type Subscriptions struct {
	kv KV
}

// NewSubscriptions returns subscriptions stored directly in kv.
func NewSubscriptions(kv KV) *Subscriptions {
	return &Subscriptions{kv: kv}
}

// All returns the full mapping; never nil.
func (s *Subscriptions) All(ctx context.Context) (map[string]bool, error) {
	subs, err := readJSON[map[string]bool](ctx, s.kv, KeyCreatorSubs)
	if err != nil {
		return map[string]bool{}, err
	}
	if subs == nil {
		subs = map[string]bool{}
	}
	return subs, nil
}

// IsSubscribed reports the state for creator; unknown creators are not
// subscribed.
func (s *Subscriptions) IsSubscribed(ctx context.Context, creator string) (bool, error) {
	subs, err := s.All(ctx)
	return subs[creator], err
}

// Toggle flips the state for creator and returns the new state. Unsubscribing
// stores false rather than deleting the entry.
func (s *Subscriptions) Toggle(ctx context.Context, creator string) (bool, error) {
	subs, err := s.All(ctx)
	if err != nil {
		return false, err
	}
	subs[creator] = !subs[creator]
	if err := writeJSON(ctx, s.kv, KeyCreatorSubs, subs); err != nil {
		return false, err
	}
	return subs[creator], nil
}
