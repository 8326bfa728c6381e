package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"travelmaker/ads"
	"travelmaker/store"
)

// WishlistHandler returns the client's saved course ids.
func WishlistHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := d.client(r).Wishlist.IDs(r.Context())
		if err != nil {
			storeFailure(w, r, err, "Wishlist read failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"ids": ids})
	}
}

// ToggleWishlistHandler saves or unsaves a course. likesDelta is what the
// client adds to the like count it displays.
func ToggleWishlistHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		wl := d.client(r).Wishlist
		added, delta, err := wl.Toggle(r.Context(), id)
		if err != nil {
			storeFailure(w, r, err, "Wishlist toggle failed")
			return
		}
		ids, err := wl.IDs(r.Context())
		if err != nil {
			storeFailure(w, r, err, "Wishlist read failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"wishlisted": added,
			"likesDelta": delta,
			"ids":        ids,
		})
	}
}

type notificationBody struct {
	Value string `json:"value" validate:"required"`
}

func notifKind(r *http.Request) (store.NotifKind, bool) {
	k := store.NotifKind(r.PathValue("kind"))
	return k, k == store.NotifKeywords || k == store.NotifRegions
}

// NotificationsHandler lists one of the notification preference lists.
func NotificationsHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := notifKind(r)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown notification list")
			return
		}
		list, err := d.client(r).Notifications.List(r.Context(), kind)
		if err != nil {
			storeFailure(w, r, err, "Notification prefs read failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{string(kind): list})
	}
}

// UpdateNotificationsHandler adds (POST) or removes (DELETE) a value.
func UpdateNotificationsHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := notifKind(r)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown notification list")
			return
		}

		var body notificationBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if r.Method == http.MethodPost {
			body.Value = strings.TrimSpace(body.Value)
		}
		if err := validate.Struct(body); err != nil {
			writeError(w, http.StatusBadRequest, "value is required")
			return
		}

		prefs := d.client(r).Notifications
		var list []string
		var err error
		if r.Method == http.MethodDelete {
			list, err = prefs.Remove(r.Context(), kind, body.Value)
		} else {
			list, err = prefs.Add(r.Context(), kind, body.Value)
		}
		if err != nil {
			storeFailure(w, r, err, "Notification prefs update failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{string(kind): list})
	}
}

// SubscriptionHandler reports whether the client follows a creator.
func SubscriptionHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creator := r.PathValue("creator")
		on, err := d.client(r).Subscriptions.IsSubscribed(r.Context(), creator)
		if err != nil {
			storeFailure(w, r, err, "Subscription read failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"creator": creator, "subscribed": on})
	}
}

type toggleSubscriptionBody struct {
	CreatorName string `json:"creatorName"`
}

// ToggleSubscriptionHandler flips a creator subscription and returns the
// confirmation text for the client toast.
func ToggleSubscriptionHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creator := r.PathValue("creator")

		var body toggleSubscriptionBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		name := strings.TrimSpace(body.CreatorName)
		if name == "" {
			name = "크리에이터"
		}

		on, err := d.client(r).Subscriptions.Toggle(r.Context(), creator)
		if err != nil {
			storeFailure(w, r, err, "Subscription toggle failed")
			return
		}

		title, desc := "구독 해제", name+" 소식 알림을 중지했습니다."
		if on {
			title, desc = "구독 완료", name+"님을 구독했습니다! 새로운 코스 소식을 알려드릴게요."
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"creator":     creator,
			"subscribed":  on,
			"title":       title,
			"description": desc,
		})
	}
}

// AdsHandler returns two distinct ads that stay fixed for the session day.
func AdsHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pair, err := d.Ads.PickTwo(r.Context(), d.client(r).Session)
		if err != nil {
			if errors.Is(err, ads.ErrEmptyPool) {
				writeJSON(w, http.StatusOK, []interface{}{})
				return
			}
			storeFailure(w, r, err, "Ad rotation failed")
			return
		}
		writeJSON(w, http.StatusOK, pair)
	}
}
