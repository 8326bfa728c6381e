package handlers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"travelmaker/ads"
	"travelmaker/catalog"
	"travelmaker/logging"
	"travelmaker/recommend"
	"travelmaker/store"
)

// Client scoping headers.
const (
	ClientIDHeader  = "X-Client-ID"
	SessionIDHeader = "X-Session-ID"
)

// Deps are the services every handler closes over.
type Deps struct {
	Catalog *catalog.Loader
	KV      store.KV
	Bus     *store.Broadcaster
	Ads     *ads.Rotator
	// RecommendLimit is the default size of the similar-items block.
	RecommendLimit int
}

// NewDeps fills optional fields with defaults.
func NewDeps(loader *catalog.Loader, kv store.KV, bus *store.Broadcaster) *Deps {
	return &Deps{
		Catalog:        loader,
		KV:             kv,
		Bus:            bus,
		Ads:            ads.NewRotator(),
		RecommendLimit: recommend.DefaultLimit,
	}
}

func (d *Deps) client(r *http.Request) *store.Client {
	id := strings.TrimSpace(r.Header.Get(ClientIDHeader))
	if id == "" {
		id = "anonymous"
	}
	return store.ForClient(d.KV, d.Bus, id, strings.TrimSpace(r.Header.Get(SessionIDHeader)))
}

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// storeFailure logs a backend error and answers 500.
func storeFailure(w http.ResponseWriter, r *http.Request, err error, what string) {
	logging.Ctx(r.Context()).Error().Err(err).Msg(what)
	writeError(w, http.StatusInternalServerError, "Something went wrong")
}
