package handlers

import (
	"net/http"
	"strings"

	"travelmaker/geo"
	"travelmaker/logging"
	"travelmaker/models"
)

type provinceInfo struct {
	Name   models.Province `json:"name"`
	Cities []string        `json:"cities"`
	Count  int             `json:"count"`
}

// ProvincesHandler lists the six provinces with their city pickers and the
// number of catalog items in each, for the province navigation bar.
func ProvincesHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts := geo.CountByProvince(d.Catalog.All(r.Context()))
		out := make([]provinceInfo, 0, len(models.Provinces))
		for _, p := range models.Provinces {
			out = append(out, provinceInfo{Name: p, Cities: geo.CitiesOf(p), Count: counts[p]})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// DetectProvinceHandler infers the province a free-text place name belongs to.
// An unmatched text is not an error; the response carries an empty province.
func DetectProvinceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text := strings.TrimSpace(r.URL.Query().Get("text"))
		if text == "" {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}

		p, ok := geo.InferProvince(text)
		logging.Ctx(r.Context()).Debug().Str("text", text).Str("province", string(p)).Bool("matched", ok).Msg("Province detection")

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"province": p,
			"matched":  ok,
		})
	}
}
