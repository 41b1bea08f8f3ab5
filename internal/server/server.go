// Package server exposes the color utilities over a small HTTP API.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/maax3v3/tint"
)

// ColorResponse is the JSON document returned for a decoded color.
// Channels are normalized to [0, 1]; luma is on the 0-255 scale.
type ColorResponse struct {
	Spec     string  `json:"spec"`
	Valid    bool    `json:"valid"`
	R        float64 `json:"r"`
	G        float64 `json:"g"`
	B        float64 `json:"b"`
	A        float64 `json:"a"`
	Hex      string  `json:"hex"`
	HexAlpha string  `json:"hex_alpha"`
	Luma     float64 `json:"luma"`
	Dark     bool    `json:"dark"`
}

// New builds the HTTP handler.
func New() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)
	r.Get("/v1/color", handleColor)

	return r
}

// ListenAndServe runs the API on addr until the server fails.
func ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, New())
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

// handleColor decodes the color in the spec query parameter and
// returns its channels, hex forms and darkness classification.
// Optional lighten/darken parameters apply an adjustment first;
// rgb_only=true makes the adjustment preserve alpha. Unparseable specs
// are not an error: they return the transparent-black fallback with
// valid=false.
func handleColor(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	spec := q.Get("spec")
	if spec == "" {
		http.Error(w, "missing spec query parameter", http.StatusBadRequest)
		return
	}

	rep := tint.Parse(spec)
	_, invalid := rep.(tint.Invalid)
	c := rep.Decode()

	rgbOnly := q.Get("rgb_only") == "true"
	for _, adj := range []struct {
		param   string
		lighter bool
	}{
		{"lighten", true},
		{"darken", false},
	} {
		v := q.Get(adj.param)
		if v == "" {
			continue
		}
		ratio, err := strconv.ParseFloat(v, 64)
		if err != nil || ratio < 0 || ratio > 1 {
			http.Error(w, adj.param+" must be a number between 0 and 1", http.StatusBadRequest)
			return
		}
		c = adjust(c, ratio, adj.lighter, rgbOnly)
	}

	resp := ColorResponse{
		Spec:     spec,
		Valid:    !invalid,
		R:        c.R,
		G:        c.G,
		B:        c.B,
		A:        c.A,
		Hex:      c.Hex(),
		HexAlpha: c.HexAlpha(),
		Luma:     c.Luma(),
		Dark:     c.IsDark(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func adjust(c tint.Color, ratio float64, lighter, rgbOnly bool) tint.Color {
	switch {
	case lighter && rgbOnly:
		return c.LightenRGB(ratio)
	case lighter:
		return c.Lighten(ratio)
	case rgbOnly:
		return c.DarkenRGB(ratio)
	default:
		return c.Darken(ratio)
	}
}
