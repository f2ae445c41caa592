package corpus

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes a corpus over HTTP for downstream training and
// visualization tools:
//
//	GET /scenes        - JSON array of scene keys
//	GET /scenes/{key}  - one scene record
func Handler(store Store) http.Handler {
	r := chi.NewRouter()
	r.Get("/scenes", listScenes(store))
	r.Get("/scenes/{key}", getScene(store))
	return r
}

func listScenes(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		keys, err := store.List(req.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if keys == nil {
			keys = []string{}
		}
		writeJSON(w, keys)
	}
}

func getScene(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		key := chi.URLParam(req, "key")
		s, err := store.Load(req.Context(), key)
		if errors.Is(err, ErrSceneNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, s)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
