package corpus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/scenegen/scenegen/pkg/record"
)

func handlerFixture(t *testing.T) http.Handler {
	t.Helper()
	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"scene1", "scene2"} {
		if err := store.Save(context.Background(), testScene("id-"+name, name)); err != nil {
			t.Fatal(err)
		}
	}
	return Handler(store)
}

func TestHandlerListScenes(t *testing.T) {
	h := handlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/scenes", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var keys []string
	if err := json.Unmarshal(rec.Body.Bytes(), &keys); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(keys) != 2 || keys[0] != "scene1" || keys[1] != "scene2" {
		t.Errorf("keys = %v, want [scene1 scene2]", keys)
	}
}

func TestHandlerListEmpty(t *testing.T) {
	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	h := Handler(store)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scenes", nil))

	// An empty corpus lists as [], never null.
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestHandlerGetScene(t *testing.T) {
	h := handlerFixture(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scenes/scene1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var s record.Scene
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("response is not a scene record: %v", err)
	}
	if s.Name != "scene1" || len(s.Objects) != 1 {
		t.Errorf("scene = %s with %d objects", s.Name, len(s.Objects))
	}
}

func TestHandlerGetMissingScene(t *testing.T) {
	h := handlerFixture(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scenes/ghost", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
