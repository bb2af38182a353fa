package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"notekeep/middleware"
	"notekeep/service"
	"notekeep/store"
	"notekeep/testutil"
	"notekeep/token"
)

func newTestAPI(t *testing.T) (*API, *store.SQLStore) {
	t.Helper()
	st := testutil.OpenStore(t)
	logger := zerolog.Nop()
	tokens := token.NewService("handlers-test-secret")
	api := NewAPI(
		service.NewAuth(st, tokens, logger),
		service.NewNotes(st, logger),
		service.NewCategories(st),
		logger,
	)
	return api, st
}

// notesRouter mounts the note routes with a fixed identity injected, so the
// handlers see route parameters the way they do behind the real middleware.
func notesRouter(api *API, identity *token.Identity) *chi.Mux {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithIdentity(req.Context(), identity)))
		})
	})
	r.Get("/api/categories", api.GetCategories)
	r.Get("/api/notes", api.GetNotes)
	r.Post("/api/notes", api.CreateNote)
	r.Put("/api/notes/{id}", api.UpdateNote)
	r.Patch("/api/notes/{id}/archive", api.ToggleArchive)
	r.Delete("/api/notes/{id}", api.DeleteNote)
	return r
}

func itoa(v int) string { return strconv.Itoa(v) }

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
