package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"notekeep/middleware"
	"notekeep/service"
	"notekeep/token"
)

// API holds the HTTP handlers and their injected dependencies.
type API struct {
	Auth       *service.Auth
	Notes      *service.Notes
	Categories *service.Categories
	Log        zerolog.Logger
}

func NewAPI(auth *service.Auth, notes *service.Notes, categories *service.Categories, log zerolog.Logger) *API {
	return &API{Auth: auth, Notes: notes, Categories: categories, Log: log}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"message": msg})
}

// respondError maps the service error kinds to HTTP statuses. Anything
// unrecognized is a 500: logged server-side, generic to the client.
func (a *API) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyCredentials),
		errors.Is(err, service.ErrEmptyNoteFields),
		errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrBadCredentials):
		respondMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoteNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())
	default:
		a.Log.Error().Err(err).Msg("request failed")
		respondMessage(w, http.StatusInternalServerError, "something went wrong")
	}
}

// identity pulls the authenticated caller from the request context. Handlers
// behind RequireAuth always find one; the guard covers direct use in tests.
func (a *API) identity(w http.ResponseWriter, r *http.Request) (*token.Identity, bool) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "unauthorized")
	}
	return id, ok
}
