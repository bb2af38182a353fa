package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"notekeep/service"
)

type noteRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID *int   `json:"categoryId"`
}

func (a *API) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.Categories.List(r.Context())
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (a *API) GetNotes(w http.ResponseWriter, r *http.Request) {
	identity, ok := a.identity(w, r)
	if !ok {
		return
	}

	notes, err := a.Notes.List(r.Context(), identity.UserID)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

func (a *API) CreateNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := a.identity(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := a.Notes.Create(r.Context(), identity.UserID, identity.Username, req.Title, req.Content, req.CategoryID)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "note created")
}

func (a *API) UpdateNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := a.identity(w, r)
	if !ok {
		return
	}
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := a.Notes.Update(r.Context(), id, identity.UserID, identity.Username, req.Title, req.Content, req.CategoryID)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "note updated")
}

func (a *API) ToggleArchive(w http.ResponseWriter, r *http.Request) {
	identity, ok := a.identity(w, r)
	if !ok {
		return
	}
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	archived, err := a.Notes.ToggleArchive(r.Context(), id, identity.UserID, identity.Username)
	if err != nil {
		a.respondError(w, err)
		return
	}
	msg := "note archived"
	if !archived {
		msg = "note unarchived"
	}
	respondMessage(w, http.StatusOK, msg)
}

func (a *API) DeleteNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := a.identity(w, r)
	if !ok {
		return
	}
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	if err := a.Notes.Delete(r.Context(), id, identity.UserID, identity.Username); err != nil {
		a.respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "note deleted")
}

// noteID parses the {id} route parameter. A non-numeric id can never match
// a note, so it reads as not found.
func noteID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusNotFound, service.ErrNoteNotFound.Error())
		return 0, false
	}
	return id, true
}
