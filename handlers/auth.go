package handlers

import (
	"encoding/json"
	"net/http"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.Auth.Register(r.Context(), req.Username, req.Password); err != nil {
		a.respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "registration successful")
}

func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := a.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message":  "login successful",
		"token":    res.Token,
		"id":       res.UserID,
		"username": res.Username,
	})
}
