package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"prompt-designer/account"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type sessionResponse struct {
	Token string   `json:"token"`
	User  userInfo `json:"user"`
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	acct, err := h.directory.Register(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "Email already registered")
			return
		}
		h.log.Error().Err(err).Msg("register failed")
		writeError(w, http.StatusInternalServerError, "failed to register")
		return
	}

	token, err := h.tokens.Issue(acct.ID, acct.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("token issue failed")
		writeError(w, http.StatusInternalServerError, "failed to register")
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{
		Token: token,
		User:  userInfo{ID: acct.ID, Email: acct.Email},
	})
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	acct, err := h.directory.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		writeError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	token, err := h.tokens.Issue(acct.ID, acct.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("token issue failed")
		writeError(w, http.StatusInternalServerError, "failed to log in")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		Token: token,
		User:  userInfo{ID: acct.ID, Email: acct.Email},
	})
}
