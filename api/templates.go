package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"prompt-designer/account"
)

func (h *handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	templates, err := h.directory.ListTemplates(claims.AccountID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		h.log.Error().Err(err).Msg("list templates failed")
		writeError(w, http.StatusInternalServerError, "failed to list templates")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]account.Template{"templates": templates})
}

func (h *handler) getTemplate(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	tpl, err := h.directory.GetTemplate(claims.AccountID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, account.ErrTemplateNotFound):
			writeError(w, http.StatusNotFound, "Template not found")
		case errors.Is(err, account.ErrAccountNotFound):
			writeError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			h.log.Error().Err(err).Msg("get template failed")
			writeError(w, http.StatusInternalServerError, "failed to load template")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]account.Template{"template": tpl})
}

func (h *handler) createTemplate(w http.ResponseWriter, r *http.Request) {
	var req account.Template
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := claimsFrom(r)
	tpl, err := h.directory.CreateTemplate(claims.AccountID, req)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidTemplate):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, account.ErrTemplateLimit):
			writeError(w, http.StatusForbidden, fmt.Sprintf("Template limit reached (%d per user)", account.MaxTemplates))
		case errors.Is(err, account.ErrDuplicateTemplate):
			writeError(w, http.StatusConflict, "Template with this id already exists")
		case errors.Is(err, account.ErrAccountNotFound):
			writeError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			h.log.Error().Err(err).Msg("create template failed")
			writeError(w, http.StatusInternalServerError, "failed to create template")
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]account.Template{"template": tpl})
}

type updateTemplateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Body        *string `json:"template"`
}

func (h *handler) updateTemplate(w http.ResponseWriter, r *http.Request) {
	var req updateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := claimsFrom(r)
	patch := account.TemplatePatch{Name: req.Name, Description: req.Description, Body: req.Body}
	tpl, err := h.directory.UpdateTemplate(claims.AccountID, chi.URLParam(r, "id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrTemplateNotFound):
			writeError(w, http.StatusNotFound, "Template not found")
		case errors.Is(err, account.ErrAccountNotFound):
			writeError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			h.log.Error().Err(err).Msg("update template failed")
			writeError(w, http.StatusInternalServerError, "failed to update template")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]account.Template{"template": tpl})
}
